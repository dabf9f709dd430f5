package models

import "time"

// Meta is a generic key-value map for transaction metadata
type Meta map[string]interface{}

// Payment transaction statuses
const (
	TxnPending    = "pending"
	TxnProcessing = "processing"
	TxnCompleted  = "completed"
	TxnFailed     = "failed"
	TxnRefunded   = "refunded"
)

// Transaction directions, from the platform's point of view
const (
	TxnIn  = "in"  // recruiter charge captured
	TxnOut = "out" // talent payout
)

// PaymentHandshake carries the opaque identifiers the payment-capture SDK
// needs. Only PaymentIntentID is ever read back by this codebase.
type PaymentHandshake struct {
	ClientSecret    string `bson:"client_secret" json:"client_secret"`
	EphemeralKey    string `bson:"ephemeral_key" json:"ephemeral_key"`
	CustomerID      string `bson:"customer_id" json:"customer_id"`
	PublishableKey  string `bson:"publishable_key" json:"publishable_key"`
	PaymentIntentID string `bson:"payment_intent_id" json:"payment_intent_id"`
}

// Transaction represents a mission payment record
type Transaction struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	MissionID       string    `bson:"missionid" json:"missionid"`
	UserID          string    `bson:"userid,omitempty" json:"userid,omitempty"`
	Direction       string    `bson:"direction" json:"direction"`
	Amount          float64   `bson:"amount" json:"amount"`
	PlatformFee     float64   `bson:"platform_fee" json:"platform_fee"`
	TalentAmount    float64   `bson:"talent_amount" json:"talent_amount"`
	Status          string    `bson:"status" json:"status"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
	IdempotencyKey  string    `bson:"external_ref,omitempty" json:"external_ref,omitempty"`
	Meta            Meta      `bson:"meta,omitempty" json:"meta,omitempty"`
}

// JournalEntry represents a ledger double-entry record
type JournalEntry struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	TxnID         string    `bson:"txn_id" json:"txn_id"`
	DebitAccount  string    `bson:"debit_account" json:"debit_account"`
	CreditAccount string    `bson:"credit_account" json:"credit_account"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	Meta          Meta      `bson:"meta,omitempty" json:"meta,omitempty"`
}

// Account represents a user's wallet/account
type Account struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"userid" json:"userid"`
	Currency      string    `bson:"currency" json:"currency"`
	Status        string    `bson:"status" json:"status"`
	CachedBalance float64   `bson:"cached_balance" json:"cached_balance"`
	Version       int       `bson:"version" json:"version"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// IdempotencyRecord represents an idempotency key record stored in Mongo.
type IdempotencyRecord struct {
	Key         string                 `bson:"key" json:"key"`
	Method      string                 `bson:"method" json:"method"`
	Path        string                 `bson:"path" json:"path"`
	UserID      string                 `bson:"userid" json:"userid"`
	RequestHash string                 `bson:"request_hash" json:"request_hash"`
	Response    map[string]interface{} `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
	ExpiresAt   time.Time              `bson:"expires_at" json:"expires_at"`
}
