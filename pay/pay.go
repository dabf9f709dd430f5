package pay

import (
	"context"
	"time"

	"matchify/db"
	"matchify/models"
	"matchify/stripe"
	"matchify/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// lockTTL defines the duration to hold the Redis lock per mission
const lockTTL = 5 * time.Second

// HandshakeForMission returns the payment handshake for a completed mission.
// A pending transaction already holding a handshake is reused so repeated
// approval calls never create a duplicate intent.
func HandshakeForMission(ctx context.Context, m models.Mission) (models.PaymentHandshake, error) {
	var existing models.Transaction
	err := db.TransactionCollection.FindOne(ctx, bson.M{
		"missionid": m.MissionID,
		"direction": models.TxnIn,
		"status":    models.TxnPending,
	}).Decode(&existing)
	if err == nil && existing.PaymentIntentID != "" {
		return handshakeFromTxn(existing), nil
	}

	fees := Breakdown(m.Budget)
	session, err := stripe.CreatePaymentSession(m.MissionID, m.RecruiterID, fees.RecruiterTotal)
	if err != nil {
		return models.PaymentHandshake{}, err
	}

	txn := models.Transaction{
		ID:              utils.GetUUID(),
		MissionID:       m.MissionID,
		UserID:          m.RecruiterID,
		Direction:       models.TxnIn,
		Amount:          fees.RecruiterTotal,
		PlatformFee:     fees.PlatformFee,
		TalentAmount:    fees.TalentPayout,
		Status:          models.TxnPending,
		Currency:        "EUR",
		PaymentIntentID: session.PaymentIntentID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		Meta: models.Meta{
			"client_secret":   session.ClientSecret,
			"ephemeral_key":   session.EphemeralKey,
			"customer_id":     session.CustomerID,
			"publishable_key": session.PublishableKey,
		},
	}
	if _, err := db.TransactionCollection.InsertOne(ctx, txn); err != nil {
		return models.PaymentHandshake{}, err
	}

	return handshakeFromTxn(txn), nil
}

func handshakeFromTxn(txn models.Transaction) models.PaymentHandshake {
	h := models.PaymentHandshake{PaymentIntentID: txn.PaymentIntentID}
	if v, ok := txn.Meta["client_secret"].(string); ok {
		h.ClientSecret = v
	}
	if v, ok := txn.Meta["ephemeral_key"].(string); ok {
		h.EphemeralKey = v
	}
	if v, ok := txn.Meta["customer_id"].(string); ok {
		h.CustomerID = v
	}
	if v, ok := txn.Meta["publishable_key"].(string); ok {
		h.PublishableKey = v
	}
	return h
}

// getOrCreateAccount fetches or creates a wallet account for a user.
func getOrCreateAccount(ctx context.Context, userID string) (string, error) {
	var acc models.Account
	err := db.AccountsCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&acc)
	if err == nil {
		return acc.ID, nil
	}

	newAcc := models.Account{
		ID:            utils.GetUUID(),
		UserID:        userID,
		Currency:      "EUR",
		Status:        "active",
		CachedBalance: 0,
		Version:       1,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	_, err = db.AccountsCollection.InsertOne(ctx, newAcc)
	if err != nil {
		// If concurrent create happened, try to read again
		if err := db.AccountsCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&acc); err == nil {
			return acc.ID, nil
		}
		return "", err
	}

	return newAcc.ID, nil
}
