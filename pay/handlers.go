package pay

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"matchify/db"
	"matchify/models"
	"matchify/mq"
	"matchify/rdx"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIntent handles POST /api/payments/intent/:missionid — the talent
// path, used when the mission completion was already approved and only the
// handshake is needed.
func CreateIntent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	var m models.Mission
	if err := db.MissionsCollection.FindOne(ctx, bson.M{"missionid": missionID}).Decode(&m); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.RecruiterID != userID && m.HiredTalentID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if m.Status == models.MissionPaid {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"mission": m})
		return
	}
	if m.Status != models.MissionCompleted {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not completed")
		return
	}

	handshake, err := HandshakeForMission(ctx, m)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to prepare payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"mission": m, "payment": handshake})
}

// ConfirmPayment handles POST /api/payments/confirm. It reconciles an
// externally captured intent: marks the mission paid, settles the pending
// transaction, writes the ledger entries, and credits the talent's account.
func ConfirmPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		PaymentIntentID string `json:"payment_intent_id"`
		MissionID       string `json:"missionid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PaymentIntentID == "" || body.MissionID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	var m models.Mission
	if err := db.MissionsCollection.FindOne(ctx, bson.M{"missionid": body.MissionID}).Decode(&m); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.Status == models.MissionPaid {
		// Webhook or a concurrent confirm beat us to it.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "mission": m})
		return
	}
	if m.Status != models.MissionCompleted {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not completed")
		return
	}

	// Serialize settlement per mission
	acquired, err := rdx.RdxSetNX("mission_lock:"+body.MissionID, "1", lockTTL)
	if err != nil || !acquired {
		http.Error(w, "please retry", http.StatusTooManyRequests)
		return
	}
	defer rdx.RdxDel("mission_lock:" + body.MissionID)

	var txn models.Transaction
	err = db.TransactionCollection.FindOne(ctx, bson.M{
		"missionid":         body.MissionID,
		"payment_intent_id": body.PaymentIntentID,
		"direction":         models.TxnIn,
		"status":            models.TxnPending,
	}).Decode(&txn)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No pending payment for that intent")
		return
	}

	txn.Status = models.TxnProcessing
	txn.UpdatedAt = time.Now()
	_, _ = db.TransactionCollection.UpdateOne(ctx, bson.M{"_id": txn.ID}, bson.M{"$set": txn})

	talentAccID, err := getOrCreateAccount(ctx, m.HiredTalentID)
	if err != nil {
		failTxn(ctx, &txn)
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}
	platformAccID, err := getOrCreateAccount(ctx, "platform:matchify")
	if err != nil {
		failTxn(ctx, &txn)
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	// Double entry: recruiter charge in, talent payout out
	entries := settlementEntries(txn, platformAccID, talentAccID)
	docs := make([]interface{}, len(entries))
	for i, e := range entries {
		docs[i] = e
	}
	if _, err := db.JournalCollection.InsertMany(ctx, docs); err != nil {
		failTxn(ctx, &txn)
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	// Update cached balances
	margin := txn.Amount - txn.TalentAmount
	if _, err := db.AccountsCollection.UpdateOne(ctx, bson.M{"_id": platformAccID}, bson.M{
		"$inc": bson.M{"cached_balance": margin, "version": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}); err != nil {
		failTxn(ctx, &txn)
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}
	if _, err := db.AccountsCollection.UpdateOne(ctx, bson.M{"_id": talentAccID}, bson.M{
		"$inc": bson.M{"cached_balance": txn.TalentAmount, "version": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}); err != nil {
		failTxn(ctx, &txn)
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	// Record the payout leg for the talent's history
	payout := models.Transaction{
		ID:              utils.GetUUID(),
		MissionID:       m.MissionID,
		UserID:          m.HiredTalentID,
		Direction:       models.TxnOut,
		Amount:          txn.TalentAmount,
		PlatformFee:     txn.PlatformFee,
		TalentAmount:    txn.TalentAmount,
		Status:          models.TxnCompleted,
		Currency:        txn.Currency,
		PaymentIntentID: txn.PaymentIntentID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		Meta:            models.Meta{"note": "mission payout", "parent_txn": txn.ID},
	}
	_, _ = db.TransactionCollection.InsertOne(ctx, payout)

	// Mark mission paid; guard on status so a concurrent confirm cannot
	// settle twice.
	now := time.Now()
	res, err := db.MissionsCollection.UpdateOne(ctx,
		bson.M{"missionid": m.MissionID, "status": models.MissionCompleted},
		bson.M{"$set": bson.M{"status": models.MissionPaid, "paidAt": now, "updatedAt": now}},
	)
	if err != nil || res.ModifiedCount == 0 {
		// The charge was never finalized: reverse the ledger and the
		// credited balances so the accounts end net zero.
		revDocs := make([]interface{}, 0, len(entries))
		for _, e := range reversalEntries(entries) {
			revDocs = append(revDocs, e)
		}
		_, _ = db.JournalCollection.InsertMany(ctx, revDocs)
		_, _ = db.AccountsCollection.UpdateOne(ctx, bson.M{"_id": platformAccID}, bson.M{
			"$inc": bson.M{"cached_balance": -margin, "version": 1},
			"$set": bson.M{"updated_at": time.Now()},
		})
		_, _ = db.AccountsCollection.UpdateOne(ctx, bson.M{"_id": talentAccID}, bson.M{
			"$inc": bson.M{"cached_balance": -txn.TalentAmount, "version": 1},
			"$set": bson.M{"updated_at": time.Now()},
		})
		_, _ = db.TransactionCollection.UpdateOne(ctx, bson.M{"_id": payout.ID},
			bson.M{"$set": bson.M{"status": models.TxnFailed, "updated_at": time.Now()}})
		failTxn(ctx, &txn)
		utils.RespondWithError(w, http.StatusConflict, "mission state changed during settlement")
		return
	}

	txn.Status = models.TxnCompleted
	txn.UpdatedAt = time.Now()
	_, _ = db.TransactionCollection.UpdateOne(ctx, bson.M{"_id": txn.ID}, bson.M{"$set": txn})

	m.Status = models.MissionPaid
	m.PaidAt = now
	m.UpdatedAt = now

	go mq.Emit(ctx, "mission-paid", models.Index{EntityType: "mission", EntityId: m.MissionID, ItemId: m.HiredTalentID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":        true,
		"transaction_id": txn.ID,
		"mission":        m,
	})
}

func failTxn(ctx context.Context, txn *models.Transaction) {
	txn.Status = models.TxnFailed
	txn.UpdatedAt = time.Now()
	_, _ = db.TransactionCollection.UpdateOne(ctx, bson.M{"_id": txn.ID}, bson.M{"$set": txn})
}

// ListTransactions returns paginated payment transactions for the logged-in user
func ListTransactions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	skip, limit := utils.ParsePagination(r, 20, 50)
	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit).
		SetSkip(skip)

	txns, err := utils.FindAndDecode[models.Transaction](ctx, db.TransactionCollection, bson.M{"userid": userID}, findOptions)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(txns) == 0 {
		txns = []models.Transaction{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"transactions": txns})
}

// GetBalance returns the user's wallet balance
func GetBalance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var acc struct {
		CachedBalance float64 `bson:"cached_balance"`
	}
	err := db.AccountsCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&acc)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "account not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"balance": acc.CachedBalance})
}
