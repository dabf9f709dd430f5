package missions

import (
	"context"
	"log"
	"net/http"
	"time"

	"matchify/db"
	"matchify/models"
	"matchify/mq"
	"matchify/pay"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// MarkCompleted handles POST /api/missions/:missionid/complete.
// Valid only while the mission is in_progress.
func MarkCompleted(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	m, err := FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.RecruiterID != userID && m.HiredTalentID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err := Transition(&m, models.MissionCompleted); err != nil {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not in progress")
		return
	}

	now := time.Now()
	res, err := db.MissionsCollection.UpdateOne(ctx,
		bson.M{"missionid": missionID, "status": models.MissionInProgress},
		bson.M{"$set": bson.M{"status": models.MissionCompleted, "completedAt": now, "updatedAt": now}},
	)
	if err != nil || res.ModifiedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not in progress")
		return
	}
	m.CompletedAt = now
	m.UpdatedAt = now

	go mq.Emit(ctx, "mission-completed", models.Index{EntityType: "mission", EntityId: missionID, ItemId: m.RecruiterID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, m)
}

// ApproveCompletion handles POST /api/missions/:missionid/approve.
// Recruiter-only. Returns the mission plus a payment handshake when a charge
// still has to be captured. An already-paid mission is a success, not an
// error: the response simply carries no payment field.
func ApproveCompletion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	m, err := FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.RecruiterID != userID {
		http.Error(w, "Only the mission recruiter can approve completion", http.StatusForbidden)
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

	handshake, err := pay.HandshakeForMission(ctx, m)
	if err != nil {
		log.Printf("ApproveCompletion: handshake for mission %s failed: %v", missionID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to prepare payment")
		return
	}

	go mq.Emit(ctx, "mission-approved", models.Index{EntityType: "mission", EntityId: missionID, ItemId: m.HiredTalentID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"mission": m,
		"payment": handshake,
	})
}
