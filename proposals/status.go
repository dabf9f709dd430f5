package proposals

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"matchify/db"
	"matchify/missions"
	"matchify/models"
	"matchify/mq"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var allowedStatuses = map[string]bool{
	models.ProposalViewed:   true,
	models.ProposalAccepted: true,
	models.ProposalRefused:  true,
}

// UpdateStatus handles PUT /api/proposals/:proposalid/status. Recruiter only.
// Setting a status the proposal already has is a no-op, so the post-interview
// ACCEPTED sync can be replayed safely.
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	proposalID := ps.ByName("proposalid")
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !allowedStatuses[body.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	var p models.Proposal
	if err := db.ProposalsCollection.FindOne(ctx, bson.M{"proposalid": proposalID}).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Proposal not found")
		return
	}
	if p.RecruiterID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if p.Status == body.Status {
		utils.RespondWithJSON(w, http.StatusOK, p)
		return
	}

	// A decided proposal cannot flip to the other decision
	if (p.Status == models.ProposalAccepted || p.Status == models.ProposalRefused) && body.Status != p.Status {
		utils.RespondWithError(w, http.StatusConflict, "Proposal already decided")
		return
	}

	_, err := db.ProposalsCollection.UpdateOne(ctx,
		bson.M{"proposalid": proposalID},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update proposal")
		return
	}
	p.Status = body.Status
	p.UpdatedAt = time.Now()

	if body.Status == models.ProposalAccepted {
		if err := missions.SetInProgress(ctx, p.MissionID, p.TalentID); err != nil {
			log.Printf("UpdateStatus: failed to move mission %s in progress: %v", p.MissionID, err)
		}
	}

	go mq.Emit(ctx, "proposal-status", models.Index{EntityType: "proposal", EntityId: proposalID, ItemId: p.TalentID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// SetAccepted marks a proposal ACCEPTED after interview creation. Used
// server-side by the interview handler's best-effort sync path.
func SetAccepted(ctx context.Context, proposalID string) error {
	var p models.Proposal
	if err := db.ProposalsCollection.FindOne(ctx, bson.M{"proposalid": proposalID}).Decode(&p); err != nil {
		return err
	}
	if p.Status == models.ProposalAccepted {
		return nil
	}
	_, err := db.ProposalsCollection.UpdateOne(ctx,
		bson.M{"proposalid": proposalID},
		bson.M{"$set": bson.M{"status": models.ProposalAccepted, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	return missions.SetInProgress(ctx, p.MissionID, p.TalentID)
}
