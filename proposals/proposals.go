package proposals

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"matchify/db"
	"matchify/missions"
	"matchify/models"
	"matchify/mq"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateProposal handles POST /api/missions/:missionid/proposals.
// One active proposal per (mission, talent) pair.
func CreateProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !utils.HasRole(r, models.RoleTalent) {
		http.Error(w, "Only talents can submit proposals", http.StatusForbidden)
		return
	}

	missionID := ps.ByName("missionid")
	talentID := utils.GetUserIDFromRequest(r)

	m, err := missions.FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.Status != models.MissionOpen {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not open for proposals")
		return
	}

	var body struct {
		Message        string `json:"message"`
		ProposedBudget *int   `json:"proposed_budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	body.Message = strings.TrimSpace(body.Message)
	if body.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	// Reject a second active proposal for the same mission
	var existing models.Proposal
	err = db.ProposalsCollection.FindOne(ctx, bson.M{
		"missionid": missionID,
		"talentid":  talentID,
		"status":    bson.M{"$ne": models.ProposalRefused},
	}).Decode(&existing)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "You already have an active proposal for this mission")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	p := models.Proposal{
		ProposalID:     "p" + utils.GenerateRandomString(10),
		MissionID:      missionID,
		TalentID:       talentID,
		RecruiterID:    m.RecruiterID,
		Status:         models.ProposalNotViewed,
		Message:        body.Message,
		ProposedBudget: body.ProposedBudget,
		SubmittedAt:    time.Now(),
	}

	if _, err := db.ProposalsCollection.InsertOne(ctx, p); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit proposal")
		return
	}

	go mq.Emit(ctx, "proposal-created", models.Index{EntityType: "proposal", EntityId: p.ProposalID, ItemId: m.RecruiterID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// GetMissionProposals handles GET /api/missions/:missionid/proposals (recruiter only)
func GetMissionProposals(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	m, err := missions.FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.RecruiterID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.M{"submittedAt": -1})

	list, err := utils.FindAndDecode[models.Proposal](ctx, db.ProposalsCollection, bson.M{"missionid": missionID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch proposals")
		return
	}
	if len(list) == 0 {
		list = []models.Proposal{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"data": list})
}

// GetProposal handles GET /api/proposals/:proposalid. A recruiter reading a
// fresh proposal marks it VIEWED.
func GetProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	proposalID := ps.ByName("proposalid")
	userID := utils.GetUserIDFromRequest(r)

	var p models.Proposal
	if err := db.ProposalsCollection.FindOne(ctx, bson.M{"proposalid": proposalID}).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Proposal not found")
		return
	}
	if p.RecruiterID != userID && p.TalentID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if p.RecruiterID == userID && p.Status == models.ProposalNotViewed {
		_, err := db.ProposalsCollection.UpdateOne(ctx,
			bson.M{"proposalid": proposalID, "status": models.ProposalNotViewed},
			bson.M{"$set": bson.M{"status": models.ProposalViewed, "updatedAt": time.Now()}},
		)
		if err == nil {
			p.Status = models.ProposalViewed
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}
