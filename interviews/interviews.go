package interviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"matchify/db"
	"matchify/meet"
	"matchify/models"
	"matchify/mq"
	"matchify/proposals"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateInterview handles POST /api/interviews. Ordering matters: the
// interview is persisted first, then the proposal is marked ACCEPTED as a
// best-effort sync. A failed sync never rolls the interview back; the
// proposal reconciles on its next fetch.
func CreateInterview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !utils.HasRole(r, models.RoleRecruiter) {
		http.Error(w, "Only recruiters can schedule interviews", http.StatusForbidden)
		return
	}
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		ProposalID   string `json:"proposalid"`
		ScheduledAt  string `json:"scheduled_at"`
		Notes        string `json:"notes"`
		MeetLink     string `json:"meet_link"`
		AutoGenerate bool   `json:"auto_generate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProposalID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(body.ScheduledAt) == "" {
		http.Error(w, "Interview date/time is required", http.StatusBadRequest)
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, body.ScheduledAt)
	if err != nil {
		http.Error(w, "Unreadable date/time", http.StatusBadRequest)
		return
	}

	body.MeetLink = strings.TrimSpace(body.MeetLink)
	if !body.AutoGenerate && body.MeetLink == "" {
		http.Error(w, "Meeting link is required when not auto-generating", http.StatusBadRequest)
		return
	}

	var p models.Proposal
	if err := db.ProposalsCollection.FindOne(ctx, bson.M{"proposalid": body.ProposalID}).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Proposal not found")
		return
	}
	if p.RecruiterID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	meetLink := body.MeetLink
	source := models.MeetSourceManual
	if body.AutoGenerate {
		session, err := meet.GenerateLink(p.ProposalID, scheduledAt)
		if err != nil {
			if isServiceUnavailable(err) {
				utils.RespondWithError(w, http.StatusServiceUnavailable,
					"Could not auto-generate a meeting link right now, please retry later or paste one manually")
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate meeting link")
			return
		}
		meetLink = session.Link
		source = session.Source
	}

	iv := models.Interview{
		InterviewID: "iv" + utils.GenerateRandomString(10),
		ProposalID:  p.ProposalID,
		MissionID:   p.MissionID,
		RecruiterID: p.RecruiterID,
		TalentID:    p.TalentID,
		ScheduledAt: scheduledAt,
		MeetLink:    meetLink,
		Status:      models.InterviewScheduled,
		Source:      source,
		Notes:       strings.TrimSpace(body.Notes),
		CreatedAt:   time.Now(),
	}

	if _, err := db.InterviewsCollection.InsertOne(ctx, iv); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create interview")
		return
	}

	// Best-effort: the interview is the source of truth, the proposal status
	// is a mirror.
	if err := proposals.SetAccepted(ctx, p.ProposalID); err != nil {
		log.Printf("CreateInterview: proposal %s status sync failed (interview %s kept): %v",
			p.ProposalID, iv.InterviewID, err)
	}

	go mq.Emit(ctx, "interview-created", models.Index{EntityType: "interview", EntityId: iv.InterviewID, ItemId: p.TalentID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, iv)
}

// isServiceUnavailable checks both the structured sentinel and known error
// text, since the outage can propagate through either channel.
func isServiceUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if err == meet.ErrServiceUnavailable {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "503") || strings.Contains(msg, "service unavailable")
}
