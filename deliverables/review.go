package deliverables

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"matchify/db"
	"matchify/models"
	"matchify/mq"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Approve handles POST /api/deliverables/:deliverableid/approve.
// Recruiter-only; valid only from pending_review. Approving an already
// approved deliverable is a no-op, not an error.
func Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	d, ok := fetchForRecruiter(ctx, w, r, ps.ByName("deliverableid"))
	if !ok {
		return
	}

	if d.Status == models.DeliverableApproved {
		// replayed approval
		utils.RespondWithJSON(w, http.StatusOK, d)
		return
	}
	if !CanReview(d.Status, models.DeliverableApproved) {
		utils.RespondWithError(w, http.StatusConflict, "Deliverable is not pending review")
		return
	}
	if err := d.ValidatePayload(); err != nil {
		utils.RespondWithError(w, http.StatusConflict, "Deliverable payload is invalid")
		return
	}

	now := time.Now()
	res, err := db.DeliverablesCollection.UpdateOne(ctx,
		bson.M{"deliverableid": d.DeliverableID, "status": models.DeliverablePendingReview},
		bson.M{"$set": bson.M{"status": models.DeliverableApproved, "reviewedAt": now}, "$unset": bson.M{"rejection_reason": ""}},
	)
	if err != nil || res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "Deliverable is not pending review")
		return
	}
	d.Status = models.DeliverableApproved
	d.ReviewedAt = now
	d.RejectionReason = ""

	go mq.Emit(ctx, "deliverable-approved", models.Index{EntityType: "deliverable", EntityId: d.DeliverableID, ItemId: d.SenderID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, d)
}

// RequestRevision handles POST /api/deliverables/:deliverableid/revision.
// The reason is mandatory and must be non-blank.
func RequestRevision(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	body.Reason = strings.TrimSpace(body.Reason)
	if body.Reason == "" {
		http.Error(w, "Revision reason is required", http.StatusBadRequest)
		return
	}

	d, ok := fetchForRecruiter(ctx, w, r, ps.ByName("deliverableid"))
	if !ok {
		return
	}

	if !CanReview(d.Status, models.DeliverableRevisionRequested) {
		utils.RespondWithError(w, http.StatusConflict, "Deliverable is not pending review")
		return
	}

	now := time.Now()
	res, err := db.DeliverablesCollection.UpdateOne(ctx,
		bson.M{"deliverableid": d.DeliverableID, "status": models.DeliverablePendingReview},
		bson.M{"$set": bson.M{
			"status":           models.DeliverableRevisionRequested,
			"rejection_reason": body.Reason,
			"reviewedAt":       now,
		}},
	)
	if err != nil || res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "Deliverable is not pending review")
		return
	}
	d.Status = models.DeliverableRevisionRequested
	d.RejectionReason = body.Reason
	d.ReviewedAt = now

	go mq.Emit(ctx, "deliverable-revision", models.Index{EntityType: "deliverable", EntityId: d.DeliverableID, ItemId: d.SenderID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, d)
}

// Resubmit handles POST /api/deliverables/:deliverableid/resubmit, moving a
// revision_requested deliverable back to pending_review after the talent
// replaces its payload.
func Resubmit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deliverableID := ps.ByName("deliverableid")
	userID := utils.GetUserIDFromRequest(r)

	var d models.Deliverable
	if err := db.DeliverablesCollection.FindOne(ctx, bson.M{"deliverableid": deliverableID}).Decode(&d); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Deliverable not found")
		return
	}
	if d.SenderID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if !CanReview(d.Status, models.DeliverablePendingReview) {
		utils.RespondWithError(w, http.StatusConflict, "Deliverable is not awaiting revision")
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := bson.M{
		"status":      models.DeliverablePendingReview,
		"submittedAt": time.Now(),
	}
	if d.Type == models.DeliverableLink {
		body.URL = strings.TrimSpace(body.URL)
		if body.URL == "" {
			http.Error(w, "Link deliverable needs a url", http.StatusBadRequest)
			return
		}
		update["link"] = models.LinkPayload{URL: body.URL}
	}

	_, err := db.DeliverablesCollection.UpdateOne(ctx,
		bson.M{"deliverableid": deliverableID, "status": models.DeliverableRevisionRequested},
		bson.M{"$set": update, "$unset": bson.M{"rejection_reason": ""}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to resubmit")
		return
	}

	d.Status = models.DeliverablePendingReview
	d.RejectionReason = ""
	utils.RespondWithJSON(w, http.StatusOK, d)
}

func fetchForRecruiter(ctx context.Context, w http.ResponseWriter, r *http.Request, deliverableID string) (models.Deliverable, bool) {
	userID := utils.GetUserIDFromRequest(r)

	var d models.Deliverable
	if err := db.DeliverablesCollection.FindOne(ctx, bson.M{"deliverableid": deliverableID}).Decode(&d); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Deliverable not found")
		return d, false
	}
	if d.ReceiverID != userID {
		http.Error(w, "Only the mission recruiter can review deliverables", http.StatusForbidden)
		return d, false
	}
	return d, true
}
