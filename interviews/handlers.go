package interviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"matchify/db"
	"matchify/models"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInterview handles GET /api/interviews/:interviewid
func GetInterview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	iv, ok := fetchForParticipant(ctx, w, r, ps.ByName("interviewid"))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, iv)
}

// GetUserInterviews handles GET /api/interviews for the logged-in user
func GetUserInterviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	filter := bson.M{"$or": bson.A{
		bson.M{"recruiterid": userID},
		bson.M{"talentid": userID},
	}}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.M{"scheduledAt": 1})

	list, err := utils.FindAndDecode[models.Interview](ctx, db.InterviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}
	if len(list) == 0 {
		list = []models.Interview{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"data": list})
}

// UpdateStatus handles PUT /api/interviews/:interviewid/status.
// SCHEDULED may move to COMPLETED or CANCELLED; both are terminal.
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	iv, ok := fetchForParticipant(ctx, w, r, ps.ByName("interviewid"))
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		(body.Status != models.InterviewCompleted && body.Status != models.InterviewCancelled) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	if iv.Status != models.InterviewScheduled {
		utils.RespondWithError(w, http.StatusConflict, "Interview already finished")
		return
	}

	_, err := db.InterviewsCollection.UpdateOne(ctx,
		bson.M{"interviewid": iv.InterviewID, "status": models.InterviewScheduled},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update interview")
		return
	}
	iv.Status = body.Status
	utils.RespondWithJSON(w, http.StatusOK, iv)
}

// MeetLinkQR handles GET /api/interviews/:interviewid/qr and returns the
// meeting link as a PNG QR code.
func MeetLinkQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	iv, ok := fetchForParticipant(ctx, w, r, ps.ByName("interviewid"))
	if !ok {
		return
	}
	if iv.MeetLink == "" {
		utils.RespondWithError(w, http.StatusNotFound, "Interview has no meeting link")
		return
	}

	png, err := qrcode.Encode(iv.MeetLink, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func fetchForParticipant(ctx context.Context, w http.ResponseWriter, r *http.Request, interviewID string) (models.Interview, bool) {
	userID := utils.GetUserIDFromRequest(r)

	var iv models.Interview
	if err := db.InterviewsCollection.FindOne(ctx, bson.M{"interviewid": interviewID}).Decode(&iv); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Interview not found")
		return iv, false
	}
	if iv.RecruiterID != userID && iv.TalentID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return iv, false
	}
	return iv, true
}
