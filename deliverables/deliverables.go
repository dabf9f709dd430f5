package deliverables

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"matchify/db"
	"matchify/missions"
	"matchify/models"
	"matchify/mq"
	"matchify/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const uploadDir = "static/deliverables"

// SubmitDeliverable handles POST /api/missions/:missionid/deliverables.
// Multipart form: either a "file" part or a "url" field, per the declared
// "type". The hired talent submits; the recruiter reviews.
func SubmitDeliverable(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	m, err := missions.FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.HiredTalentID != userID {
		http.Error(w, "Only the hired talent can submit deliverables", http.StatusForbidden)
		return
	}
	if m.Status != models.MissionInProgress {
		utils.RespondWithError(w, http.StatusConflict, "Mission is not in progress")
		return
	}

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	d := models.Deliverable{
		DeliverableID: "d" + utils.GenerateRandomString(10),
		MissionID:     missionID,
		SenderID:      userID,
		ReceiverID:    m.RecruiterID,
		Type:          strings.TrimSpace(r.FormValue("type")),
		Status:        models.DeliverablePendingReview,
		SubmittedAt:   time.Now(),
	}

	switch d.Type {
	case models.DeliverableFile:
		fhArr := r.MultipartForm.File["file"]
		if len(fhArr) == 0 {
			http.Error(w, "File deliverable needs a file", http.StatusBadRequest)
			return
		}
		payload, err := saveDeliverableFile(fhArr[0])
		if err != nil {
			http.Error(w, "File upload failed", http.StatusInternalServerError)
			return
		}
		d.File = payload
	case models.DeliverableLink:
		url := strings.TrimSpace(r.FormValue("url"))
		if url == "" {
			http.Error(w, "Link deliverable needs a url", http.StatusBadRequest)
			return
		}
		d.Link = &models.LinkPayload{URL: url}
	default:
		http.Error(w, "Type must be file or link", http.StatusBadRequest)
		return
	}

	if err := d.ValidatePayload(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Deliverables travel through the mission conversation
	msg := models.Message{
		MessageID: "msg" + utils.GenerateRandomString(10),
		ChatID:    missionID,
		MissionID: missionID,
		SenderID:  userID,
		Content:   "Submitted a deliverable",
		CreatedAt: time.Now(),
	}
	if _, err := db.MessagesCollection.InsertOne(ctx, msg); err == nil {
		d.MessageID = msg.MessageID
	}

	if _, err := db.DeliverablesCollection.InsertOne(ctx, d); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit deliverable")
		return
	}

	go mq.Emit(ctx, "deliverable-submitted", models.Index{EntityType: "deliverable", EntityId: d.DeliverableID, ItemId: m.RecruiterID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, d)
}

// GetMissionDeliverables handles GET /api/missions/:missionid/deliverables
func GetMissionDeliverables(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	missionID := ps.ByName("missionid")
	userID := utils.GetUserIDFromRequest(r)

	m, err := missions.FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	if m.RecruiterID != userID && m.HiredTalentID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.M{"submittedAt": -1})

	list, err := utils.FindAndDecode[models.Deliverable](ctx, db.DeliverablesCollection, bson.M{"missionid": missionID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deliverables")
		return
	}
	if len(list) == 0 {
		list = []models.Deliverable{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"data": list})
}

func saveDeliverableFile(header *multipart.FileHeader) (*models.FilePayload, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	uniqueID := utils.GenerateRandomString(16)
	filename := uniqueID + filepath.Ext(header.Filename)
	dstPath := filepath.Join(uploadDir, filename)

	out, err := os.Create(dstPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	size, err := out.ReadFrom(src)
	if err != nil {
		return nil, err
	}

	payload := &models.FilePayload{
		FileURL:  "/" + dstPath,
		FileName: header.Filename,
		FileSize: size,
		FileType: header.Header.Get("Content-Type"),
	}

	// Image deliverables get a preview thumbnail
	if strings.HasPrefix(payload.FileType, "image/") {
		if img, err := imaging.Open(dstPath); err == nil {
			thumbDir := filepath.Join(uploadDir, "thumb")
			if err := os.MkdirAll(thumbDir, 0o755); err == nil {
				thumbPath := filepath.Join(thumbDir, uniqueID+".jpg")
				thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
				if err := imaging.Save(thumb, thumbPath); err == nil {
					payload.ThumbURL = "/" + thumbPath
				}
			}
		}
	}

	return payload, nil
}
