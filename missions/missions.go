package missions

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMission handles POST /api/missions
func CreateMission(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !utils.HasRole(r, models.RoleRecruiter) {
		http.Error(w, "Only recruiters can post missions", http.StatusForbidden)
		return
	}

	var body struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Budget      int      `json:"budget"`
		Skills      []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	body.Title = strings.TrimSpace(body.Title)
	body.Description = strings.TrimSpace(body.Description)
	if body.Title == "" || body.Description == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if body.Budget < 0 {
		http.Error(w, "Budget must be non-negative", http.StatusBadRequest)
		return
	}

	m := models.Mission{
		MissionID:   "m" + utils.GenerateRandomString(10),
		Title:       body.Title,
		Description: body.Description,
		Budget:      body.Budget,
		Skills:      body.Skills,
		RecruiterID: utils.GetUserIDFromRequest(r),
		Status:      models.MissionOpen,
		CreatedAt:   time.Now(),
	}

	if _, err := db.MissionsCollection.InsertOne(ctx, m); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create mission")
		return
	}

	go mq.Emit(ctx, "mission-created", models.Index{EntityType: "mission", EntityId: m.MissionID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, m)
}

// GetMission handles GET /api/missions/:missionid
func GetMission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	m, err := FetchMission(ctx, ps.ByName("missionid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Mission not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

// GetMissions handles GET /api/missions with search/skill/status filters
func GetMissions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	q := utils.ParseQueryOptions(r)

	filter := bson.M{}
	if search := strings.TrimSpace(q.Search); search != "" {
		filter["$or"] = bson.A{
			utils.RegexFilter("title", search),
			utils.RegexFilter("description", search),
		}
	}
	if skill := strings.TrimSpace(q.Skill); skill != "" {
		filter["skills"] = bson.M{"$in": []string{skill}}
	}
	if status := strings.TrimSpace(q.Status); status != "" {
		filter["status"] = status
	}

	if q.Limit > 100 {
		q.Limit = 100
	}
	skip := int64((q.Page - 1) * q.Limit)
	opts := options.Find().SetSkip(skip).SetLimit(int64(q.Limit)).SetSort(bson.M{"createdAt": -1})

	list, err := utils.FindAndDecode[models.Mission](ctx, db.MissionsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch missions")
		return
	}
	if len(list) == 0 {
		list = []models.Mission{}
	}

	total, _ := db.MissionsCollection.CountDocuments(ctx, filter)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"data":  list,
		"total": total,
	})
}

// UpdateMission handles PUT /api/missions/:missionid (owner only, open missions only)
func UpdateMission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if m.Status != models.MissionOpen {
		utils.RespondWithError(w, http.StatusConflict, "Only open missions can be edited")
		return
	}

	var body struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Budget      *int     `json:"budget"`
		Skills      []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if t := strings.TrimSpace(body.Title); t != "" {
		update["title"] = t
	}
	if d := strings.TrimSpace(body.Description); d != "" {
		update["description"] = d
	}
	if body.Budget != nil {
		if *body.Budget < 0 {
			http.Error(w, "Budget must be non-negative", http.StatusBadRequest)
			return
		}
		update["budget"] = *body.Budget
	}
	if body.Skills != nil {
		update["skills"] = body.Skills
	}

	if _, err := db.MissionsCollection.UpdateOne(ctx, bson.M{"missionid": missionID}, bson.M{"$set": update}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update mission")
		return
	}

	updated, err := FetchMission(ctx, missionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reload mission")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// FetchMission loads one mission by its public id.
func FetchMission(ctx context.Context, missionID string) (models.Mission, error) {
	var m models.Mission
	err := db.MissionsCollection.FindOne(ctx, bson.M{"missionid": missionID}).Decode(&m)
	return m, err
}

// SetInProgress is called when a proposal is accepted: the mission moves to
// in_progress and records the hired talent. No-op when already past open.
func SetInProgress(ctx context.Context, missionID, talentID string) error {
	m, err := FetchMission(ctx, missionID)
	if err != nil {
		return err
	}
	if m.Status != models.MissionOpen {
		return nil
	}
	_, err = db.MissionsCollection.UpdateOne(ctx, bson.M{"missionid": missionID, "status": models.MissionOpen}, bson.M{
		"$set": bson.M{
			"status":         models.MissionInProgress,
			"hired_talentid": talentID,
			"updatedAt":      time.Now(),
		},
	})
	return err
}
