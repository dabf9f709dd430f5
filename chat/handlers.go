package chat

import (
	"net/http"

	"matchify/db"
	"matchify/models"
	"matchify/rdx"
	"matchify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMessages returns the mission conversation, newest first.
func GetMessages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	missionID := ps.ByName("missionid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}
	if !missionMember(userID, missionID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not a participant of this mission")
		return
	}

	skip, limit := utils.ParsePagination(r, 50, 200)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	msgs, err := utils.FindAndDecode[models.Message](r.Context(), db.MessagesCollection, bson.M{"missionid": missionID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	rdx.ClearUnread(userID, missionID)
	utils.RespondWithJSON(w, http.StatusOK, msgs)
}

// GetUnreadCounts returns per-mission unread badge counters for the caller.
func GetUnreadCounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rdx.UnreadCounts(userID))
}
