package utils

import (
	"matchify/globals"
	"net/http"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetRoleFromRequest(r *http.Request) []string {
	ctx := r.Context()
	roles, ok := ctx.Value(globals.RoleKey).([]string)
	if !ok {
		return nil
	}
	return roles
}

func HasRole(r *http.Request, role string) bool {
	for _, v := range GetRoleFromRequest(r) {
		if v == role {
			return true
		}
	}
	return false
}
