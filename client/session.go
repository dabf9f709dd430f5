package client

import "strings"

// Roles a session can act under.
const (
	RoleRecruiter = "recruiter"
	RoleTalent    = "talent"
)

// Session is the read-only auth context passed into every operation.
// It is injected explicitly; the orchestrators never reach into any
// process-wide store.
type Session struct {
	Token  string
	UserID string
	Role   string
}

func (s Session) validate() error {
	if strings.TrimSpace(s.Token) == "" {
		return ErrNoAuthToken
	}
	return nil
}
