package meet

import (
	"errors"
	"fmt"
	"time"
)

// ErrServiceUnavailable signals that the calendar/video provider rejected the
// request with a 503 or equivalent outage condition.
var ErrServiceUnavailable = errors.New("meet provider unavailable (503 Service Unavailable)")

type Session struct {
	Link   string
	Source string
}

// Generator creates a meeting link for an interview slot. Replaced in tests
// and during provider outages.
type Generator func(proposalID string, scheduledAt time.Time) (Session, error)

// GenerateLink is the default generator backed by the calendar provider.
var GenerateLink Generator = func(proposalID string, scheduledAt time.Time) (Session, error) {
	var s Session
	s.Link = fmt.Sprintf("https://meet.google.com/mfy-%s-%d", proposalID, scheduledAt.Unix())
	s.Source = "GOOGLE"
	var err error
	return s, err
}
