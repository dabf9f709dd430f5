package missions

import (
	"errors"
	"matchify/models"
)

// ErrInvalidState is returned when a mission status change would skip a
// state or move backward.
var ErrInvalidState = errors.New("invalid mission state transition")

var statusOrder = map[string]int{
	models.MissionOpen:       0,
	models.MissionInProgress: 1,
	models.MissionCompleted:  2,
	models.MissionPaid:       3,
}

// CanTransition reports whether from -> to is a legal single step of the
// mission lifecycle. Paid is terminal.
func CanTransition(from, to string) bool {
	f, ok := statusOrder[from]
	if !ok {
		return false
	}
	t, ok := statusOrder[to]
	if !ok {
		return false
	}
	return t == f+1
}

// Transition validates and applies a status change on the in-memory mission.
func Transition(m *models.Mission, to string) error {
	if !CanTransition(m.Status, to) {
		return ErrInvalidState
	}
	m.Status = to
	return nil
}

// IsTerminal reports whether no further status change is possible.
func IsTerminal(status string) bool {
	return status == models.MissionPaid
}
