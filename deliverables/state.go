package deliverables

import (
	"errors"

	"matchify/models"
)

// ErrInvalidReview is returned when a deliverable status change is not a
// legal review step.
var ErrInvalidReview = errors.New("invalid deliverable review transition")

var reviewSteps = map[string]map[string]bool{
	models.DeliverablePendingReview: {
		models.DeliverableApproved:          true,
		models.DeliverableRevisionRequested: true,
	},
	models.DeliverableRevisionRequested: {
		// resubmission re-opens the review
		models.DeliverablePendingReview: true,
	},
}

// CanReview reports whether from -> to is a legal review step. Approved
// is terminal.
func CanReview(from, to string) bool {
	return reviewSteps[from][to]
}

// Review validates and applies a status change on the in-memory
// deliverable. Setting the status it already holds is a no-op, so
// replayed approvals succeed without effect.
func Review(d *models.Deliverable, to string) error {
	if d.Status == to {
		return nil
	}
	if !CanReview(d.Status, to) {
		return ErrInvalidReview
	}
	d.Status = to
	return nil
}

// IsReviewTerminal reports whether no further review step is possible.
func IsReviewTerminal(status string) bool {
	return status == models.DeliverableApproved
}
