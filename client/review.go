package client

import (
	"context"
	"strings"
)

// ReviewFlow drives recruiter review of submitted deliverables.
type ReviewFlow struct {
	api     API
	session Session
}

func NewReviewFlow(api API, session Session) *ReviewFlow {
	return &ReviewFlow{api: api, session: session}
}

// Approve marks a deliverable approved. The backend treats a repeat
// approval as a no-op, so retries are safe.
func (f *ReviewFlow) Approve(ctx context.Context, deliverableID string) error {
	if err := f.session.validate(); err != nil {
		return err
	}
	if deliverableID == "" {
		return &PreconditionError{Field: "deliverable", Reason: "required"}
	}
	return f.api.ApproveDeliverable(ctx, f.session, deliverableID)
}

// RequestRevision re-opens a deliverable for resubmission. The reason is
// mandatory and checked before any network call.
func (f *ReviewFlow) RequestRevision(ctx context.Context, deliverableID, reason string) error {
	if err := f.session.validate(); err != nil {
		return err
	}
	if deliverableID == "" {
		return &PreconditionError{Field: "deliverable", Reason: "required"}
	}
	if strings.TrimSpace(reason) == "" {
		return &PreconditionError{Field: "reason", Reason: "a revision reason is required"}
	}
	return f.api.RequestDeliverableRevision(ctx, f.session, deliverableID, reason)
}
