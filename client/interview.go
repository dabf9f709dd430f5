package client

import (
	"context"
	"log"
	"strings"

	"matchify/models"
)

// InterviewCoordinator couples interview scheduling to the proposal
// lifecycle: a successfully created interview marks its proposal
// ACCEPTED, best effort.
type InterviewCoordinator struct {
	api     API
	session Session
}

func NewInterviewCoordinator(api API, session Session) *InterviewCoordinator {
	return &InterviewCoordinator{api: api, session: session}
}

// Schedule validates inputs, creates the interview, then syncs the
// proposal status. The sync is a best-effort mirror: its failure is
// logged and the interview still counts as created, to be reconciled on
// the next proposal fetch.
func (c *InterviewCoordinator) Schedule(ctx context.Context, req InterviewRequest) (models.Interview, error) {
	if err := c.session.validate(); err != nil {
		return models.Interview{}, err
	}
	if req.ProposalID == "" {
		return models.Interview{}, &PreconditionError{Field: "proposal", Reason: "required"}
	}
	if req.ScheduledAt.IsZero() {
		return models.Interview{}, &PreconditionError{Field: "scheduled_at", Reason: "date and time are required"}
	}
	req.MeetLink = strings.TrimSpace(req.MeetLink)
	if !req.AutoGenerate && req.MeetLink == "" {
		return models.Interview{}, &PreconditionError{Field: "meet_link", Reason: "a meeting link is required in manual mode"}
	}

	iv, err := c.api.CreateInterview(ctx, c.session, req)
	if err != nil {
		if IsServiceUnavailable(err) {
			return models.Interview{}, &ServiceUnavailableError{Op: "generate meeting link", Err: err}
		}
		return models.Interview{}, err
	}

	if err := c.api.UpdateProposalStatus(ctx, c.session, req.ProposalID, models.ProposalAccepted); err != nil {
		log.Printf("interview %s created but proposal %s status sync failed: %v", iv.InterviewID, req.ProposalID, err)
	}
	return iv, nil
}
