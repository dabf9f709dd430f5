package client

import (
	"context"
	"time"

	"matchify/models"
)

// ApprovalResult is what approving a mission completion returns. Payment
// is nil when no charge remains to be captured, which is how an
// already-paid mission is reported: a success with no handshake, never an
// error to be sniffed out of message text.
type ApprovalResult struct {
	Mission models.Mission           `json:"mission"`
	Payment *models.PaymentHandshake `json:"payment,omitempty"`
}

// InterviewRequest carries the inputs for scheduling an interview.
type InterviewRequest struct {
	ProposalID   string
	ScheduledAt  time.Time
	Notes        string
	MeetLink     string
	AutoGenerate bool
}

// API is the narrow contract the orchestrators consume. HTTPClient is the
// production implementation; tests substitute fakes.
type API interface {
	GetMission(ctx context.Context, s Session, missionID string) (models.Mission, error)
	MarkAsCompleted(ctx context.Context, s Session, missionID string) (models.Mission, error)
	ApproveCompletion(ctx context.Context, s Session, missionID string) (ApprovalResult, error)
	CreatePaymentIntent(ctx context.Context, s Session, missionID string) (ApprovalResult, error)
	ConfirmPayment(ctx context.Context, s Session, paymentIntentID, missionID string) error
	CreateInterview(ctx context.Context, s Session, req InterviewRequest) (models.Interview, error)
	UpdateProposalStatus(ctx context.Context, s Session, proposalID, status string) error
	ApproveDeliverable(ctx context.Context, s Session, deliverableID string) error
	RequestDeliverableRevision(ctx context.Context, s Session, deliverableID, reason string) error
}
