package client

import (
	"context"

	"matchify/models"
)

// fakeAPI lets each test plug in just the calls it cares about and
// records what was invoked.
type fakeAPI struct {
	getMission           func(missionID string) (models.Mission, error)
	markAsCompleted      func(missionID string) (models.Mission, error)
	approveCompletion    func(missionID string) (ApprovalResult, error)
	createPaymentIntent  func(missionID string) (ApprovalResult, error)
	confirmPayment       func(paymentIntentID, missionID string) error
	createInterview      func(req InterviewRequest) (models.Interview, error)
	updateProposalStatus func(proposalID, status string) error
	approveDeliverable   func(deliverableID string) error
	requestRevision      func(deliverableID, reason string) error

	calls []string
}

func (f *fakeAPI) GetMission(_ context.Context, _ Session, missionID string) (models.Mission, error) {
	f.calls = append(f.calls, "GetMission")
	if f.getMission == nil {
		return models.Mission{MissionID: missionID}, nil
	}
	return f.getMission(missionID)
}

func (f *fakeAPI) MarkAsCompleted(_ context.Context, _ Session, missionID string) (models.Mission, error) {
	f.calls = append(f.calls, "MarkAsCompleted")
	if f.markAsCompleted == nil {
		return models.Mission{MissionID: missionID}, nil
	}
	return f.markAsCompleted(missionID)
}

func (f *fakeAPI) ApproveCompletion(_ context.Context, _ Session, missionID string) (ApprovalResult, error) {
	f.calls = append(f.calls, "ApproveCompletion")
	if f.approveCompletion == nil {
		return ApprovalResult{}, nil
	}
	return f.approveCompletion(missionID)
}

func (f *fakeAPI) CreatePaymentIntent(_ context.Context, _ Session, missionID string) (ApprovalResult, error) {
	f.calls = append(f.calls, "CreatePaymentIntent")
	if f.createPaymentIntent == nil {
		return ApprovalResult{}, nil
	}
	return f.createPaymentIntent(missionID)
}

func (f *fakeAPI) ConfirmPayment(_ context.Context, _ Session, paymentIntentID, missionID string) error {
	f.calls = append(f.calls, "ConfirmPayment")
	if f.confirmPayment == nil {
		return nil
	}
	return f.confirmPayment(paymentIntentID, missionID)
}

func (f *fakeAPI) CreateInterview(_ context.Context, _ Session, req InterviewRequest) (models.Interview, error) {
	f.calls = append(f.calls, "CreateInterview")
	if f.createInterview == nil {
		return models.Interview{InterviewID: "iv1", ProposalID: req.ProposalID}, nil
	}
	return f.createInterview(req)
}

func (f *fakeAPI) UpdateProposalStatus(_ context.Context, _ Session, proposalID, status string) error {
	f.calls = append(f.calls, "UpdateProposalStatus")
	if f.updateProposalStatus == nil {
		return nil
	}
	return f.updateProposalStatus(proposalID, status)
}

func (f *fakeAPI) ApproveDeliverable(_ context.Context, _ Session, deliverableID string) error {
	f.calls = append(f.calls, "ApproveDeliverable")
	if f.approveDeliverable == nil {
		return nil
	}
	return f.approveDeliverable(deliverableID)
}

func (f *fakeAPI) RequestDeliverableRevision(_ context.Context, _ Session, deliverableID, reason string) error {
	f.calls = append(f.calls, "RequestDeliverableRevision")
	if f.requestRevision == nil {
		return nil
	}
	return f.requestRevision(deliverableID, reason)
}

func recruiterSession() Session {
	return Session{Token: "t", UserID: "r1", Role: RoleRecruiter}
}

func talentSession() Session {
	return Session{Token: "t", UserID: "u1", Role: RoleTalent}
}
