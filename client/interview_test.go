package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"matchify/models"
)

func interviewRequest() InterviewRequest {
	return InterviewRequest{
		ProposalID:   "p1",
		ScheduledAt:  time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC),
		AutoGenerate: true,
	}
}

func TestScheduleManualModeRequiresLink(t *testing.T) {
	api := &fakeAPI{}
	c := NewInterviewCoordinator(api, recruiterSession())

	req := interviewRequest()
	req.AutoGenerate = false
	req.MeetLink = "   "

	_, err := c.Schedule(context.Background(), req)
	var pe *PreconditionError
	if !errors.As(err, &pe) || pe.Field != "meet_link" {
		t.Fatalf("err = %v, want meet_link precondition", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("validation must run before any network call")
	}
}

func TestScheduleRequiresDate(t *testing.T) {
	api := &fakeAPI{}
	c := NewInterviewCoordinator(api, recruiterSession())

	req := interviewRequest()
	req.ScheduledAt = time.Time{}

	_, err := c.Schedule(context.Background(), req)
	var pe *PreconditionError
	if !errors.As(err, &pe) || pe.Field != "scheduled_at" {
		t.Fatalf("err = %v, want scheduled_at precondition", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("validation must run before any network call")
	}
}

func TestScheduleSyncsProposalStatus(t *testing.T) {
	var gotStatus string
	api := &fakeAPI{
		updateProposalStatus: func(proposalID, status string) error {
			gotStatus = status
			return nil
		},
	}
	c := NewInterviewCoordinator(api, recruiterSession())

	iv, err := c.Schedule(context.Background(), interviewRequest())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if iv.InterviewID == "" {
		t.Fatal("expected a created interview")
	}
	if gotStatus != models.ProposalAccepted {
		t.Fatalf("proposal status = %q, want %q", gotStatus, models.ProposalAccepted)
	}
}

func TestScheduleToleratesStatusSyncFailure(t *testing.T) {
	api := &fakeAPI{
		updateProposalStatus: func(proposalID, status string) error {
			return &TransportError{Op: "update proposal status", Status: 500, Err: errors.New("boom")}
		},
	}
	c := NewInterviewCoordinator(api, recruiterSession())

	iv, err := c.Schedule(context.Background(), interviewRequest())
	if err != nil {
		t.Fatalf("a failed status sync must not fail the schedule, got %v", err)
	}
	if iv.InterviewID == "" {
		t.Fatal("interview result must still reflect success")
	}
}

func TestScheduleSurfacesProviderOutage(t *testing.T) {
	api := &fakeAPI{
		createInterview: func(req InterviewRequest) (models.Interview, error) {
			return models.Interview{}, errors.New("upstream returned 503")
		},
	}
	c := NewInterviewCoordinator(api, recruiterSession())

	_, err := c.Schedule(context.Background(), interviewRequest())
	if !IsServiceUnavailable(err) {
		t.Fatalf("err = %v, want service-unavailable", err)
	}
	for _, call := range api.calls {
		if call == "UpdateProposalStatus" {
			t.Fatal("no status sync after a failed creation")
		}
	}
}
