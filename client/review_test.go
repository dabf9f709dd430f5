package client

import (
	"context"
	"errors"
	"testing"
)

func TestRequestRevisionRequiresReason(t *testing.T) {
	api := &fakeAPI{}
	f := NewReviewFlow(api, recruiterSession())

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := f.RequestRevision(context.Background(), "d1", reason)
		var pe *PreconditionError
		if !errors.As(err, &pe) || pe.Field != "reason" {
			t.Fatalf("reason %q: err = %v, want reason precondition", reason, err)
		}
	}
	if len(api.calls) != 0 {
		t.Fatal("validation must run before any network call")
	}
}

func TestRequestRevisionSendsReason(t *testing.T) {
	var gotID, gotReason string
	api := &fakeAPI{
		requestRevision: func(deliverableID, reason string) error {
			gotID, gotReason = deliverableID, reason
			return nil
		},
	}
	f := NewReviewFlow(api, recruiterSession())

	if err := f.RequestRevision(context.Background(), "d1", "missing the export"); err != nil {
		t.Fatalf("RequestRevision: %v", err)
	}
	if gotID != "d1" || gotReason != "missing the export" {
		t.Fatalf("got %q %q", gotID, gotReason)
	}
}

func TestApproveWithoutToken(t *testing.T) {
	api := &fakeAPI{}
	f := NewReviewFlow(api, Session{Role: RoleRecruiter})

	if err := f.Approve(context.Background(), "d1"); !errors.Is(err, ErrNoAuthToken) {
		t.Fatalf("err = %v, want ErrNoAuthToken", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("no network call expected on a missing token")
	}
}

func TestApprovePassesThrough(t *testing.T) {
	var gotID string
	api := &fakeAPI{
		approveDeliverable: func(deliverableID string) error {
			gotID = deliverableID
			return nil
		},
	}
	f := NewReviewFlow(api, recruiterSession())

	if err := f.Approve(context.Background(), "d1"); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if gotID != "d1" {
		t.Fatalf("approved %q, want d1", gotID)
	}
}
