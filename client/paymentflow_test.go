package client

import (
	"context"
	"errors"
	"testing"

	"matchify/models"
)

func handshake() *models.PaymentHandshake {
	return &models.PaymentHandshake{
		ClientSecret:    "secret",
		PaymentIntentID: "pi_123",
	}
}

func TestInitiateRecruiterGetsHandshake(t *testing.T) {
	api := &fakeAPI{
		approveCompletion: func(missionID string) (ApprovalResult, error) {
			return ApprovalResult{
				Mission: models.Mission{MissionID: missionID, Status: models.MissionCompleted},
				Payment: handshake(),
			}, nil
		},
	}
	f := NewPaymentFlow(api, recruiterSession(), "m1")

	if err := f.Initiate(context.Background()); err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if f.State() != PayConfigReady {
		t.Fatalf("state = %s, want %s", f.State(), PayConfigReady)
	}
	if f.Handshake() == nil || f.Handshake().PaymentIntentID != "pi_123" {
		t.Fatalf("handshake = %+v", f.Handshake())
	}
}

func TestInitiateTalentUsesIntentEndpoint(t *testing.T) {
	api := &fakeAPI{
		createPaymentIntent: func(missionID string) (ApprovalResult, error) {
			return ApprovalResult{
				Mission: models.Mission{MissionID: missionID, Status: models.MissionCompleted},
				Payment: handshake(),
			}, nil
		},
	}
	f := NewPaymentFlow(api, talentSession(), "m1")

	if err := f.Initiate(context.Background()); err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	for _, call := range api.calls {
		if call == "ApproveCompletion" {
			t.Fatal("talent path must not call ApproveCompletion")
		}
	}
	if f.State() != PayConfigReady {
		t.Fatalf("state = %s, want %s", f.State(), PayConfigReady)
	}
}

func TestInitiateAlreadyPaidIsSuccess(t *testing.T) {
	api := &fakeAPI{
		approveCompletion: func(missionID string) (ApprovalResult, error) {
			return ApprovalResult{
				Mission: models.Mission{MissionID: missionID, Status: models.MissionPaid},
			}, nil
		},
	}
	f := NewPaymentFlow(api, recruiterSession(), "m1")

	if err := f.Initiate(context.Background()); err != nil {
		t.Fatalf("already paid must not be an error, got %v", err)
	}
	if f.State() != PaySucceeded {
		t.Fatalf("state = %s, want %s", f.State(), PaySucceeded)
	}
	if f.StatusMessage() != "Mission already paid" {
		t.Fatalf("status message = %q", f.StatusMessage())
	}

	// Second invocation stays a success and sends nothing.
	calls := len(api.calls)
	if err := f.Initiate(context.Background()); err != nil {
		t.Fatalf("repeat Initiate: %v", err)
	}
	if len(api.calls) != calls {
		t.Fatal("repeat Initiate on a paid mission must not hit the network")
	}
}

func TestInitiateReusesCachedConfig(t *testing.T) {
	api := &fakeAPI{
		approveCompletion: func(missionID string) (ApprovalResult, error) {
			return ApprovalResult{
				Mission: models.Mission{MissionID: missionID, Status: models.MissionCompleted},
				Payment: handshake(),
			}, nil
		},
	}
	f := NewPaymentFlow(api, recruiterSession(), "m1")

	if err := f.Initiate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := f.Initiate(context.Background()); err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, call := range api.calls {
		if call == "ApproveCompletion" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("ApproveCompletion called %d times, want 1", count)
	}
}

func TestInitiateWithoutTokenFailsBeforeNetwork(t *testing.T) {
	api := &fakeAPI{}
	f := NewPaymentFlow(api, Session{Role: RoleRecruiter}, "m1")

	err := f.Initiate(context.Background())
	if !errors.Is(err, ErrNoAuthToken) {
		t.Fatalf("err = %v, want ErrNoAuthToken", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("no network call expected on a missing token")
	}
}

func TestConfirmWithoutIntentFailsBeforeNetwork(t *testing.T) {
	api := &fakeAPI{}
	f := NewPaymentFlow(api, recruiterSession(), "m1")

	err := f.Confirm(context.Background())
	if !errors.Is(err, ErrMissingPaymentContext) {
		t.Fatalf("err = %v, want ErrMissingPaymentContext", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("no network call expected without a stored intent")
	}
}

func TestConfirmSucceedsAndReloadsMission(t *testing.T) {
	api := &fakeAPI{
		approveCompletion: func(missionID string) (ApprovalResult, error) {
			return ApprovalResult{
				Mission: models.Mission{MissionID: missionID, Status: models.MissionCompleted},
				Payment: handshake(),
			}, nil
		},
		getMission: func(missionID string) (models.Mission, error) {
			return models.Mission{MissionID: missionID, Status: models.MissionPaid}, nil
		},
	}
	f := NewPaymentFlow(api, recruiterSession(), "m1")

	if err := f.Initiate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := f.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if f.State() != PaySucceeded {
		t.Fatalf("state = %s, want %s", f.State(), PaySucceeded)
	}
	if f.Mission() == nil || f.Mission().Status != models.MissionPaid {
		t.Fatalf("mission not reloaded: %+v", f.Mission())
	}
	if f.Handshake() != nil {
		t.Fatal("handshake must be cleared once the intent is consumed")
	}
}

func TestConfirmFailureAllowsRetry(t *testing.T) {
	fail := true
	api := &fakeAPI{
		approveCompletion: func(missionID string) (ApprovalResult, error) {
			return ApprovalResult{
				Mission: models.Mission{MissionID: missionID, Status: models.MissionCompleted},
				Payment: handshake(),
			}, nil
		},
		confirmPayment: func(paymentIntentID, missionID string) error {
			if fail {
				return &TransportError{Op: "confirm payment", Status: 500, Err: errors.New("boom")}
			}
			return nil
		},
	}
	f := NewPaymentFlow(api, recruiterSession(), "m1")

	if err := f.Initiate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := f.Confirm(context.Background()); err == nil {
		t.Fatal("expected confirm failure")
	}
	if f.State() != PayFailed {
		t.Fatalf("state = %s, want %s", f.State(), PayFailed)
	}
	if f.Handshake() == nil {
		t.Fatal("handshake must survive a failed confirm for retry")
	}

	fail = false
	if err := f.Confirm(context.Background()); err != nil {
		t.Fatalf("retry Confirm: %v", err)
	}
	if f.State() != PaySucceeded {
		t.Fatalf("state = %s, want %s", f.State(), PaySucceeded)
	}
}
