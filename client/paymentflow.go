package client

import (
	"context"
	"log"

	"matchify/models"
)

// Payment attempt states.
type PaymentState string

const (
	PayNone          PaymentState = "none"
	PayConfigPending PaymentState = "configPending"
	PayConfigReady   PaymentState = "configReady"
	PayConfirming    PaymentState = "confirming"
	PaySucceeded     PaymentState = "succeeded"
	PayFailed        PaymentState = "failed"
)

// PaymentFlow drives one payment attempt for a mission: acquire a
// handshake, hand it to the external capture SDK, then confirm and
// reconcile. One instance per screen; not safe for concurrent use.
type PaymentFlow struct {
	api       API
	session   Session
	missionID string

	state     PaymentState
	handshake *models.PaymentHandshake
	mission   *models.Mission
	statusMsg string
	lastErr   error
}

func NewPaymentFlow(api API, session Session, missionID string) *PaymentFlow {
	return &PaymentFlow{
		api:       api,
		session:   session,
		missionID: missionID,
		state:     PayNone,
	}
}

func (f *PaymentFlow) State() PaymentState { return f.state }
func (f *PaymentFlow) Err() error          { return f.lastErr }
func (f *PaymentFlow) StatusMessage() string {
	return f.statusMsg
}

// Handshake returns the cached payment config, nil before Initiate
// succeeds or after the intent is consumed.
func (f *PaymentFlow) Handshake() *models.PaymentHandshake { return f.handshake }

// Mission returns the latest canonical mission state observed by the flow.
func (f *PaymentFlow) Mission() *models.Mission { return f.mission }

// Initiate acquires a payment handshake. Recruiters go through completion
// approval; talents request the intent directly. Re-invoking while a
// config is already cached reuses it rather than creating a duplicate
// intent.
func (f *PaymentFlow) Initiate(ctx context.Context) error {
	if err := f.session.validate(); err != nil {
		return f.fail(err)
	}

	switch f.state {
	case PaySucceeded:
		return nil
	case PayConfigReady:
		// Cached config stays live until consumed or cleared.
		return nil
	case PayConfigPending, PayConfirming:
		return nil
	}

	f.state = PayConfigPending

	var (
		res ApprovalResult
		err error
	)
	if f.session.Role == RoleRecruiter {
		res, err = f.api.ApproveCompletion(ctx, f.session, f.missionID)
	} else {
		res, err = f.api.CreatePaymentIntent(ctx, f.session, f.missionID)
	}
	if err != nil {
		return f.fail(err)
	}

	f.mission = &res.Mission
	if res.Payment == nil {
		// Nothing left to capture: the mission is already paid. That is
		// a terminal success, not an error.
		f.state = PaySucceeded
		f.statusMsg = "Mission already paid"
		return nil
	}

	f.handshake = res.Payment
	f.state = PayConfigReady
	f.statusMsg = "Payment ready for capture"
	return nil
}

// Confirm reconciles an externally captured intent. It requires the
// handshake from a prior Initiate; without one it fails before touching
// the network. On success the mission is reloaded so callers see the
// canonical post-payment state rather than the optimistic local value.
func (f *PaymentFlow) Confirm(ctx context.Context) error {
	if f.handshake == nil || f.handshake.PaymentIntentID == "" {
		return f.fail(ErrMissingPaymentContext)
	}
	if err := f.session.validate(); err != nil {
		return f.fail(err)
	}

	f.state = PayConfirming
	if err := f.api.ConfirmPayment(ctx, f.session, f.handshake.PaymentIntentID, f.missionID); err != nil {
		return f.fail(err)
	}

	f.state = PaySucceeded
	f.statusMsg = "Payment captured"
	f.handshake = nil // intent consumed

	m, err := f.api.GetMission(ctx, f.session, f.missionID)
	if err != nil {
		// Payment went through; a failed reload only costs freshness.
		log.Printf("payment confirmed but mission %s reload failed: %v", f.missionID, err)
		return nil
	}
	f.mission = &m
	return nil
}

// Reset clears a failed attempt so the user can retry.
func (f *PaymentFlow) Reset() {
	f.state = PayNone
	f.handshake = nil
	f.lastErr = nil
	f.statusMsg = ""
}

func (f *PaymentFlow) fail(err error) error {
	f.lastErr = err
	if IsPrecondition(err) {
		// Nothing was sent; leave the state machine where it was.
		return err
	}
	f.state = PayFailed
	if IsServiceUnavailable(err) {
		f.statusMsg = "Payment service unavailable, retry later"
	} else {
		f.statusMsg = "Payment failed"
	}
	return err
}
