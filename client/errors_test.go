package client

import (
	"errors"
	"testing"
)

func TestIsServiceUnavailableDetection(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{&ServiceUnavailableError{Op: "x", Err: errors.New("down")}, true},
		{&TransportError{Op: "x", Status: 503, Err: errors.New("got 503 from upstream")}, true},
		{errors.New("Service Unavailable"), true},
		{&TransportError{Op: "x", Status: 500, Err: errors.New("boom")}, false},
		{errors.New("timeout"), false},
	}

	for _, tc := range cases {
		if got := IsServiceUnavailable(tc.err); got != tc.want {
			t.Errorf("IsServiceUnavailable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestIsPrecondition(t *testing.T) {
	if !IsPrecondition(ErrNoAuthToken) {
		t.Fatal("ErrNoAuthToken is a precondition failure")
	}
	if !IsPrecondition(ErrMissingPaymentContext) {
		t.Fatal("ErrMissingPaymentContext is a precondition failure")
	}
	if !IsPrecondition(&PreconditionError{Field: "reason", Reason: "required"}) {
		t.Fatal("PreconditionError is a precondition failure")
	}
	if IsPrecondition(&TransportError{Op: "x", Err: errors.New("boom")}) {
		t.Fatal("TransportError is not a precondition failure")
	}
}
