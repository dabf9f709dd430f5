package interviews

import (
	"errors"
	"fmt"
	"testing"

	"matchify/meet"
)

func TestIsServiceUnavailable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{meet.ErrServiceUnavailable, true},
		{fmt.Errorf("provider: %w", errors.New("HTTP 503")), true},
		{errors.New("Service Unavailable"), true},
		{errors.New("zoom api: Service unavailable, maintenance window"), true},
		{errors.New("connection refused"), false},
		{errors.New("bad request"), false},
	}

	for _, tc := range cases {
		if got := isServiceUnavailable(tc.err); got != tc.want {
			t.Errorf("isServiceUnavailable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
