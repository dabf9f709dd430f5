package deliverables

import (
	"errors"
	"testing"

	"matchify/models"
)

func TestCanReview(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.DeliverablePendingReview, models.DeliverableApproved, true},
		{models.DeliverablePendingReview, models.DeliverableRevisionRequested, true},
		{models.DeliverableRevisionRequested, models.DeliverablePendingReview, true},
		{models.DeliverableRevisionRequested, models.DeliverableApproved, false},
		{models.DeliverableApproved, models.DeliverablePendingReview, false},
		{models.DeliverableApproved, models.DeliverableRevisionRequested, false},
		{models.DeliverablePendingReview, models.DeliverablePendingReview, false},
		{"archived", models.DeliverableApproved, false},
	}

	for _, tc := range cases {
		if got := CanReview(tc.from, tc.to); got != tc.want {
			t.Errorf("CanReview(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestReviewApproveFromPending(t *testing.T) {
	d := &models.Deliverable{Status: models.DeliverablePendingReview}
	if err := Review(d, models.DeliverableApproved); err != nil {
		t.Fatalf("Review: %v", err)
	}
	if d.Status != models.DeliverableApproved {
		t.Fatalf("status = %s", d.Status)
	}
}

func TestReviewRepeatApprovalIsNoOp(t *testing.T) {
	d := &models.Deliverable{Status: models.DeliverableApproved}
	if err := Review(d, models.DeliverableApproved); err != nil {
		t.Fatalf("replayed approval must not error, got %v", err)
	}
	if d.Status != models.DeliverableApproved {
		t.Fatalf("status = %s", d.Status)
	}
}

func TestReviewRejectsApproveAfterRevisionRequest(t *testing.T) {
	d := &models.Deliverable{Status: models.DeliverableRevisionRequested}
	if err := Review(d, models.DeliverableApproved); !errors.Is(err, ErrInvalidReview) {
		t.Fatalf("err = %v, want ErrInvalidReview", err)
	}
	if d.Status != models.DeliverableRevisionRequested {
		t.Fatal("failed review must not mutate the deliverable")
	}
}

func TestApprovedIsTerminal(t *testing.T) {
	if !IsReviewTerminal(models.DeliverableApproved) {
		t.Fatal("approved must be terminal")
	}
	for _, s := range []string{models.DeliverablePendingReview, models.DeliverableRevisionRequested} {
		if IsReviewTerminal(s) {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}
