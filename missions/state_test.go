package missions

import (
	"errors"
	"testing"

	"matchify/models"
)

func TestTransitionsOnlyMoveForward(t *testing.T) {
	statuses := []string{
		models.MissionOpen,
		models.MissionInProgress,
		models.MissionCompleted,
		models.MissionPaid,
	}

	for i, from := range statuses {
		for j, to := range statuses {
			got := CanTransition(from, to)
			want := j == i+1
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestPaidIsTerminal(t *testing.T) {
	if !IsTerminal(models.MissionPaid) {
		t.Fatal("paid must be terminal")
	}
	for _, s := range []string{models.MissionOpen, models.MissionInProgress, models.MissionCompleted} {
		if IsTerminal(s) {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	m := &models.Mission{Status: "archived"}
	if err := Transition(m, models.MissionPaid); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
	if m.Status != "archived" {
		t.Fatal("failed transition must not mutate the mission")
	}
}

func TestTransitionAppliesStatus(t *testing.T) {
	m := &models.Mission{Status: models.MissionInProgress}
	if err := Transition(m, models.MissionCompleted); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if m.Status != models.MissionCompleted {
		t.Fatalf("status = %s", m.Status)
	}
}
