package client

import "testing"

func TestFeesSplit(t *testing.T) {
	b := Fees(1000)
	if b.PlatformFee != 30.0 {
		t.Fatalf("fee = %v, want 30", b.PlatformFee)
	}
	if b.RecruiterTotal != 1030.0 {
		t.Fatalf("recruiter total = %v, want 1030", b.RecruiterTotal)
	}
	if b.TalentPayout != 970.0 {
		t.Fatalf("talent payout = %v, want 970", b.TalentPayout)
	}
}

func TestFeesNonNegativeBudgets(t *testing.T) {
	for _, budget := range []int{0, 1, 17, 99, 1000, 123456} {
		b := Fees(budget)
		if b.PlatformFee < 0 {
			t.Fatalf("budget %d: negative fee %v", budget, b.PlatformFee)
		}
		if got := b.RecruiterTotal; got != float64(budget)+b.PlatformFee {
			t.Fatalf("budget %d: recruiter total %v", budget, got)
		}
		if got := b.TalentPayout; got != float64(budget)-b.PlatformFee {
			t.Fatalf("budget %d: talent payout %v", budget, got)
		}
	}
}
