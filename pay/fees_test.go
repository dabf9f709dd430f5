package pay

import "testing"

func TestBreakdownScenario(t *testing.T) {
	b := Breakdown(1000)
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

func TestBreakdownLegsBalance(t *testing.T) {
	for _, budget := range []int{0, 1, 3, 17, 99, 250, 1000, 99999} {
		b := Breakdown(budget)
		if b.PlatformFee < 0 {
			t.Fatalf("budget %d: negative fee", budget)
		}
		if b.RecruiterTotal != float64(budget)+b.PlatformFee {
			t.Fatalf("budget %d: recruiter total %v", budget, b.RecruiterTotal)
		}
		if b.TalentPayout != float64(budget)-b.PlatformFee {
			t.Fatalf("budget %d: talent payout %v", budget, b.TalentPayout)
		}
		// both legs carry the same independently computed fee
		if b.RecruiterTotal-float64(budget) != float64(budget)-b.TalentPayout {
			t.Fatalf("budget %d: fee legs diverge", budget)
		}
	}
}

func TestPlatformFeeRoundsToCents(t *testing.T) {
	// 3% of 17 is 0.51 exactly; 3% of 1 is 0.03
	if got := PlatformFee(17); got != 0.51 {
		t.Fatalf("PlatformFee(17) = %v, want 0.51", got)
	}
	if got := PlatformFee(1); got != 0.03 {
		t.Fatalf("PlatformFee(1) = %v, want 0.03", got)
	}
	if got := PlatformFee(0); got != 0 {
		t.Fatalf("PlatformFee(0) = %v, want 0", got)
	}
}
