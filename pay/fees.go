package pay

import "math"

// PlatformFeeRate is the marketplace cut applied on each mission payment.
const PlatformFeeRate = 0.03

// FeeBreakdown describes how a mission budget splits between the recruiter
// charge and the talent payout. The recruiter-side and talent-side fees are
// computed independently: the platform collects its margin on both legs.
type FeeBreakdown struct {
	Budget         int     `json:"budget"`
	PlatformFee    float64 `json:"platform_fee"`
	RecruiterTotal float64 `json:"recruiter_total"`
	TalentPayout   float64 `json:"talent_payout"`
}

// PlatformFee returns the 3% fee for a budget, rounded to cents.
func PlatformFee(budget int) float64 {
	return math.Round(float64(budget)*PlatformFeeRate*100) / 100
}

// Breakdown computes the full fee split for a mission budget.
func Breakdown(budget int) FeeBreakdown {
	recruiterFee := PlatformFee(budget)
	talentFee := PlatformFee(budget)
	return FeeBreakdown{
		Budget:         budget,
		PlatformFee:    recruiterFee,
		RecruiterTotal: float64(budget) + recruiterFee,
		TalentPayout:   float64(budget) - talentFee,
	}
}
