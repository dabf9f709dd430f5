package client

import "math"

// PlatformFeeRate mirrors the marketplace cut applied server-side, used
// to show the recruiter charge and talent payout before any network call.
const PlatformFeeRate = 0.03

// FeeBreakdown is the displayed fee split for a mission budget. The two
// legs each carry their own independent 3% fee.
type FeeBreakdown struct {
	Budget         int
	PlatformFee    float64
	RecruiterTotal float64
	TalentPayout   float64
}

// PlatformFee returns the 3% fee for a budget, rounded to cents.
func PlatformFee(budget int) float64 {
	return math.Round(float64(budget)*PlatformFeeRate*100) / 100
}

// Fees computes the displayed breakdown for a mission budget.
func Fees(budget int) FeeBreakdown {
	recruiterFee := PlatformFee(budget)
	talentFee := PlatformFee(budget)
	return FeeBreakdown{
		Budget:         budget,
		PlatformFee:    recruiterFee,
		RecruiterTotal: float64(budget) + recruiterFee,
		TalentPayout:   float64(budget) - talentFee,
	}
}
