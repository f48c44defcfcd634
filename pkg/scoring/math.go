package scoring

import "math"

// Clamp returns x bounded to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RiskToSafety converts a 0-100 risk score into its safety equivalent.
// RiskToSafety and SafetyToRisk are mutual inverses on [0,100]; composing
// them is idempotent up to clamping at the boundaries.
func RiskToSafety(risk float64) float64 {
	return Clamp(100-risk, 0, 100)
}

// SafetyToRisk converts a 0-100 safety score into its risk equivalent
func SafetyToRisk(safety float64) float64 {
	return Clamp(100-safety, 0, 100)
}

// roundHalfUp rounds to the nearest integer with halves rounding up.
// Intermediate scoring math stays in float64; rounding happens only at
// final outputs.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RoundScore rounds a final score for display. Callers must not round
// intermediate values; this is for the last step only.
func RoundScore(x float64) int {
	return roundHalfUp(x)
}
