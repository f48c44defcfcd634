package scoring

import (
	"github.com/storesafe-app/storesafe/pkg/domain/model"
)

// NeutralRiskScore is returned for categories that have no inspection data
// yet. The onboarding flow renders scores before any inspection exists, so
// an empty report list is a documented default, not an error.
const NeutralRiskScore = 50.0

// meanSafetyScore averages the safety scores of the given reports, clamping
// each to [0,100] first. Returns ok=false when there are no reports.
func meanSafetyScore(reports []model.InspectionReport) (float64, bool) {
	if len(reports) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, r := range reports {
		sum += Clamp(r.SafetyScore, 0, 100)
	}
	return sum / float64(len(reports)), true
}

// ElectricalCategoryScore derives the 0-100 risk score for the electrical
// inspection category: the mean of the reports' safety scores, inverted.
// With no reports it returns NeutralRiskScore.
func ElectricalCategoryScore(reports []model.InspectionReport) float64 {
	safety, ok := meanSafetyScore(reports)
	if !ok {
		return NeutralRiskScore
	}
	return SafetyToRisk(safety)
}

// DrainageCategoryScore derives the 0-100 risk score for the drainage
// inspection category, with its own independent neutral default.
func DrainageCategoryScore(reports []model.InspectionReport) float64 {
	safety, ok := meanSafetyScore(reports)
	if !ok {
		return NeutralRiskScore
	}
	return SafetyToRisk(safety)
}

// CombinedPropertyScore merges the electrical and drainage safety means
// into a single property risk score. The two safety values are averaged
// first and inverted once; rounding happens only at the final output, never
// at intermediate steps.
func CombinedPropertyScore(electricalSafety, drainageSafety float64) float64 {
	mean := (Clamp(electricalSafety, 0, 100) + Clamp(drainageSafety, 0, 100)) / 2
	return SafetyToRisk(mean)
}
