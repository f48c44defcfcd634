package scoring

import (
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

// Preliminary risk score constants. The onboarding score lives in a
// narrower 10-90 band than the operational risk score: it is a coarse
// signup heuristic, and the two are intentionally never reconciled.
const (
	preliminaryBaseline = 50
	preliminaryMin      = 10
	preliminaryMax      = 90

	qualificationCredit  = 2
	complianceItemCredit = 3
	largeBusinessLoading = 8
)

// Questionnaire option strings. These must match the signup form options
// verbatim; unrecognized values contribute nothing.
const (
	ExperienceFirstBusiness = "This is my first business"
	ExperienceOneToTwo      = "1-2 years"
	ExperienceThreeToFive   = "3-5 years"
	ExperienceSixToTen      = "6-10 years"
	ExperienceTenPlus       = "10+ years"

	EmployeeRangeJustMe = "Just me (1)"

	BuildingAgeHistoric = "Historic (before 1950)"
	BuildingAgeModern   = "Modern (built after 2000)"

	SizeCategoryLarge     = "Large"
	SizeCategoryVeryLarge = "Very large"
)

// Annual turnover bands in ascending order. The two highest bands count as
// high turnover for plan recommendation.
var turnoverBands = []string{
	"Under £50,000",
	"£50,000 - £250,000",
	"£250,000 - £1 million",
	"£1 million - £5 million",
	"Over £5 million",
}

// businessActivityLoadings is an extendable lookup; activities not listed
// contribute 0.
var businessActivityLoadings = map[string]int{
	"Café":              10,
	"Convenience Store": 5,
}

var buildingAgeLoadings = map[string]int{
	BuildingAgeHistoric: 15,
	BuildingAgeModern:   -5,
}

var experienceLoadings = map[string]int{
	ExperienceFirstBusiness: 15,
	ExperienceOneToTwo:      10,
	ExperienceThreeToFive:   5,
	ExperienceSixToTen:      0,
	ExperienceTenPlus:       -5,
}

// PreliminaryRiskScore computes the coarse 10-90 onboarding risk score from
// a business profile. The function is total: any profile yields a score.
func PreliminaryRiskScore(p model.BusinessProfile) int {
	score := preliminaryBaseline

	score += businessActivityLoadings[p.BusinessActivity]
	score += buildingAgeLoadings[p.BuildingAgeRange]
	score += experienceLoadings[p.ManagementExperience]

	score -= qualificationCredit * len(p.Qualifications)
	score -= complianceItemCredit * len(p.ComplianceItems)

	if p.SizeCategory == SizeCategoryLarge || p.SizeCategory == SizeCategoryVeryLarge {
		score += largeBusinessLoading
	}

	return roundHalfUp(Clamp(float64(score), preliminaryMin, preliminaryMax))
}

// isHighTurnover reports whether the turnover range is in the two highest
// bands. Unrecognized values are treated as low turnover.
func isHighTurnover(turnoverRange string) bool {
	for _, band := range turnoverBands[len(turnoverBands)-2:] {
		if turnoverRange == band {
			return true
		}
	}
	return false
}

// RecommendTier maps a business profile to a recommended subscription plan.
// FREE is suggested only for a sole trader outside the high turnover bands;
// every other profile maps to PREMIUM. Note that ENTERPRISE is never
// auto-recommended: the legacy flow's else-branch is identical to its
// PREMIUM branch, so the enterprise plan is only ever selected manually.
// That asymmetry is preserved here pending product confirmation.
func RecommendTier(p model.BusinessProfile) types.PlanTier {
	if p.EmployeeCountRange == EmployeeRangeJustMe && !isHighTurnover(p.AnnualTurnoverRange) {
		return types.PlanTierFree
	}
	return types.PlanTierPremium
}

// annualisedSavingsMultiplier converts a monthly premium discount into the
// headline savings figure shown on the dashboard: 48 = 12 months over a
// four-year policy horizon.
const annualisedSavingsMultiplier = 48

// Premium discount rates by management score grade. Scores below the Fair
// band earn no discount.
const (
	discountRateExcellent = 0.15
	discountRateGood      = 0.10
	discountRateFair      = 0.05
)

// EstimateInsuranceSavings estimates the headline premium savings for a
// given management score and monthly premium. The result is monotone in
// the management score.
func EstimateInsuranceSavings(managementScore int, monthlyPremium float64) float64 {
	if monthlyPremium <= 0 {
		return 0
	}

	var rate float64
	switch GradeForScore(managementScore) {
	case types.GradeExcellent:
		rate = discountRateExcellent
	case types.GradeGood:
		rate = discountRateGood
	case types.GradeFair:
		rate = discountRateFair
	default:
		return 0
	}

	return monthlyPremium * rate * annualisedSavingsMultiplier
}
