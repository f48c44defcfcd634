package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
)

func TestPreliminaryRiskScore(t *testing.T) {
	t.Run("empty profile sits at the baseline", func(t *testing.T) {
		gt.Value(t, scoring.PreliminaryRiskScore(model.BusinessProfile{})).Equal(50)
	})

	t.Run("loadings accumulate", func(t *testing.T) {
		// 50 + 10 (cafe) + 15 (historic) + 15 (first business) + 8 (large) = 98 -> clamps to 90
		score := scoring.PreliminaryRiskScore(model.BusinessProfile{
			BusinessActivity:     "Café",
			BuildingAgeRange:     scoring.BuildingAgeHistoric,
			ManagementExperience: scoring.ExperienceFirstBusiness,
			SizeCategory:         scoring.SizeCategoryLarge,
		})
		gt.Value(t, score).Equal(90)
	})

	t.Run("credits reduce the score", func(t *testing.T) {
		// 50 - 5 (modern) - 5 (10+ years) - 2*3 - 3*2 = 28
		score := scoring.PreliminaryRiskScore(model.BusinessProfile{
			BuildingAgeRange:     scoring.BuildingAgeModern,
			ManagementExperience: scoring.ExperienceTenPlus,
			Qualifications:       []string{"a", "b", "c"},
			ComplianceItems:      []string{"x", "y"},
		})
		gt.Value(t, score).Equal(28)
	})

	t.Run("clamps to the floor", func(t *testing.T) {
		quals := make([]string, 30)
		score := scoring.PreliminaryRiskScore(model.BusinessProfile{
			BuildingAgeRange:     scoring.BuildingAgeModern,
			ManagementExperience: scoring.ExperienceTenPlus,
			Qualifications:       quals,
		})
		gt.Value(t, score).Equal(10)
	})

	t.Run("unrecognized options contribute nothing", func(t *testing.T) {
		score := scoring.PreliminaryRiskScore(model.BusinessProfile{
			BusinessActivity:     "Submarine Base",
			BuildingAgeRange:     "yes",
			ManagementExperience: "lots",
			SizeCategory:         "huge",
		})
		gt.Value(t, score).Equal(50)
	})
}

func TestRecommendTier(t *testing.T) {
	tests := []struct {
		name     string
		employee string
		turnover string
		want     types.PlanTier
	}{
		{"sole trader low turnover", scoring.EmployeeRangeJustMe, "Under £50,000", types.PlanTierFree},
		{"sole trader no turnover answer", scoring.EmployeeRangeJustMe, "", types.PlanTierFree},
		{"sole trader high turnover", scoring.EmployeeRangeJustMe, "£1 million - £5 million", types.PlanTierPremium},
		{"sole trader top band", scoring.EmployeeRangeJustMe, "Over £5 million", types.PlanTierPremium},
		{"staffed low turnover", "2-5", "Under £50,000", types.PlanTierPremium},
		{"staffed high turnover", "21-50", "Over £5 million", types.PlanTierPremium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := scoring.RecommendTier(model.BusinessProfile{
				EmployeeCountRange:  tt.employee,
				AnnualTurnoverRange: tt.turnover,
			})
			gt.Value(t, tier).Equal(tt.want)
		})
	}
}

func TestEstimateInsuranceSavings(t *testing.T) {
	t.Run("discount rate follows the grade", func(t *testing.T) {
		// 100 * rate * 48
		gt.Value(t, scoring.EstimateInsuranceSavings(800, 100)).Equal(720.0)
		gt.Value(t, scoring.EstimateInsuranceSavings(700, 100)).Equal(480.0)
		gt.Value(t, scoring.EstimateInsuranceSavings(600, 100)).Equal(240.0)
	})

	t.Run("no discount below the fair band", func(t *testing.T) {
		gt.Value(t, scoring.EstimateInsuranceSavings(500, 100)).Equal(0.0)
		gt.Value(t, scoring.EstimateInsuranceSavings(300, 100)).Equal(0.0)
	})

	t.Run("non-positive premium yields nothing", func(t *testing.T) {
		gt.Value(t, scoring.EstimateInsuranceSavings(800, 0)).Equal(0.0)
		gt.Value(t, scoring.EstimateInsuranceSavings(800, -10)).Equal(0.0)
	})

	t.Run("monotone in the management score", func(t *testing.T) {
		prev := 0.0
		for _, score := range []int{400, 600, 700, 800} {
			cur := scoring.EstimateInsuranceSavings(score, 150)
			gt.Bool(t, cur >= prev).True()
			prev = cur
		}
	})
}
