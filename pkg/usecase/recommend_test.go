package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/repository/memory"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"github.com/storesafe-app/storesafe/pkg/usecase"
)

func TestRecommend(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(), nil)

	t.Run("sole trader with low turnover gets the free plan", func(t *testing.T) {
		rec := uc.Recommend.Recommend(ctx, model.BusinessProfile{
			EmployeeCountRange:  scoring.EmployeeRangeJustMe,
			AnnualTurnoverRange: "Under £50,000",
		})
		gt.Value(t, rec.Tier).Equal(types.PlanTierFree)
		gt.Value(t, rec.PreliminaryRiskScore).Equal(50)
	})

	t.Run("staffed business gets premium", func(t *testing.T) {
		rec := uc.Recommend.Recommend(ctx, model.BusinessProfile{
			EmployeeCountRange:  "6-20",
			AnnualTurnoverRange: "£250,000 - £1 million",
		})
		gt.Value(t, rec.Tier).Equal(types.PlanTierPremium)
	})

	t.Run("risk score reflects the profile", func(t *testing.T) {
		rec := uc.Recommend.Recommend(ctx, model.BusinessProfile{
			BusinessActivity:     "Café",
			BuildingAgeRange:     scoring.BuildingAgeHistoric,
			ManagementExperience: scoring.ExperienceFirstBusiness,
			EmployeeCountRange:   "2-5",
		})
		// 50 + 10 + 15 + 15 = 90
		gt.Value(t, rec.PreliminaryRiskScore).Equal(90)
	})
}
