package usecase

import (
	"context"

	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"github.com/storesafe-app/storesafe/pkg/utils/logging"
)

type RecommendUseCase struct{}

func NewRecommendUseCase() *RecommendUseCase {
	return &RecommendUseCase{}
}

// Recommend computes the onboarding recommendation for a business profile.
// It is total: any profile, including one full of unrecognized option
// strings, yields a recommendation.
func (uc *RecommendUseCase) Recommend(ctx context.Context, profile model.BusinessProfile) *model.Recommendation {
	rec := &model.Recommendation{
		PreliminaryRiskScore: scoring.PreliminaryRiskScore(profile),
		Tier:                 scoring.RecommendTier(profile),
	}

	logging.From(ctx).Info("computed tier recommendation",
		"preliminary_risk_score", rec.PreliminaryRiskScore,
		"tier", rec.Tier,
	)

	return rec
}
