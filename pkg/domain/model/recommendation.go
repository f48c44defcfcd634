package model

import "github.com/storesafe-app/storesafe/pkg/domain/types"

// Recommendation is the onboarding output: a coarse 10-90 preliminary risk
// score and a suggested subscription plan. The preliminary score is a
// signup heuristic and is intentionally not comparable with the 0-100
// category-weighted operational risk score.
type Recommendation struct {
	PreliminaryRiskScore int
	Tier                 types.PlanTier
}
