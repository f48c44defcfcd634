package model

import (
	"time"

	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

// CategoryScoreMap maps a category ID to its 0-100 risk score
type CategoryScoreMap map[types.CategoryID]float64

// Clone returns a shallow copy of the score map
func (m CategoryScoreMap) Clone() CategoryScoreMap {
	out := make(CategoryScoreMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// RiskAssessment is the pure result of aggregating category scores.
// It is ephemeral: the engine does not persist it.
type RiskAssessment struct {
	OverallRiskScore   int
	OverallSafetyScore int
	Tier               types.RiskTier
	CategoryScores     CategoryScoreMap
}

// Assessment wraps a RiskAssessment with the identity and timing the host
// application attaches when it runs the engine against a property.
type Assessment struct {
	ID         string
	PropertyID int64
	RiskAssessment
	ComputedAt time.Time
}
