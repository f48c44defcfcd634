package scoring

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
)

// Aggregate combines a complete category score map into the overall risk
// assessment. Every registered category must be present: missing entries
// raise ErrMissingCategoryScore rather than defaulting, since a silent
// default here would mask caller bugs. Unknown ids are rejected. Scores
// outside [0,100] are clamped. The computation is deterministic: identical
// inputs always produce identical results.
func (r *Registry) Aggregate(scores model.CategoryScoreMap) (*model.RiskAssessment, error) {
	for id := range scores {
		if !r.Contains(id) {
			return nil, goerr.Wrap(ErrUnknownCategory, "score supplied for unregistered category",
				goerr.V(CategoryIDKey, id))
		}
	}

	overall := 0.0
	clamped := make(model.CategoryScoreMap, len(r.categories))
	for _, c := range r.categories {
		score, ok := scores[c.ID]
		if !ok {
			return nil, goerr.Wrap(ErrMissingCategoryScore, "category has no score entry",
				goerr.V(CategoryIDKey, c.ID))
		}
		score = Clamp(score, 0, 100)
		clamped[c.ID] = score
		overall += c.Weight * score
	}

	riskScore := roundHalfUp(overall)
	return &model.RiskAssessment{
		OverallRiskScore:   riskScore,
		OverallSafetyScore: roundHalfUp(RiskToSafety(float64(riskScore))),
		Tier:               TierForScore(float64(riskScore)),
		CategoryScores:     clamped,
	}, nil
}
