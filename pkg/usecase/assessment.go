package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"golang.org/x/sync/errgroup"
)

// assessPortfolioConcurrency bounds the number of properties assessed in
// parallel during a portfolio run
const assessPortfolioConcurrency = 8

type AssessmentUseCase struct {
	repo     interfaces.Repository
	registry *scoring.Registry
}

func NewAssessmentUseCase(repo interfaces.Repository, registry *scoring.Registry) *AssessmentUseCase {
	return &AssessmentUseCase{
		repo:     repo,
		registry: registry,
	}
}

func derefReports(rs []*model.InspectionReport) []model.InspectionReport {
	out := make([]model.InspectionReport, len(rs))
	for i, r := range rs {
		out[i] = *r
	}
	return out
}

// AssessScores aggregates a complete caller-supplied category score map.
// The map must cover every registered category; missing or unknown ids
// surface as errors rather than being defaulted here.
func (uc *AssessmentUseCase) AssessScores(ctx context.Context, scores model.CategoryScoreMap) (*model.Assessment, error) {
	result, err := uc.registry.Aggregate(scores)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate category scores")
	}

	return &model.Assessment{
		ID:             uuid.NewString(),
		RiskAssessment: *result,
		ComputedAt:     time.Now().UTC(),
	}, nil
}

// AssessProperty scores one property. The electrical and drainage
// categories are derived from the property's inspection reports; the
// remaining categories come from the manual map, defaulting to zero when
// absent. Manual entries may not override inspection-derived categories.
func (uc *AssessmentUseCase) AssessProperty(ctx context.Context, propertyID int64, manual model.CategoryScoreMap) (*model.Assessment, error) {
	if _, err := uc.repo.Property().Get(ctx, propertyID); err != nil {
		return nil, goerr.Wrap(err, "failed to get property")
	}

	electrical, err := uc.repo.Inspection().ListByProperty(ctx, propertyID, types.InspectionElectrical)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list electrical reports")
	}
	drainage, err := uc.repo.Inspection().ListByProperty(ctx, propertyID, types.InspectionDrainage)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list drainage reports")
	}

	scores := make(model.CategoryScoreMap, uc.registry.Len())
	scores[scoring.CategorySecurityRiskManagement] = scoring.ElectricalCategoryScore(derefReports(electrical))
	scores[scoring.CategoryPropertyAssetFactors] = scoring.DrainageCategoryScore(derefReports(drainage))

	for id, score := range manual {
		if !uc.registry.Contains(id) {
			return nil, goerr.Wrap(scoring.ErrUnknownCategory, "manual score for unregistered category",
				goerr.V(scoring.CategoryIDKey, id))
		}
		if _, derived := scores[id]; derived {
			return nil, goerr.New("category is inspection-derived and cannot be supplied manually",
				goerr.V(scoring.CategoryIDKey, id))
		}
		scores[id] = score
	}

	// Categories without a data source default to zero risk; the engine
	// itself never defaults, so fill the map before aggregation.
	for _, c := range uc.registry.Categories() {
		if _, ok := scores[c.ID]; !ok {
			scores[c.ID] = 0
		}
	}

	result, err := uc.registry.Aggregate(scores)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate category scores")
	}

	return &model.Assessment{
		ID:             uuid.NewString(),
		PropertyID:     propertyID,
		RiskAssessment: *result,
		ComputedAt:     time.Now().UTC(),
	}, nil
}

// AssessPortfolio assesses every property concurrently. Results are
// ordered by property ID regardless of completion order.
func (uc *AssessmentUseCase) AssessPortfolio(ctx context.Context, manual model.CategoryScoreMap) ([]*model.Assessment, error) {
	properties, err := uc.repo.Property().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list properties")
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].ID < properties[j].ID
	})

	results := make([]*model.Assessment, len(properties))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(assessPortfolioConcurrency)

	for i, property := range properties {
		g.Go(func() error {
			assessment, err := uc.AssessProperty(ctx, property.ID, manual)
			if err != nil {
				return goerr.Wrap(err, "failed to assess property", goerr.V("property_id", property.ID))
			}
			results[i] = assessment
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
