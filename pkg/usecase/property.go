package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
)

type PropertyUseCase struct {
	repo interfaces.Repository
}

func NewPropertyUseCase(repo interfaces.Repository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo}
}

func (uc *PropertyUseCase) CreateProperty(ctx context.Context, name, address, postcode string) (*model.Property, error) {
	if name == "" {
		return nil, goerr.New("property name is required")
	}

	property := &model.Property{
		Name:     name,
		Address:  address,
		Postcode: postcode,
	}

	created, err := uc.repo.Property().Create(ctx, property)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create property")
	}

	return created, nil
}

func (uc *PropertyUseCase) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	property, err := uc.repo.Property().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get property")
	}
	return property, nil
}

func (uc *PropertyUseCase) ListProperties(ctx context.Context) ([]*model.Property, error) {
	properties, err := uc.repo.Property().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list properties")
	}
	return properties, nil
}

func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, property *model.Property) (*model.Property, error) {
	if property.Name == "" {
		return nil, goerr.New("property name is required")
	}

	updated, err := uc.repo.Property().Update(ctx, property)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update property")
	}
	return updated, nil
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, id int64) error {
	if err := uc.repo.Property().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete property")
	}
	return nil
}

// AddReport files an inspection report against a property. The safety
// score is clamped to [0,100]; an outcome that does not belong to the
// report's inspection regime is rejected.
func (uc *PropertyUseCase) AddReport(ctx context.Context, report *model.InspectionReport) (*model.InspectionReport, error) {
	if !report.Kind.IsValid() {
		return nil, goerr.New("invalid inspection kind", goerr.V("kind", report.Kind))
	}
	if !report.Outcome.ValidFor(report.Kind) {
		return nil, goerr.New("outcome does not match inspection kind",
			goerr.V("kind", report.Kind), goerr.V("outcome", report.Outcome))
	}
	if report.HighRiskItems < 0 {
		return nil, goerr.New("high risk item count must be non-negative",
			goerr.V("count", report.HighRiskItems))
	}

	if _, err := uc.repo.Property().Get(ctx, report.PropertyID); err != nil {
		return nil, goerr.Wrap(err, "failed to get property for report")
	}

	filed := *report
	filed.SafetyScore = scoring.Clamp(report.SafetyScore, 0, 100)
	if filed.InspectedAt.IsZero() {
		filed.InspectedAt = time.Now().UTC()
	}

	created, err := uc.repo.Inspection().Create(ctx, &filed)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create inspection report")
	}

	return created, nil
}

func (uc *PropertyUseCase) ListReports(ctx context.Context, propertyID int64, kind types.InspectionKind) ([]*model.InspectionReport, error) {
	if _, err := uc.repo.Property().Get(ctx, propertyID); err != nil {
		return nil, goerr.Wrap(err, "failed to get property")
	}

	reports, err := uc.repo.Inspection().ListByProperty(ctx, propertyID, kind)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inspection reports")
	}
	return reports, nil
}

// InspectionScore is the property card headline: the combined 0-100 risk
// score across both inspection regimes. The two per-regime safety means
// are averaged first and inverted once.
func (uc *PropertyUseCase) InspectionScore(ctx context.Context, propertyID int64) (int, error) {
	electrical, err := uc.ListReports(ctx, propertyID, types.InspectionElectrical)
	if err != nil {
		return 0, err
	}
	drainage, err := uc.repo.Inspection().ListByProperty(ctx, propertyID, types.InspectionDrainage)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list drainage reports")
	}

	electricalSafety := scoring.RiskToSafety(scoring.ElectricalCategoryScore(derefReports(electrical)))
	drainageSafety := scoring.RiskToSafety(scoring.DrainageCategoryScore(derefReports(drainage)))

	return scoring.RoundScore(scoring.CombinedPropertyScore(electricalSafety, drainageSafety)), nil
}
