package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
)

type ManagementUseCase struct {
	repo interfaces.Repository
}

func NewManagementUseCase(repo interfaces.Repository) *ManagementUseCase {
	return &ManagementUseCase{repo: repo}
}

// PortfolioSummary derives the management score counts from the stored
// records and computes the dashboard summary card. monthlyPremium feeds
// the savings estimate; pass 0 to omit it.
func (uc *ManagementUseCase) PortfolioSummary(ctx context.Context, monthlyPremium float64) (*model.PortfolioSummary, error) {
	properties, err := uc.repo.Property().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list properties")
	}

	reports, err := uc.repo.Inspection().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inspection reports")
	}

	inputs := model.ManagementScoreInputs{
		PropertiesCount: len(properties),
	}
	for _, report := range reports {
		switch report.Kind {
		case types.InspectionElectrical:
			inputs.ElectricalReportsCount++
			if report.Outcome.Compliant() {
				inputs.ElectricalSatisfactoryCount++
			}
		case types.InspectionDrainage:
			inputs.DrainageReportsCount++
			if report.Outcome.Compliant() {
				inputs.DrainageGoodCount++
			}
		}
		if report.Overdue {
			inputs.OverdueInspectionsCount++
		}
		inputs.HighRiskItemsCount += report.HighRiskItems
	}

	score, err := scoring.CalculateManagementScore(inputs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to calculate management score")
	}

	return &model.PortfolioSummary{
		ManagementScore:        score,
		Grade:                  scoring.GradeForScore(score),
		Inputs:                 inputs,
		EstimatedAnnualSavings: scoring.EstimateInsuranceSavings(score, monthlyPremium),
	}, nil
}
