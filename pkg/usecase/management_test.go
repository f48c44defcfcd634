package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/repository/memory"
	"github.com/storesafe-app/storesafe/pkg/usecase"
)

func TestPortfolioSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty portfolio gets the neutral score", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil)

		summary, err := uc.Management.PortfolioSummary(ctx, 0)
		gt.NoError(t, err).Required()
		gt.Value(t, summary.ManagementScore).Equal(500)
		gt.Value(t, summary.Grade).Equal(types.GradeFair)
		gt.Value(t, summary.EstimatedAnnualSavings).Equal(0.0)
	})

	t.Run("derives counts from stored records", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil)

		p1, err := uc.Property.CreateProperty(ctx, "Store 1", "", "")
		gt.NoError(t, err).Required()
		p2, err := uc.Property.CreateProperty(ctx, "Store 2", "", "")
		gt.NoError(t, err).Required()

		reports := []*model.InspectionReport{
			{PropertyID: p1.ID, Kind: types.InspectionElectrical, Outcome: types.OutcomeSatisfactory, SafetyScore: 90},
			{PropertyID: p1.ID, Kind: types.InspectionDrainage, Outcome: types.OutcomeGood, SafetyScore: 80},
			{PropertyID: p2.ID, Kind: types.InspectionElectrical, Outcome: types.OutcomeUnsatisfactory, SafetyScore: 40, HighRiskItems: 2},
			{PropertyID: p2.ID, Kind: types.InspectionDrainage, Outcome: types.OutcomeIssuesFound, SafetyScore: 50, Overdue: true},
		}
		for _, report := range reports {
			_, err := uc.Property.AddReport(ctx, report)
			gt.NoError(t, err).Required()
		}

		summary, err := uc.Management.PortfolioSummary(ctx, 100)
		gt.NoError(t, err).Required()

		gt.Value(t, summary.Inputs.PropertiesCount).Equal(2)
		gt.Value(t, summary.Inputs.ElectricalReportsCount).Equal(2)
		gt.Value(t, summary.Inputs.ElectricalSatisfactoryCount).Equal(1)
		gt.Value(t, summary.Inputs.DrainageReportsCount).Equal(2)
		gt.Value(t, summary.Inputs.DrainageGoodCount).Equal(1)
		gt.Value(t, summary.Inputs.OverdueInspectionsCount).Equal(1)
		gt.Value(t, summary.Inputs.HighRiskItemsCount).Equal(2)

		// 600 + 100*(1/2) + 80*(1/2) + 50*1 - 20*1 - 15*2 = 690
		gt.Value(t, summary.ManagementScore).Equal(690)
		gt.Value(t, summary.Grade).Equal(types.GradeGood)
		// 100 * 0.10 * 48
		gt.Value(t, summary.EstimatedAnnualSavings).Equal(480.0)
	})

	t.Run("fully compliant portfolio grades excellent", func(t *testing.T) {
		uc := usecase.New(memory.New(), nil)

		property, err := uc.Property.CreateProperty(ctx, "Model Store", "", "")
		gt.NoError(t, err).Required()
		_, err = uc.Property.AddReport(ctx, &model.InspectionReport{
			PropertyID: property.ID, Kind: types.InspectionElectrical, Outcome: types.OutcomeSatisfactory, SafetyScore: 95,
		})
		gt.NoError(t, err).Required()
		_, err = uc.Property.AddReport(ctx, &model.InspectionReport{
			PropertyID: property.ID, Kind: types.InspectionDrainage, Outcome: types.OutcomeGood, SafetyScore: 90,
		})
		gt.NoError(t, err).Required()

		summary, err := uc.Management.PortfolioSummary(ctx, 0)
		gt.NoError(t, err).Required()

		// 600 + 100 + 80 + 50 = 830
		gt.Value(t, summary.ManagementScore).Equal(830)
		gt.Value(t, summary.Grade).Equal(types.GradeExcellent)
	})
}
