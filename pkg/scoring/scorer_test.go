package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/scoring"
)

func reportsWithSafety(scores ...float64) []model.InspectionReport {
	reports := make([]model.InspectionReport, len(scores))
	for i, s := range scores {
		reports[i] = model.InspectionReport{SafetyScore: s}
	}
	return reports
}

func TestElectricalCategoryScore(t *testing.T) {
	t.Run("no reports returns neutral default", func(t *testing.T) {
		gt.Value(t, scoring.ElectricalCategoryScore(nil)).Equal(scoring.NeutralRiskScore)
	})

	t.Run("averages then inverts", func(t *testing.T) {
		// mean safety 80 -> risk 20
		score := scoring.ElectricalCategoryScore(reportsWithSafety(70, 90))
		gt.Value(t, score).Equal(20.0)
	})

	t.Run("clamps out-of-range report scores", func(t *testing.T) {
		// 150 clamps to 100, -50 clamps to 0: mean safety 50 -> risk 50
		score := scoring.ElectricalCategoryScore(reportsWithSafety(150, -50))
		gt.Value(t, score).Equal(50.0)
	})

	t.Run("perfectly safe reports yield zero risk", func(t *testing.T) {
		gt.Value(t, scoring.ElectricalCategoryScore(reportsWithSafety(100, 100))).Equal(0.0)
	})
}

func TestDrainageCategoryScore(t *testing.T) {
	t.Run("no reports returns neutral default", func(t *testing.T) {
		gt.Value(t, scoring.DrainageCategoryScore(nil)).Equal(scoring.NeutralRiskScore)
	})

	t.Run("averages then inverts", func(t *testing.T) {
		gt.Value(t, scoring.DrainageCategoryScore(reportsWithSafety(60))).Equal(40.0)
	})
}

func TestCombinedPropertyScore(t *testing.T) {
	t.Run("averages safety values then inverts once", func(t *testing.T) {
		// safety mean (80+60)/2 = 70 -> risk 30
		gt.Value(t, scoring.CombinedPropertyScore(80, 60)).Equal(30.0)
	})

	t.Run("no intermediate rounding", func(t *testing.T) {
		// safety mean 75.25 -> risk 24.75, kept fractional
		gt.Value(t, scoring.CombinedPropertyScore(80.5, 70)).Equal(24.75)
	})

	t.Run("clamps inputs", func(t *testing.T) {
		gt.Value(t, scoring.CombinedPropertyScore(150, 50)).Equal(25.0)
	})
}
