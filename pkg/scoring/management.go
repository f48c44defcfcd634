package scoring

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

// Management score constants. The score is styled after a credit score and
// is deliberately decoupled from the 0-100 risk engine: the dashboard
// treats them as two different products.
const (
	managementScoreMin  = 300
	managementScoreMax  = 850
	managementScoreBase = 600

	// managementScoreNoData is returned when there are no properties at
	// all: a neutral mid-band score rather than a penalty.
	managementScoreNoData = 500

	electricalComplianceWeight = 100
	drainageComplianceWeight   = 80
	coverageWeight             = 50

	// expectedReportsPerProperty is the coverage target: a fully covered
	// property has one electrical and one drainage report on file.
	expectedReportsPerProperty = 2

	overduePenalty      = 20
	highRiskItemPenalty = 15
)

// Grade band lower thresholds, inclusive
const (
	gradeExcellentMin = 750
	gradeGoodMin      = 650
	gradeFairMin      = 550
	gradePoorMin      = 450
)

func validateManagementInputs(in model.ManagementScoreInputs) error {
	counts := []struct {
		name  string
		value int
	}{
		{"properties_count", in.PropertiesCount},
		{"electrical_reports_count", in.ElectricalReportsCount},
		{"electrical_satisfactory_count", in.ElectricalSatisfactoryCount},
		{"drainage_reports_count", in.DrainageReportsCount},
		{"drainage_good_count", in.DrainageGoodCount},
		{"overdue_inspections_count", in.OverdueInspectionsCount},
		{"high_risk_items_count", in.HighRiskItemsCount},
	}
	for _, c := range counts {
		if c.value < 0 {
			return goerr.Wrap(ErrOutOfRangeInput, "count must be non-negative",
				goerr.V(FieldKey, c.name), goerr.V("value", c.value))
		}
	}
	if in.ElectricalSatisfactoryCount > in.ElectricalReportsCount {
		return goerr.Wrap(ErrOutOfRangeInput, "satisfactory count exceeds report count",
			goerr.V(FieldKey, "electrical_satisfactory_count"))
	}
	if in.DrainageGoodCount > in.DrainageReportsCount {
		return goerr.Wrap(ErrOutOfRangeInput, "good count exceeds report count",
			goerr.V(FieldKey, "drainage_good_count"))
	}
	return nil
}

// CalculateManagementScore computes the 300-850 management score from raw
// inspection coverage and compliance counts. With no properties the result
// is exactly managementScoreNoData regardless of the other fields.
func CalculateManagementScore(in model.ManagementScoreInputs) (int, error) {
	if err := validateManagementInputs(in); err != nil {
		return 0, err
	}

	if in.PropertiesCount == 0 {
		return managementScoreNoData, nil
	}

	score := float64(managementScoreBase)

	if in.ElectricalReportsCount > 0 {
		score += electricalComplianceWeight * float64(in.ElectricalSatisfactoryCount) / float64(in.ElectricalReportsCount)
	}
	if in.DrainageReportsCount > 0 {
		score += drainageComplianceWeight * float64(in.DrainageGoodCount) / float64(in.DrainageReportsCount)
	}

	totalReports := in.ElectricalReportsCount + in.DrainageReportsCount
	expected := float64(in.PropertiesCount * expectedReportsPerProperty)
	score += coverageWeight * math.Min(1, float64(totalReports)/expected)

	score -= overduePenalty * float64(in.OverdueInspectionsCount)
	score -= highRiskItemPenalty * float64(in.HighRiskItemsCount)

	return roundHalfUp(Clamp(score, managementScoreMin, managementScoreMax)), nil
}

// GradeForScore maps a management score to its display grade. Bounds are
// inclusive on the lower threshold of each band.
func GradeForScore(score int) types.ComplianceGrade {
	switch {
	case score >= gradeExcellentMin:
		return types.GradeExcellent
	case score >= gradeGoodMin:
		return types.GradeGood
	case score >= gradeFairMin:
		return types.GradeFair
	case score >= gradePoorMin:
		return types.GradePoor
	default:
		return types.GradeVeryPoor
	}
}
