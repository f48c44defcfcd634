package model

import "github.com/storesafe-app/storesafe/pkg/domain/types"

// ManagementScoreInputs are the raw counts behind the 300-850 management
// score. All counts must be non-negative and the compliant counts must not
// exceed their report counts.
type ManagementScoreInputs struct {
	PropertiesCount             int
	ElectricalReportsCount      int
	ElectricalSatisfactoryCount int
	DrainageReportsCount        int
	DrainageGoodCount           int
	OverdueInspectionsCount     int
	HighRiskItemsCount          int
}

// PortfolioSummary is the dashboard summary card: the management score with
// its grade, the counts it was derived from, and an optional insurance
// savings estimate.
type PortfolioSummary struct {
	ManagementScore        int
	Grade                  types.ComplianceGrade
	Inputs                 ManagementScoreInputs
	EstimatedAnnualSavings float64
}
