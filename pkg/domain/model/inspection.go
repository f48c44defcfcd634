package model

import (
	"time"

	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

// InspectionReport is a single electrical or drainage inspection record.
// SafetyScore is supplied by the inspecting engineer on a 0-100 scale where
// higher means safer.
type InspectionReport struct {
	ID            int64
	PropertyID    int64
	Kind          types.InspectionKind
	SafetyScore   float64
	Outcome       types.ReportOutcome
	HighRiskItems int
	Overdue       bool
	InspectedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
