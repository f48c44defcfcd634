package interfaces

import (
	"context"

	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

type InspectionRepository interface {
	// Create creates a new inspection report with auto-generated ID
	Create(ctx context.Context, report *model.InspectionReport) (*model.InspectionReport, error)

	// Get retrieves an inspection report by ID
	Get(ctx context.Context, id int64) (*model.InspectionReport, error)

	// List retrieves all inspection reports
	List(ctx context.Context) ([]*model.InspectionReport, error)

	// ListByProperty retrieves the reports of one property, optionally
	// filtered by inspection kind (empty kind means all kinds)
	ListByProperty(ctx context.Context, propertyID int64, kind types.InspectionKind) ([]*model.InspectionReport, error)

	// Delete deletes an inspection report by ID
	Delete(ctx context.Context, id int64) error
}
