package interfaces

import (
	"context"

	"github.com/storesafe-app/storesafe/pkg/domain/model"
)

type PropertyRepository interface {
	// Create creates a new property with auto-generated ID
	Create(ctx context.Context, property *model.Property) (*model.Property, error)

	// Get retrieves a property by ID
	Get(ctx context.Context, id int64) (*model.Property, error)

	// List retrieves all properties
	List(ctx context.Context) ([]*model.Property, error)

	// Update updates an existing property
	Update(ctx context.Context, property *model.Property) (*model.Property, error)

	// Delete deletes a property by ID
	Delete(ctx context.Context, id int64) error
}
