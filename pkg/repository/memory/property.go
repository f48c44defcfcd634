package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
)

type propertyRepository struct {
	mu         sync.RWMutex
	properties map[int64]*model.Property
	nextID     int64
}

func newPropertyRepository() *propertyRepository {
	return &propertyRepository{
		properties: make(map[int64]*model.Property),
		nextID:     1,
	}
}

func copyProperty(p *model.Property) *model.Property {
	clone := *p
	return &clone
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyProperty(property)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.properties[created.ID] = created
	return copyProperty(created), nil
}

func (r *propertyRepository) Get(ctx context.Context, id int64) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, exists := r.properties[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return copyProperty(property), nil
}

func (r *propertyRepository) List(ctx context.Context) ([]*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]*model.Property, 0, len(r.properties))
	for _, property := range r.properties {
		properties = append(properties, copyProperty(property))
	}

	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.properties[property.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("id", property.ID))
	}

	updated := copyProperty(property)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.properties[updated.ID] = updated
	return copyProperty(updated), nil
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.properties[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("id", id))
	}

	delete(r.properties, id)
	return nil
}
