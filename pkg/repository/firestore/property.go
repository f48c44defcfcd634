package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

type propertyDocument struct {
	ID        int64     `firestore:"id"`
	Name      string    `firestore:"name"`
	Address   string    `firestore:"address"`
	Postcode  string    `firestore:"postcode"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d *propertyDocument) toModel() *model.Property {
	return &model.Property{
		ID:        d.ID,
		Name:      d.Name,
		Address:   d.Address,
		Postcode:  d.Postcode,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type propertyRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPropertyRepository(client *firestore.Client) *propertyRepository {
	return &propertyRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *propertyRepository) propertiesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_properties"
	}
	return "properties"
}

func (r *propertyRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "property_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &propertyDocument{
		ID:        id,
		Name:      property.Name,
		Address:   property.Address,
		Postcode:  property.Postcode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	docRef := r.client.Collection(r.propertiesCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create property")
	}

	return doc.toModel(), nil
}

func (r *propertyRepository) Get(ctx context.Context, id int64) (*model.Property, error) {
	docRef := r.client.Collection(r.propertiesCollection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get property", goerr.V("id", id))
	}

	var propertyDoc propertyDocument
	if err := doc.DataTo(&propertyDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal property", goerr.V("id", id))
	}

	return propertyDoc.toModel(), nil
}

func (r *propertyRepository) List(ctx context.Context) ([]*model.Property, error) {
	iter := r.client.Collection(r.propertiesCollection()).Documents(ctx)
	defer iter.Stop()

	var properties []*model.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate properties")
		}

		var propertyDoc propertyDocument
		if err := doc.DataTo(&propertyDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal property")
		}

		properties = append(properties, propertyDoc.toModel())
	}

	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *model.Property) (*model.Property, error) {
	docRef := r.client.Collection(r.propertiesCollection()).Doc(fmt.Sprintf("%d", property.ID))

	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("id", property.ID))
		}
		return nil, goerr.Wrap(err, "failed to get property", goerr.V("id", property.ID))
	}

	var existing propertyDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal property", goerr.V("id", property.ID))
	}

	updated := &propertyDocument{
		ID:        existing.ID,
		Name:      property.Name,
		Address:   property.Address,
		Postcode:  property.Postcode,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update property", goerr.V("id", property.ID))
	}

	return updated.toModel(), nil
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	docRef := r.client.Collection(r.propertiesCollection()).Doc(fmt.Sprintf("%d", id))

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(interfaces.ErrNotFound, "property not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get property", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete property", goerr.V("id", id))
	}

	return nil
}
