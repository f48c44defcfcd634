package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
)

type Firestore struct {
	client     *firestore.Client
	property   *propertyRepository
	inspection *inspectionRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests and
// shared projects
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.property.collectionPrefix = prefix
		f.inspection.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		property:   newPropertyRepository(client),
		inspection: newInspectionRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Property() interfaces.PropertyRepository {
	return f.property
}

func (f *Firestore) Inspection() interfaces.InspectionRepository {
	return f.inspection
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

// nextID increments the named counter document transactionally and returns
// the new value
func nextID(ctx context.Context, client *firestore.Client, collection, doc string) (int64, error) {
	counterRef := client.Collection(collection).Doc(doc)

	var id int64
	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snapshot, err := tx.Get(counterRef)
		if err != nil {
			if isNotFound(err) {
				id = 1
				return tx.Set(counterRef, map[string]interface{}{
					"value": id,
				})
			}
			return goerr.Wrap(err, "failed to get counter")
		}

		currentValue, err := snapshot.DataAt("value")
		if err != nil {
			return goerr.Wrap(err, "failed to get counter value")
		}

		id = currentValue.(int64) + 1
		return tx.Update(counterRef, []firestore.Update{
			{Path: "value", Value: id},
		})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to allocate ID", goerr.V("counter", doc))
	}

	return id, nil
}
