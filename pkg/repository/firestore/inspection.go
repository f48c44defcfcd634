package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type inspectionDocument struct {
	ID            int64     `firestore:"id"`
	PropertyID    int64     `firestore:"property_id"`
	Kind          string    `firestore:"kind"`
	SafetyScore   float64   `firestore:"safety_score"`
	Outcome       string    `firestore:"outcome"`
	HighRiskItems int       `firestore:"high_risk_items"`
	Overdue       bool      `firestore:"overdue"`
	InspectedAt   time.Time `firestore:"inspected_at"`
	CreatedAt     time.Time `firestore:"created_at"`
	UpdatedAt     time.Time `firestore:"updated_at"`
}

func (d *inspectionDocument) toModel() *model.InspectionReport {
	return &model.InspectionReport{
		ID:            d.ID,
		PropertyID:    d.PropertyID,
		Kind:          types.InspectionKind(d.Kind),
		SafetyScore:   d.SafetyScore,
		Outcome:       types.ReportOutcome(d.Outcome),
		HighRiskItems: d.HighRiskItems,
		Overdue:       d.Overdue,
		InspectedAt:   d.InspectedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type inspectionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInspectionRepository(client *firestore.Client) *inspectionRepository {
	return &inspectionRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *inspectionRepository) inspectionsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_inspections"
	}
	return "inspections"
}

func (r *inspectionRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *inspectionRepository) Create(ctx context.Context, report *model.InspectionReport) (*model.InspectionReport, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "inspection_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &inspectionDocument{
		ID:            id,
		PropertyID:    report.PropertyID,
		Kind:          report.Kind.String(),
		SafetyScore:   report.SafetyScore,
		Outcome:       report.Outcome.String(),
		HighRiskItems: report.HighRiskItems,
		Overdue:       report.Overdue,
		InspectedAt:   report.InspectedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	docRef := r.client.Collection(r.inspectionsCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create inspection report")
	}

	return doc.toModel(), nil
}

func (r *inspectionRepository) Get(ctx context.Context, id int64) (*model.InspectionReport, error) {
	docRef := r.client.Collection(r.inspectionsCollection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "inspection report not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get inspection report", goerr.V("id", id))
	}

	var inspectionDoc inspectionDocument
	if err := doc.DataTo(&inspectionDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal inspection report", goerr.V("id", id))
	}

	return inspectionDoc.toModel(), nil
}

func (r *inspectionRepository) List(ctx context.Context) ([]*model.InspectionReport, error) {
	iter := r.client.Collection(r.inspectionsCollection()).Documents(ctx)
	return collectReports(iter)
}

func (r *inspectionRepository) ListByProperty(ctx context.Context, propertyID int64, kind types.InspectionKind) ([]*model.InspectionReport, error) {
	query := r.client.Collection(r.inspectionsCollection()).Where("property_id", "==", propertyID)
	if kind != "" {
		query = query.Where("kind", "==", kind.String())
	}

	iter := query.Documents(ctx)
	return collectReports(iter)
}

func (r *inspectionRepository) Delete(ctx context.Context, id int64) error {
	docRef := r.client.Collection(r.inspectionsCollection()).Doc(fmt.Sprintf("%d", id))

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(interfaces.ErrNotFound, "inspection report not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get inspection report", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete inspection report", goerr.V("id", id))
	}

	return nil
}

func collectReports(iter *firestore.DocumentIterator) ([]*model.InspectionReport, error) {
	defer iter.Stop()

	var reports []*model.InspectionReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate inspection reports")
		}

		var inspectionDoc inspectionDocument
		if err := doc.DataTo(&inspectionDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal inspection report")
		}

		reports = append(reports, inspectionDoc.toModel())
	}

	return reports, nil
}
