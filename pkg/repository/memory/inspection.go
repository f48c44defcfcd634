package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

type inspectionRepository struct {
	mu      sync.RWMutex
	reports map[int64]*model.InspectionReport
	nextID  int64
}

func newInspectionRepository() *inspectionRepository {
	return &inspectionRepository{
		reports: make(map[int64]*model.InspectionReport),
		nextID:  1,
	}
}

func copyReport(r *model.InspectionReport) *model.InspectionReport {
	clone := *r
	return &clone
}

func (r *inspectionRepository) Create(ctx context.Context, report *model.InspectionReport) (*model.InspectionReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyReport(report)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.reports[created.ID] = created
	return copyReport(created), nil
}

func (r *inspectionRepository) Get(ctx context.Context, id int64) (*model.InspectionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "inspection report not found", goerr.V("id", id))
	}

	return copyReport(report), nil
}

func (r *inspectionRepository) List(ctx context.Context) ([]*model.InspectionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*model.InspectionReport, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, copyReport(report))
	}
	sortReports(reports)

	return reports, nil
}

func (r *inspectionRepository) ListByProperty(ctx context.Context, propertyID int64, kind types.InspectionKind) ([]*model.InspectionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reports []*model.InspectionReport
	for _, report := range r.reports {
		if report.PropertyID != propertyID {
			continue
		}
		if kind != "" && report.Kind != kind {
			continue
		}
		reports = append(reports, copyReport(report))
	}
	sortReports(reports)

	return reports, nil
}

func (r *inspectionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "inspection report not found", goerr.V("id", id))
	}

	delete(r.reports, id)
	return nil
}

// sortReports keeps listings deterministic regardless of map iteration order
func sortReports(reports []*model.InspectionReport) {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ID < reports[j].ID
	})
}
