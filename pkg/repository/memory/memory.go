package memory

import (
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	property   *propertyRepository
	inspection *inspectionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		property:   newPropertyRepository(),
		inspection: newInspectionRepository(),
	}
}

func (m *Memory) Property() interfaces.PropertyRepository {
	return m.property
}

func (m *Memory) Inspection() interfaces.InspectionRepository {
	return m.inspection
}

func (m *Memory) Close() error {
	return nil
}
