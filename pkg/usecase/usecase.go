package usecase

import (
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/scoring"
)

type UseCases struct {
	repo     interfaces.Repository
	registry *scoring.Registry

	Property   *PropertyUseCase
	Assessment *AssessmentUseCase
	Management *ManagementUseCase
	Recommend  *RecommendUseCase
}

type Option func(*UseCases)

func New(repo interfaces.Repository, registry *scoring.Registry, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		registry: registry,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.registry == nil {
		uc.registry = scoring.DefaultRegistry()
	}

	uc.Property = NewPropertyUseCase(uc.repo)
	uc.Assessment = NewAssessmentUseCase(uc.repo, uc.registry)
	uc.Management = NewManagementUseCase(uc.repo)
	uc.Recommend = NewRecommendUseCase()

	return uc
}

// Registry exposes the category registry shared by the use cases
func (uc *UseCases) Registry() *scoring.Registry {
	return uc.registry
}
