package scoring

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
)

// Fixed category identifiers. The registry ids are stable: persisted score
// maps and the dashboard breakdown reference them by string.
const (
	CategorySecurityRiskManagement  types.CategoryID = "security_risk_management"
	CategoryPropertyAssetFactors    types.CategoryID = "property_asset_factors"
	CategoryOperationalRisk         types.CategoryID = "operational_risk"
	CategoryBusinessSpecificFactors types.CategoryID = "business_specific_factors"
	CategoryLocationBasedFactors    types.CategoryID = "location_based_factors"
	CategoryFinancialAdministrative types.CategoryID = "financial_administrative"
	CategorySpecialisedRisk         types.CategoryID = "specialised_risk"
	CategoryMarketExternal          types.CategoryID = "market_external"
)

// weightTolerance is the allowed deviation of the weight sum from 1.0
const weightTolerance = 1e-6

// Category is a single registry entry: a risk dimension with its display
// name and its weight in the overall score.
type Category struct {
	ID     types.CategoryID
	Name   string
	Weight float64
}

// Registry is the immutable set of risk categories used for aggregation.
// Construct it once at startup; it is safe for concurrent use.
type Registry struct {
	categories []Category
	weights    map[types.CategoryID]float64
}

// NewRegistry validates the given categories and builds a registry. It
// fails if any id is malformed or duplicated, any weight is outside (0,1],
// or the weights do not sum to 1.0 within tolerance.
func NewRegistry(categories []Category) (*Registry, error) {
	if len(categories) == 0 {
		return nil, goerr.Wrap(ErrInvalidWeightRegistry, "registry has no categories")
	}

	weights := make(map[types.CategoryID]float64, len(categories))
	sum := 0.0
	for _, c := range categories {
		if err := c.ID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid category ID")
		}
		if c.Name == "" {
			return nil, goerr.Wrap(ErrInvalidWeightRegistry, "category name is required", goerr.V(CategoryIDKey, c.ID))
		}
		if _, ok := weights[c.ID]; ok {
			return nil, goerr.Wrap(ErrInvalidWeightRegistry, "duplicate category ID", goerr.V(CategoryIDKey, c.ID))
		}
		if c.Weight <= 0 || c.Weight > 1 {
			return nil, goerr.Wrap(ErrInvalidWeightRegistry, "category weight must be in (0,1]",
				goerr.V(CategoryIDKey, c.ID), goerr.V("weight", c.Weight))
		}
		weights[c.ID] = c.Weight
		sum += c.Weight
	}

	if math.Abs(sum-1.0) > weightTolerance {
		return nil, goerr.Wrap(ErrInvalidWeightRegistry, "category weights must sum to 1.0",
			goerr.V(WeightSumKey, sum))
	}

	cloned := make([]Category, len(categories))
	copy(cloned, categories)

	return &Registry{categories: cloned, weights: weights}, nil
}

var defaultCategories = []Category{
	{ID: CategorySecurityRiskManagement, Name: "Security & Risk Management", Weight: 0.25},
	{ID: CategoryPropertyAssetFactors, Name: "Property & Asset Factors", Weight: 0.20},
	{ID: CategoryOperationalRisk, Name: "Operational Risk", Weight: 0.15},
	{ID: CategoryBusinessSpecificFactors, Name: "Business Specific Factors", Weight: 0.10},
	{ID: CategoryLocationBasedFactors, Name: "Location Based Factors", Weight: 0.08},
	{ID: CategoryFinancialAdministrative, Name: "Financial & Administrative", Weight: 0.08},
	{ID: CategorySpecialisedRisk, Name: "Specialised Risk", Weight: 0.08},
	{ID: CategoryMarketExternal, Name: "Market & External", Weight: 0.06},
}

// DefaultRegistry returns the built-in eight-category registry. It panics
// only if the compiled-in table is edited into an invalid state, which the
// registry tests catch.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultCategories)
	if err != nil {
		panic(err)
	}
	return r
}

// Categories returns the registry entries in their defined order
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Weight returns the weight for the given category ID
func (r *Registry) Weight(id types.CategoryID) (float64, bool) {
	w, ok := r.weights[id]
	return w, ok
}

// Contains reports whether the category ID is registered
func (r *Registry) Contains(id types.CategoryID) bool {
	_, ok := r.weights[id]
	return ok
}

// Len returns the number of registered categories
func (r *Registry) Len() int {
	return len(r.categories)
}

// TierForScore classifies an overall risk score into its tier. The bands
// are upper-inclusive: <=30 LOW, 31-60 MEDIUM, 61-80 HIGH, 81-100 CRITICAL.
// Downstream color and label logic depends on these exact boundaries.
func TierForScore(score float64) types.RiskTier {
	switch {
	case score <= 30:
		return types.RiskTierLow
	case score <= 60:
		return types.RiskTierMedium
	case score <= 80:
		return types.RiskTierHigh
	default:
		return types.RiskTierCritical
	}
}
