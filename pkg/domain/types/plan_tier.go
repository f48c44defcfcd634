package types

import "fmt"

// PlanTier represents a subscription plan recommendation. It is distinct
// from RiskTier: plan tiers are a product recommendation, risk tiers are a
// severity classification.
type PlanTier string

const (
	PlanTierFree       PlanTier = "FREE"
	PlanTierPremium    PlanTier = "PREMIUM"
	PlanTierEnterprise PlanTier = "ENTERPRISE"
)

// AllPlanTiers returns all valid plan tiers
func AllPlanTiers() []PlanTier {
	return []PlanTier{
		PlanTierFree,
		PlanTierPremium,
		PlanTierEnterprise,
	}
}

// IsValid checks if the plan tier is valid
func (t PlanTier) IsValid() bool {
	switch t {
	case PlanTierFree,
		PlanTierPremium,
		PlanTierEnterprise:
		return true
	default:
		return false
	}
}

// String returns the string representation of the plan tier
func (t PlanTier) String() string {
	return string(t)
}

// ParsePlanTier parses a string into a PlanTier
func ParsePlanTier(s string) (PlanTier, error) {
	tier := PlanTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid plan tier: %s", s)
	}
	return tier, nil
}
