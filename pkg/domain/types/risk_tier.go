package types

import "fmt"

// RiskTier represents the severity band of an overall risk score
type RiskTier string

const (
	RiskTierLow      RiskTier = "LOW"
	RiskTierMedium   RiskTier = "MEDIUM"
	RiskTierHigh     RiskTier = "HIGH"
	RiskTierCritical RiskTier = "CRITICAL"
)

// AllRiskTiers returns all valid risk tiers
func AllRiskTiers() []RiskTier {
	return []RiskTier{
		RiskTierLow,
		RiskTierMedium,
		RiskTierHigh,
		RiskTierCritical,
	}
}

// IsValid checks if the risk tier is valid
func (t RiskTier) IsValid() bool {
	switch t {
	case RiskTierLow,
		RiskTierMedium,
		RiskTierHigh,
		RiskTierCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk tier
func (t RiskTier) String() string {
	return string(t)
}

// ParseRiskTier parses a string into a RiskTier
func ParseRiskTier(s string) (RiskTier, error) {
	tier := RiskTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid risk tier: %s", s)
	}
	return tier, nil
}
