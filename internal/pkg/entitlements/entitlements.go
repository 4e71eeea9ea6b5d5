package entitlements

import "strings"

type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

const (
	// StandardComparisonLimit caps the comparison selection for regular accounts.
	StandardComparisonLimit = 4
	// PremiumComparisonLimit is effectively unbounded for practical purposes.
	PremiumComparisonLimit = 100
)

// NormalizeTier maps any stored tier string onto a known tier, defaulting to standard.
func NormalizeTier(tier string) Tier {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case string(TierPremium):
		return TierPremium
	default:
		return TierStandard
	}
}

// ComparisonLimit returns how many plans an account of the given tier
// may hold in its comparison selection at once.
func ComparisonLimit(tier Tier) int {
	switch tier {
	case TierPremium:
		return PremiumComparisonLimit
	default:
		return StandardComparisonLimit
	}
}
