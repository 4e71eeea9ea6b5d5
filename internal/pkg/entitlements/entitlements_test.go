package entitlements

import "testing"

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{in: "standard", want: TierStandard},
		{in: "premium", want: TierPremium},
		{in: "PREMIUM", want: TierPremium},
		{in: " premium ", want: TierPremium},
		{in: "gold", want: TierStandard},
		{in: "", want: TierStandard},
	}

	for _, tt := range tests {
		if got := NormalizeTier(tt.in); got != tt.want {
			t.Fatalf("NormalizeTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComparisonLimit(t *testing.T) {
	if got := ComparisonLimit(TierStandard); got != StandardComparisonLimit {
		t.Fatalf("standard limit = %d, want %d", got, StandardComparisonLimit)
	}
	if ComparisonLimit(TierPremium) <= ComparisonLimit(TierStandard) {
		t.Fatalf("expected premium limit to exceed standard limit")
	}
}
