package scoring

import (
	"math"

	"github.com/hostpick/hostpick/app/models"
)

// Clamp ranges for the four scoring dimensions. Values outside these ranges
// carry no extra signal for a hosting plan comparison.
const (
	priceMax     = 1000.0
	storageMaxGB = 1000.0
	bandwidthMax = 50.0
	slaMax       = 100.0
	moneyBackMax = 60.0

	// epsilon guards the degenerate zero-width range in normalize.
	epsilon = 1e-9
)

// Attributes are the raw plan values the calculator consumes. A missing
// attribute is simply its zero value; the calculator never fails on input.
type Attributes struct {
	Price         float64
	StorageGB     float64
	BandwidthTB   float64
	Support247    bool
	SLAPct        float64
	MoneyBackDays float64
}

// AttributesFromPlan extracts the scoring attributes from a catalog plan,
// treating absent optional fields as zero.
func AttributesFromPlan(p *models.Plan) Attributes {
	a := Attributes{
		Price:      p.MonthlyPrice,
		Support247: p.Support247,
	}
	if p.StorageGB != nil {
		a.StorageGB = *p.StorageGB
	}
	if p.BandwidthTB != nil {
		a.BandwidthTB = *p.BandwidthTB
	}
	if p.SLAPct != nil {
		a.SLAPct = *p.SLAPct
	}
	if p.MoneyBackDays != nil {
		a.MoneyBackDays = float64(*p.MoneyBackDays)
	}
	return a
}

// ComputeScore combines the four weighted sub-scores into one integer in
// [0,100]. It is pure and total: any attribute/weight combination yields a
// valid score, malformed values degrade to 0 instead of propagating NaN.
func ComputeScore(a Attributes, w Weights) int {
	priceScore := 1 - normalize(a.Price, 0, priceMax)

	perfScore := (normalize(a.StorageGB, 0, storageMaxGB) +
		normalize(a.BandwidthTB, 0, bandwidthMax)) / 2

	support := 0.0
	if a.Support247 {
		support = 1.0
	}
	supportScore := (support + normalize(a.SLAPct, 0, slaMax)) / 2

	refundScore := normalize(a.MoneyBackDays, 0, moneyBackMax)

	total := float64(w.Price + w.Performance + w.Support + w.Refund)
	if total == 0 {
		total = 1
	}

	weighted := float64(w.Price)/total*priceScore +
		float64(w.Performance)/total*perfScore +
		float64(w.Support)/total*supportScore +
		float64(w.Refund)/total*refundScore

	score := int(math.Round(100 * weighted))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// normalize clamps v into [min,max] and maps it linearly onto [0,1].
// NaN and missing values count as 0 before clamping.
func normalize(v, min, max float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	width := max - min
	if width < epsilon {
		width = epsilon
	}
	return (v - min) / width
}
