package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hostpick/hostpick/app/models"
)

func TestComputeScoreBestPlan(t *testing.T) {
	t.Parallel()

	w := Weights{Price: 50, Performance: 20, Support: 20, Refund: 10}
	a := Attributes{
		Price:         0,
		StorageGB:     1000,
		BandwidthTB:   50,
		Support247:    true,
		SLAPct:        100,
		MoneyBackDays: 60,
	}

	if got := ComputeScore(a, w); got != 100 {
		t.Fatalf("best plan score = %d, want 100", got)
	}
}

func TestComputeScoreWorstPlan(t *testing.T) {
	t.Parallel()

	w := Weights{Price: 50, Performance: 20, Support: 20, Refund: 10}
	a := Attributes{Price: 1000}

	if got := ComputeScore(a, w); got != 0 {
		t.Fatalf("worst plan score = %d, want 0", got)
	}
}

func TestComputeScoreZeroWeights(t *testing.T) {
	t.Parallel()

	a := Attributes{Price: 10, StorageGB: 500, Support247: true}
	if got := ComputeScore(a, Weights{}); got != 0 {
		t.Fatalf("all-zero weights score = %d, want 0", got)
	}
}

func TestComputeScoreBounded(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		a := Attributes{
			Price:         rng.Float64()*3000 - 500,
			StorageGB:     rng.Float64() * 5000,
			BandwidthTB:   rng.Float64() * 200,
			Support247:    rng.Intn(2) == 1,
			SLAPct:        rng.Float64()*200 - 50,
			MoneyBackDays: rng.Float64() * 365,
		}
		w := Weights{
			Price:       rng.Intn(200),
			Performance: rng.Intn(200),
			Support:     rng.Intn(200),
			Refund:      rng.Intn(200),
		}
		got := ComputeScore(a, w)
		if got < 0 || got > 100 {
			t.Fatalf("score out of bounds: %d for %+v %+v", got, a, w)
		}
	}
}

func TestComputeScoreMonotonicity(t *testing.T) {
	t.Parallel()

	w := Weights{Price: 40, Performance: 30, Support: 20, Refund: 10}
	base := Attributes{
		Price:         500,
		StorageGB:     200,
		BandwidthTB:   10,
		Support247:    false,
		SLAPct:        90,
		MoneyBackDays: 14,
	}
	baseScore := ComputeScore(base, w)

	cheaper := base
	cheaper.Price = 100
	if ComputeScore(cheaper, w) < baseScore {
		t.Fatalf("lower price decreased the score")
	}

	for name, bump := range map[string]func(*Attributes){
		"storage":   func(a *Attributes) { a.StorageGB = 800 },
		"bandwidth": func(a *Attributes) { a.BandwidthTB = 40 },
		"sla":       func(a *Attributes) { a.SLAPct = 99.99 },
		"moneyback": func(a *Attributes) { a.MoneyBackDays = 45 },
		"support":   func(a *Attributes) { a.Support247 = true },
	} {
		improved := base
		bump(&improved)
		if ComputeScore(improved, w) < baseScore {
			t.Fatalf("improving %s decreased the score", name)
		}
	}
}

func TestComputeScoreNaNDegradesToZero(t *testing.T) {
	t.Parallel()

	a := Attributes{
		Price:         math.NaN(),
		StorageGB:     math.NaN(),
		BandwidthTB:   math.NaN(),
		SLAPct:        math.NaN(),
		MoneyBackDays: math.NaN(),
	}
	got := ComputeScore(a, DefaultWeights())
	if got < 0 || got > 100 {
		t.Fatalf("NaN input produced out-of-range score %d", got)
	}
	// NaN price counts as 0, so the inverted price sub-score is 1.
	if got != 25 {
		t.Fatalf("NaN input score = %d, want 25", got)
	}
}

func TestAttributesFromPlan(t *testing.T) {
	t.Parallel()

	storage := 250.0
	sla := 99.9
	moneyBack := 30
	p := &models.Plan{
		MonthlyPrice:  9.99,
		StorageGB:     &storage,
		SLAPct:        &sla,
		MoneyBackDays: &moneyBack,
		Support247:    true,
	}

	a := AttributesFromPlan(p)
	if a.Price != 9.99 || a.StorageGB != 250 || a.SLAPct != 99.9 || a.MoneyBackDays != 30 || !a.Support247 {
		t.Fatalf("unexpected attributes %+v", a)
	}
	if a.BandwidthTB != 0 {
		t.Fatalf("missing bandwidth should map to 0, got %v", a.BandwidthTB)
	}
}
