package scoring

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Weights hold the relative importance of the four scoring dimensions.
// They do not have to sum to anything; the calculator normalizes by the sum.
type Weights struct {
	Price       int `json:"price" validate:"gte=0"`
	Performance int `json:"performance" validate:"gte=0"`
	Support     int `json:"support" validate:"gte=0"`
	Refund      int `json:"refund" validate:"gte=0"`
}

// DefaultWeights is the fallback when neither store tier has a value.
func DefaultWeights() Weights {
	return Weights{Price: 25, Performance: 25, Support: 25, Refund: 25}
}

// Sum returns the weight total.
func (w Weights) Sum() int {
	return w.Price + w.Performance + w.Support + w.Refund
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	if w.Price < 0 || w.Performance < 0 || w.Support < 0 || w.Refund < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	return nil
}

// RescaleTo100 scales the weights so they sum to exactly 100, using
// largest-remainder rounding. Independent rounding could drift to 99 or 101;
// the remainder pass assigns the leftover units to the largest fractions.
// An all-zero input rescales to the default weights.
func RescaleTo100(w Weights) Weights {
	total := w.Sum()
	if total <= 0 {
		return DefaultWeights()
	}

	raw := [4]float64{
		float64(w.Price) * 100 / float64(total),
		float64(w.Performance) * 100 / float64(total),
		float64(w.Support) * 100 / float64(total),
		float64(w.Refund) * 100 / float64(total),
	}

	floors := [4]int{}
	assigned := 0
	for i, v := range raw {
		floors[i] = int(v)
		assigned += floors[i]
	}

	// Hand the missing units to the largest remainders, index order breaking ties.
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, 0, 4)
	for i, v := range raw {
		rems = append(rems, rem{idx: i, frac: v - float64(floors[i])})
	}
	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac > rems[b].frac
	})
	for i := 0; i < 100-assigned; i++ {
		floors[rems[i%4].idx]++
	}

	return Weights{
		Price:       floors[0],
		Performance: floors[1],
		Support:     floors[2],
		Refund:      floors[3],
	}
}

// EncodeWeights renders the canonical JSON form stored in both tiers.
func EncodeWeights(w Weights) (string, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeWeights parses the stored JSON form.
func DecodeWeights(raw string) (Weights, error) {
	var w Weights
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return Weights{}, fmt.Errorf("invalid weights payload: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}
