package scoring

import "testing"

func TestRescaleTo100ExactSum(t *testing.T) {
	t.Parallel()

	tests := []Weights{
		{Price: 1, Performance: 1, Support: 1, Refund: 0},
		{Price: 33, Performance: 33, Support: 33, Refund: 1},
		{Price: 1, Performance: 2, Support: 3, Refund: 4},
		{Price: 7, Performance: 7, Support: 7, Refund: 7},
		{Price: 100, Performance: 0, Support: 0, Refund: 0},
		{Price: 999, Performance: 1, Support: 0, Refund: 0},
	}

	for _, w := range tests {
		scaled := RescaleTo100(w)
		if scaled.Sum() != 100 {
			t.Fatalf("RescaleTo100(%+v) sums to %d, want 100", w, scaled.Sum())
		}
		if scaled.Price < 0 || scaled.Performance < 0 || scaled.Support < 0 || scaled.Refund < 0 {
			t.Fatalf("RescaleTo100(%+v) produced a negative weight: %+v", w, scaled)
		}
	}
}

func TestRescaleTo100PreservesProportions(t *testing.T) {
	t.Parallel()

	scaled := RescaleTo100(Weights{Price: 2, Performance: 1, Support: 1, Refund: 0})
	want := Weights{Price: 50, Performance: 25, Support: 25, Refund: 0}
	if scaled != want {
		t.Fatalf("got %+v, want %+v", scaled, want)
	}
}

func TestRescaleTo100ZeroFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := RescaleTo100(Weights{}); got != DefaultWeights() {
		t.Fatalf("zero weights rescaled to %+v, want defaults", got)
	}
}

func TestEncodeDecodeWeights(t *testing.T) {
	t.Parallel()

	w := Weights{Price: 50, Performance: 20, Support: 20, Refund: 10}
	raw, err := EncodeWeights(w)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	got, err := DecodeWeights(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != w {
		t.Fatalf("round trip changed weights: %+v != %+v", got, w)
	}
}

func TestDecodeWeightsRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := DecodeWeights("not json"); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
	if _, err := DecodeWeights(`{"price":-5,"performance":10,"support":10,"refund":10}`); err == nil {
		t.Fatalf("expected error for negative weight")
	}
}
