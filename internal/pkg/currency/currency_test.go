package currency

import (
	"strings"
	"testing"
)

func TestFormatKnownCurrencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{amount: 9.99, code: "USD", want: "$9.99"},
		{amount: 9.99, code: "EUR", want: "9.99€"},
		{amount: 12.5, code: "GBP", want: "£12.50"},
		{amount: 49.9, code: "TRY", want: "49.90₺"},
		{amount: 1500, code: "JPY", want: "¥1500"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount, tt.code); got != tt.want {
			t.Fatalf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}

func TestFormatTRYContainsAmountAndSymbol(t *testing.T) {
	t.Parallel()

	got := Format(49.9, "TRY")
	if !strings.Contains(got, "49") {
		t.Fatalf("expected amount in %q", got)
	}
	if !strings.Contains(got, "₺") {
		t.Fatalf("expected TRY symbol in %q", got)
	}
}

func TestFormatUnknownCurrencyFallsBack(t *testing.T) {
	t.Parallel()

	got := Format(10, "XXX")
	if got != "10.00 XXX" {
		t.Fatalf("Format(10, XXX) = %q, want \"10.00 XXX\"", got)
	}
}

func TestFormatNormalizesCode(t *testing.T) {
	t.Parallel()

	if got := Format(5, "usd"); got != "$5.00" {
		t.Fatalf("lowercase code not normalized: %q", got)
	}
	if got := Format(5, " eur "); got != "5.00€" {
		t.Fatalf("padded code not normalized: %q", got)
	}
}
