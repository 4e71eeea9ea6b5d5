package currency

import (
	"fmt"
	"strings"
)

type format struct {
	symbol   string
	decimals int
	position string // "before" or "after"
}

// Display rules for the currencies the catalog actually lists. Everything
// else falls back to "<amount> <CODE>".
var formats = map[string]format{
	"USD": {symbol: "$", decimals: 2, position: "before"},
	"EUR": {symbol: "€", decimals: 2, position: "after"},
	"GBP": {symbol: "£", decimals: 2, position: "before"},
	"TRY": {symbol: "₺", decimals: 2, position: "after"},
	"CHF": {symbol: "CHF", decimals: 2, position: "before"},
	"JPY": {symbol: "¥", decimals: 0, position: "before"},
	"CNY": {symbol: "¥", decimals: 0, position: "before"},
	"INR": {symbol: "₹", decimals: 2, position: "before"},
	"BRL": {symbol: "R$", decimals: 2, position: "before"},
}

// Format renders an amount with its ISO 4217 code for display. Unknown codes
// never fail; they render as "<amount> <CODE>".
func Format(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	f, ok := formats[code]
	if !ok {
		return fmt.Sprintf("%.2f %s", amount, code)
	}

	value := fmt.Sprintf("%.*f", f.decimals, amount)
	if f.position == "after" {
		return value + f.symbol
	}
	return f.symbol + value
}
