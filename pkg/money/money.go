// Package money centralizes the monetary arithmetic used across the
// application. All rounding goes through shopspring/decimal so that item
// subtotals and report figures never accumulate binary floating point noise;
// float64 only appears at the edges, in models and JSON payloads.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds a value to 2 decimal places (half away from zero).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ItemSubtotal computes round2(price * quantity), the canonical line-item
// subtotal. Rounding is applied per item, never to the order total.
func ItemSubtotal(price float64, quantity int) float64 {
	p := decimal.NewFromFloat(price)
	q := decimal.NewFromInt(int64(quantity))
	return p.Mul(q).Round(2).InexactFloat64()
}

// Sum adds already-rounded monetary values without reintroducing float drift.
func Sum(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}

// Percent returns part/whole*100, guarded against a zero or negative whole.
func Percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(part)
	w := decimal.NewFromFloat(whole)
	return p.Div(w).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.234,56".
// The output is deterministic for a given input; the shared summaries rely
// on that for byte-stable rendering.
func FormatBRL(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2) // "1234.56"
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
