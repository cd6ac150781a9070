// Package money holds the fixed-point rounding primitives shared by every
// component that emits a monetary or percentage value.
//
// Monetary values are quantized to 2 decimal places, percentages to 4, both
// round-half-up. Quantization happens exactly once, at the point a value is
// finalized for output or label text. Intermediate values stay unrounded.
package money

import "github.com/shopspring/decimal"

var (
	half    = decimal.New(5, -1) // 0.5
	hundred = decimal.New(100, 0)
)

// QuantizeMoney rounds to 2 decimal places, half-up.
func QuantizeMoney(d decimal.Decimal) decimal.Decimal {
	return roundHalfUp(d, 2)
}

// QuantizePercent rounds to 4 decimal places, half-up.
func QuantizePercent(d decimal.Decimal) decimal.Decimal {
	return roundHalfUp(d, 4)
}

// Quantize rounds to the given number of decimal places, half-up. For values
// with their own contract precision, like shipment weight at 3 places.
func Quantize(d decimal.Decimal, places int32) decimal.Decimal {
	return roundHalfUp(d, places)
}

// FormatMoney renders a quantized monetary value as a decimal string ("123.45").
func FormatMoney(d decimal.Decimal) string {
	return QuantizeMoney(d).StringFixed(2)
}

// FormatPercent renders a quantized percentage as a decimal string ("0.0950").
func FormatPercent(d decimal.Decimal) string {
	return QuantizePercent(d).StringFixed(4)
}

// Percent converts a percentage into its multiplier fraction (5 -> 0.05).
func Percent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// roundHalfUp quantizes d to the given number of decimal places, rounding
// ties toward positive infinity. shopspring's Round rounds ties away from
// zero, which differs for negative inputs (-0.005 must become -0.00, not
// -0.01), so the shift/floor form is used instead.
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}
