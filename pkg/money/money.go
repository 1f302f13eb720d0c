// Package money holds the rounding helpers applied to every
// monetary output of the calculation engine.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundingEpsilon nudges binary values such as 1.005 (stored as 1.00499...)
// onto the half-cent before scaling.
const roundingEpsilon = 2.220446049250313e-16

// Round rounds a value to cents with halves going up toward +Inf after scaling:
// 2.345 becomes 2.35 and -2.345 becomes -2.34. NaN and infinities pass through.
func Round(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return math.Floor((value+roundingEpsilon)*100+0.5) / 100
}

// RoundTo rounds to the given number of decimal places.
func RoundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// Decimal returns the cent-rounded decimal form of a value, for display.
func Decimal(value float64) decimal.Decimal {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(value).Round(2)
}
