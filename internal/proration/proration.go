// Package proration splits a group booking amount across its participants for
// display. Amounts it returns are estimates; billing never reads them.
package proration

import "github.com/shopspring/decimal"

// PreviewPlaces is the number of decimal places shown in a preview.
const PreviewPlaces = 2

// PerUnitAmount divides total by units without rounding to currency precision.
// A non-positive unit count yields zero.
func PerUnitAmount(total decimal.Decimal, units int) decimal.Decimal {
	if units <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(units)))
}

// PreviewPerUnit is PerUnitAmount rounded half away from zero for display only.
func PreviewPerUnit(total decimal.Decimal, units int) string {
	return PerUnitAmount(total, units).StringFixed(PreviewPlaces)
}
