// Package pricing - Discount application
package pricing

import "github.com/crazynala/axis-sub002/core/types"

// ApplyDiscounts folds the discount chain over a pre-tax unit price in
// caller order. Percentage and fixed discounts do not commute, so the
// sequence is applied exactly as supplied: pct entries multiply by
// (1 - pct), amount entries subtract and floor at 0, entries with
// neither set are no-ops.
func ApplyDiscounts(preTaxUnit float64, discounts []types.DiscountSpec) float64 {
	price := preTaxUnit
	for _, d := range discounts {
		switch {
		case d.Pct != nil:
			price = price * (1 - *d.Pct)
		case d.Amount != nil:
			price = price - *d.Amount
			if price < 0 {
				price = 0
			}
		}
	}
	return price
}
