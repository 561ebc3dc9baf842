// Package pricing - Curve-at-MOQ quantity bands
package pricing

import "github.com/crazynala/axis-sub002/core/types"

// ResolveRange returns the first quantity band containing qty, in
// caller order. Returns nil when no band matches.
func ResolveRange(ranges []types.PricingSpecRange, qty float64) *types.PricingSpecRange {
	for i := range ranges {
		if ranges[i].Contains(qty) {
			return &ranges[i]
		}
	}
	return nil
}

// ImpliedCurveCost back-derives a display-only unit cost from the taxed
// sell price in curve mode: withTax * transferPercent. Cost-facing
// views use this when the curve mode has no cost tier table. The
// formula's behavior for transferPercent > 1 is deliberately kept in
// this one function so it can change without touching the calculator.
func ImpliedCurveCost(withTax, transferPercent float64) float64 {
	if !types.Finite(transferPercent) || transferPercent <= 0 {
		return 0
	}
	return withTax * transferPercent
}
