// Package pricing - Deterministic price calculation
// This package is pure computation: no I/O, no shared state, no errors.
// Malformed input degrades to sane defaults instead of propagating NaN.
package pricing

import (
	"sort"

	"github.com/crazynala/axis-sub002/core/types"
)

// resolveTier selects the last tier whose threshold is <= qty after a
// defensive stable ascending sort. Caller order is never trusted; ties
// on the threshold resolve to the later element. Returns nil when no
// tier qualifies or the list is empty.
func resolveTier[T any](tiers []T, minQty func(T) float64, qty float64) *T {
	if len(tiers) == 0 {
		return nil
	}

	sorted := make([]T, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return minQty(sorted[i]) < minQty(sorted[j])
	})

	var match *T
	for i := range sorted {
		if minQty(sorted[i]) <= qty {
			match = &sorted[i]
		}
	}
	return match
}

// ResolveCostTier returns the cost tier applicable at qty, or nil
func ResolveCostTier(tiers []types.CostTier, qty float64) *types.CostTier {
	return resolveTier(tiers, func(t types.CostTier) float64 { return t.MinQty }, qty)
}

// ResolveSaleTier returns the sale tier applicable at qty, or nil
func ResolveSaleTier(tiers []types.SaleTier, qty float64) *types.SaleTier {
	return resolveTier(tiers, func(t types.SaleTier) float64 { return t.MinQty }, qty)
}

// TieredUnitCost resolves the unit cost at qty, falling back to
// baseCost when no tier qualifies. The matched tier (if any) is
// returned alongside for audit metadata.
func TieredUnitCost(tiers []types.CostTier, qty, baseCost float64) (float64, *types.CostTier) {
	tier := ResolveCostTier(tiers, qty)
	if tier == nil {
		return baseCost, nil
	}
	return tier.UnitCost, tier
}
