// Package pricing - Margin resolution
package pricing

import "github.com/crazynala/axis-sub002/core/types"

// DefaultMargin is the hardcoded fallback margin, applied only in the
// default cost-plus-margin mode when the whole chain is unresolved.
const DefaultMargin = 0.1

// FirstPresent returns the first non-nil source, or nil when every
// source is absent. It is the reusable first-match-wins helper behind
// margin resolution and any future default chain.
func FirstPresent(sources ...*float64) *float64 {
	for _, s := range sources {
		if s != nil {
			return s
		}
	}
	return nil
}

// ResolveMargin resolves the effective margin fraction from the
// precedence chain: manual margin (when set and non-zero), then the
// record override, vendor default, and global default. A manual margin
// of exactly 0 means "no override entered" and is skipped. Returns nil
// when nothing in the chain resolves.
func ResolveMargin(manual *float64, defaults types.MarginDefaults) *float64 {
	if manual != nil && *manual != 0 {
		return manual
	}
	return FirstPresent(
		defaults.MarginOverride,
		defaults.VendorDefaultMargin,
		defaults.GlobalDefaultMargin,
	)
}

// ImpliedMargin back-derives a margin fraction from a pre-tax sell
// price and a resolved unit cost. The derivation is skipped when the
// cost is non-finite or <= 0 so a bad cost never produces Inf/NaN.
func ImpliedMargin(sellPreTax, unitCost float64) *float64 {
	if !types.Finite(unitCost) || unitCost <= 0 || !types.Finite(sellPreTax) {
		return nil
	}
	m := sellPreTax/unitCost - 1
	return &m
}
