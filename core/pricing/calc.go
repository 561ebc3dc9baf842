// Package pricing - Price calculation orchestrator
// Modes are evaluated in strict priority order; the first applicable
// mode wins. The function never returns an error and never panics:
// bad numbers degrade through the types.ToNum guard.
package pricing

import "github.com/crazynala/axis-sub002/core/types"

// CalcPrice converts a product's cost/margin/tier configuration plus an
// order quantity into a final unit sell price, extended totals, and an
// auditable breakdown. Monetary values are rounded to 2 decimal places
// only at the output boundary; all intermediate arithmetic is
// unrounded.
func CalcPrice(in types.PriceInput) types.PriceOutput {
	qty := types.ToNum(in.Qty, 1)
	if qty < 1 {
		qty = 1
	}
	taxRate := types.ToNum(in.TaxRate, 0)
	mult := types.ToNum(in.PriceMultiplier, 1)
	if mult == 0 {
		// zero-value multiplier means "no price list applied"
		mult = 1
	}

	meta := types.Meta{Multiplier: mult}

	// MANUAL: a finite manual sale price short-circuits everything
	// except the fixed-sell model, which claims that field for itself.
	if in.ManualSalePrice != nil && types.Finite(*in.ManualSalePrice) &&
		in.PricingModel != types.ModelTieredCostPlusFixedSell {
		manual := *in.ManualSalePrice
		meta.Mode = types.ModelManual
		discounted := ApplyDiscounts(manual*mult, in.Discounts)
		return assemble(manual, manual, discounted, taxRate, qty, meta)
	}

	// SALE_TIER: explicit sell-price quantity breaks
	if len(in.SaleTiers) > 0 {
		if tier := ResolveSaleTier(in.SaleTiers, qty); tier != nil {
			meta.Mode = types.ModelSaleTier
			meta.Tier = tier
			inTarget := tier.UnitPrice * mult
			discounted := ApplyDiscounts(inTarget, in.Discounts)
			return assemble(tier.UnitPrice, inTarget, discounted, taxRate, qty, meta)
		}
	}

	// TIERED_COST_PLUS_MARGIN: cost tier plus resolved margin, no
	// hardcoded fallback - an unresolved margin means 0% markup here.
	if in.PricingModel == types.ModelTieredCostPlusMargin && len(in.CostTiers) > 0 {
		baseUnit, tier := TieredUnitCost(in.CostTiers, qty, types.ToNum(in.BaseCost, 0))
		margin := ResolveMargin(in.ManualMargin, in.MarginDefaults)
		m := 0.0
		if margin != nil {
			m = *margin
		}
		meta.Mode = types.ModelTieredCostPlusMargin
		meta.CostTier = tier
		meta.Margin = margin
		inTarget := baseUnit * (1 + m)
		discounted := ApplyDiscounts(inTarget, in.Discounts)
		return assemble(baseUnit, inTarget, discounted, taxRate, qty, meta)
	}

	// TIERED_COST_PLUS_FIXED_SELL: the manual price IS the final price;
	// no discount or tax reapplication. The cost tier is still resolved
	// for cost-auditing display.
	if in.PricingModel == types.ModelTieredCostPlusFixedSell {
		final := types.ToNum(in.ManualSalePrice, 0)
		baseUnit, tier := TieredUnitCost(in.CostTiers, qty, types.ToNum(in.BaseCost, 0))
		meta.Mode = types.ModelTieredCostPlusFixedSell
		meta.CostTier = tier
		return assemble(baseUnit, final, final, 0, qty, meta)
	}

	// CURVE_SELL_AT_MOQ: baseline MOQ price scaled by the matching
	// quantity band. The display cost is back-derived from the taxed
	// price when a transfer percent is configured.
	if in.PricingModel == types.ModelCurveSellAtMoq {
		baseline := types.ToNum(in.BaselinePriceAtMoq, 0)
		rangeMult := 1.0
		if rng := ResolveRange(in.PricingSpecRanges, qty); rng != nil {
			rangeMult = rng.Multiplier
			meta.Range = rng
		}
		meta.Mode = types.ModelCurveSellAtMoq
		inTarget := baseline * rangeMult
		discounted := ApplyDiscounts(inTarget, in.Discounts)
		withTax := discounted * (1 + taxRate)
		baseUnit := ImpliedCurveCost(withTax, types.ToNum(in.TransferPercent, 0))
		return assemble(baseUnit, inTarget, discounted, taxRate, qty, meta)
	}

	// COST_PLUS_MARGIN: the default fallback. The full margin chain
	// applies with the hardcoded fallback; the price-list multiplier is
	// NOT applied in this mode.
	baseUnit, tier := TieredUnitCost(in.CostTiers, qty, types.ToNum(in.BaseCost, 0))
	margin := ResolveMargin(in.ManualMargin, in.MarginDefaults)
	m := DefaultMargin
	if margin != nil {
		m = *margin
	}
	meta.Mode = types.ModelCostPlusMargin
	meta.CostTier = tier
	meta.Margin = &m
	inTarget := baseUnit * (1 + m)
	discounted := ApplyDiscounts(inTarget, in.Discounts)
	return assemble(baseUnit, inTarget, discounted, taxRate, qty, meta)
}

// assemble applies the common tax tail and rounds at the output
// boundary. ExtendedCost always equals ExtendedSell: the engine does
// not model procurement cost separately from the billed amount.
func assemble(baseUnit, inTarget, discounted, taxRate, qty float64, meta types.Meta) types.PriceOutput {
	withTax := discounted * (1 + taxRate)
	extended := types.Round2(withTax * qty)

	return types.PriceOutput{
		UnitSellPrice: types.Round2(withTax),
		ExtendedSell:  extended,
		ExtendedCost:  extended,
		Breakdown: types.Breakdown{
			BaseUnit:   types.Round2(baseUnit),
			InTarget:   types.Round2(inTarget),
			Discounted: types.Round2(discounted),
			WithTax:    types.Round2(withTax),
			TaxRate:    taxRate,
		},
		Meta: meta,
	}
}
