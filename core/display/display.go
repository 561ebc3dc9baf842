// Package display - Display price adapter
// Sits between form/listing callers and the calculator. Callers supply
// loosely-shaped values (nullable numbers, strings from form state,
// margin default bundles); normalization happens here, once, and the
// calculator only ever sees a strict PriceInput.
package display

import (
	"github.com/crazynala/axis-sub002/core/pricing"
	"github.com/crazynala/axis-sub002/core/types"
)

// Input is the loose superset of fields callers may supply. Numeric
// fields are interface{} because form state delivers them as numbers,
// strings, or nulls interchangeably.
type Input struct {
	// BaseCost is the untiered per-unit cost
	BaseCost interface{} `json:"base_cost,omitempty"`

	// Qty is the order quantity (clamped to >= 1)
	Qty interface{} `json:"qty,omitempty"`

	// TaxRate is the fractional tax rate
	TaxRate interface{} `json:"tax_rate,omitempty"`

	// PriceMultiplier is the price-list scalar (absent means 1)
	PriceMultiplier interface{} `json:"price_multiplier,omitempty"`

	// ManualSalePrice overrides computed pricing when coercible
	ManualSalePrice interface{} `json:"manual_sale_price,omitempty"`

	// ManualMargin is the record-level margin override
	ManualMargin interface{} `json:"manual_margin,omitempty"`

	// BaselinePriceAtMoq is the curve mode baseline
	BaselinePriceAtMoq interface{} `json:"baseline_price_at_moq,omitempty"`

	// TransferPercent back-derives curve mode display cost
	TransferPercent interface{} `json:"transfer_percent,omitempty"`

	// PricingModel selects the strategy
	PricingModel types.PricingModel `json:"pricing_model,omitempty"`

	// PricingSpecRanges are the curve quantity bands
	PricingSpecRanges []types.PricingSpecRange `json:"pricing_spec_ranges,omitempty"`

	// CostTiers are quantity-break unit costs
	CostTiers []types.CostTier `json:"cost_tiers,omitempty"`

	// SaleTiers are quantity-break sell prices
	SaleTiers []types.SaleTier `json:"sale_tiers,omitempty"`

	// Discounts is the ordered discount chain
	Discounts []types.DiscountSpec `json:"discounts,omitempty"`

	// MarginDefaults is the margin default chain
	MarginDefaults types.MarginDefaults `json:"margin_defaults,omitempty"`

	// Debug attaches a diagnostic trace to the result
	Debug bool `json:"debug,omitempty"`
}

// Trace is the diagnostic view of the normalized inputs
type Trace struct {
	// Qty is the clamped quantity used
	Qty float64 `json:"qty"`

	// TaxRate is the coerced tax rate
	TaxRate float64 `json:"tax_rate"`

	// MarginPct is the pre-resolved margin, nil when unresolved
	MarginPct *float64 `json:"margin_pct,omitempty"`

	// Multiplier is the coerced price-list multiplier
	Multiplier float64 `json:"multiplier"`

	// PricingModel echoes the selected strategy
	PricingModel types.PricingModel `json:"pricing_model,omitempty"`
}

// Result is a priced output with an optional trace
type Result struct {
	types.PriceOutput

	// Trace is present only when Input.Debug was set
	Trace *Trace `json:"trace,omitempty"`
}

// Normalize coerces a loose Input into the strict PriceInput shape.
// Margin precedence is resolved here too, so callers can pass a manual
// margin plus a defaults bundle without duplicating the chain; the
// resolved value rides in as the manual margin and re-resolves to the
// same answer inside the calculator.
func Normalize(in Input) types.PriceInput {
	qty := types.ToNum(in.Qty, 1)
	if qty < 1 {
		qty = 1
	}

	margin := pricing.ResolveMargin(types.ToNumOpt(in.ManualMargin), in.MarginDefaults)

	return types.PriceInput{
		BaseCost:           types.ToNum(in.BaseCost, 0),
		Qty:                qty,
		TaxRate:            types.ToNum(in.TaxRate, 0),
		PriceMultiplier:    types.ToNum(in.PriceMultiplier, 1),
		ManualSalePrice:    types.ToNumOpt(in.ManualSalePrice),
		ManualMargin:       margin,
		PricingModel:       in.PricingModel,
		BaselinePriceAtMoq: types.ToNum(in.BaselinePriceAtMoq, 0),
		TransferPercent:    types.ToNum(in.TransferPercent, 0),
		PricingSpecRanges:  in.PricingSpecRanges,
		CostTiers:          in.CostTiers,
		SaleTiers:          in.SaleTiers,
		Discounts:          in.Discounts,
		MarginDefaults:     in.MarginDefaults,
	}
}

// GetProductDisplayPrice normalizes the input, prices it, and
// optionally attaches a trace. For equivalent normalized input its
// output is identical to a direct CalcPrice call.
func GetProductDisplayPrice(in Input) Result {
	normalized := Normalize(in)
	out := pricing.CalcPrice(normalized)

	res := Result{PriceOutput: out}
	if in.Debug {
		res.Trace = &Trace{
			Qty:          normalized.Qty,
			TaxRate:      normalized.TaxRate,
			MarginPct:    normalized.ManualMargin,
			Multiplier:   normalized.PriceMultiplier,
			PricingModel: normalized.PricingModel,
		}
	}
	return res
}
