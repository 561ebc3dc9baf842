// Package types - Shared pricing value types
// All types here are stateless value objects constructed per call.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// PricingModel identifies which pricing strategy governs an input.
// The same values are reported back in Meta.Mode for the mode that won.
type PricingModel string

const (
	// ModelManual is a caller-supplied sale price override
	ModelManual PricingModel = "MANUAL"

	// ModelSaleTier prices from an explicit sell-price quantity break
	ModelSaleTier PricingModel = "SALE_TIER"

	// ModelTieredCostPlusMargin derives price from a cost tier plus margin
	ModelTieredCostPlusMargin PricingModel = "TIERED_COST_PLUS_MARGIN"

	// ModelTieredCostPlusFixedSell uses cost tiers for audit display only;
	// the sell price is fixed by the caller
	ModelTieredCostPlusFixedSell PricingModel = "TIERED_COST_PLUS_FIXED_SELL"

	// ModelCurveSellAtMoq scales a baseline MOQ price by a quantity band
	ModelCurveSellAtMoq PricingModel = "CURVE_SELL_AT_MOQ"

	// ModelCostPlusMargin is the default cost-plus-margin fallback
	ModelCostPlusMargin PricingModel = "COST_PLUS_MARGIN"
)

// CostTier is a unit cost that applies once quantity reaches MinQty
type CostTier struct {
	// MinQty is the inclusive quantity threshold
	MinQty float64 `json:"min_qty"`

	// UnitCost is the per-unit cost at this tier
	UnitCost float64 `json:"unit_cost"`
}

// SaleTier is an explicit pre-tax sell price per quantity break
type SaleTier struct {
	// MinQty is the inclusive quantity threshold
	MinQty float64 `json:"min_qty"`

	// UnitPrice is the pre-tax per-unit sell price at this tier
	UnitPrice float64 `json:"unit_price"`
}

// DiscountSpec is one entry in an ordered discount chain.
// Exactly one of Pct/Amount is meaningful; both absent means no-op.
type DiscountSpec struct {
	// Code identifies the discount for audit purposes
	Code string `json:"code"`

	// Pct is a fractional percentage discount (0.1 = 10% off)
	Pct *float64 `json:"pct,omitempty"`

	// Amount is a fixed per-unit discount
	Amount *float64 `json:"amount,omitempty"`
}

// PricingSpecRange is a quantity band used by the curve-at-MOQ mode
type PricingSpecRange struct {
	// RangeFrom is the inclusive lower bound (nil = unbounded below)
	RangeFrom *float64 `json:"range_from"`

	// RangeTo is the inclusive upper bound (nil = unbounded above)
	RangeTo *float64 `json:"range_to"`

	// Multiplier scales the baseline MOQ price inside this band
	Multiplier float64 `json:"multiplier"`
}

// Contains reports whether qty falls inside the band
func (r PricingSpecRange) Contains(qty float64) bool {
	if r.RangeFrom != nil && qty < *r.RangeFrom {
		return false
	}
	if r.RangeTo != nil && qty > *r.RangeTo {
		return false
	}
	return true
}

// MarginDefaults is the default chain consulted when no manual margin applies
type MarginDefaults struct {
	// MarginOverride is a record-level override
	MarginOverride *float64 `json:"margin_override,omitempty"`

	// VendorDefaultMargin is the vendor-level default
	VendorDefaultMargin *float64 `json:"vendor_default_margin,omitempty"`

	// GlobalDefaultMargin is the system-wide default
	GlobalDefaultMargin *float64 `json:"global_default_margin,omitempty"`
}

// PriceInput aggregates everything the calculator needs for one pricing call
type PriceInput struct {
	// BaseCost is the untiered per-unit cost
	BaseCost float64 `json:"base_cost"`

	// Qty is the order quantity (clamped to >= 1 internally)
	Qty float64 `json:"qty"`

	// TaxRate is the fractional tax rate applied last
	TaxRate float64 `json:"tax_rate"`

	// PriceMultiplier is a customer/channel price-list scalar
	PriceMultiplier float64 `json:"price_multiplier"`

	// ManualSalePrice overrides computed pricing when set
	ManualSalePrice *float64 `json:"manual_sale_price,omitempty"`

	// ManualMargin overrides the margin default chain when set and non-zero
	ManualMargin *float64 `json:"manual_margin,omitempty"`

	// PricingModel selects the tiered / fixed-sell / curve strategies
	PricingModel PricingModel `json:"pricing_model,omitempty"`

	// BaselinePriceAtMoq is the curve mode's baseline price
	BaselinePriceAtMoq float64 `json:"baseline_price_at_moq,omitempty"`

	// TransferPercent back-derives an implied cost in curve mode
	TransferPercent float64 `json:"transfer_percent,omitempty"`

	// PricingSpecRanges are the curve mode's quantity bands
	PricingSpecRanges []PricingSpecRange `json:"pricing_spec_ranges,omitempty"`

	// CostTiers are quantity-break unit costs
	CostTiers []CostTier `json:"cost_tiers,omitempty"`

	// SaleTiers are quantity-break sell prices
	SaleTiers []SaleTier `json:"sale_tiers,omitempty"`

	// Discounts is the ordered discount chain
	Discounts []DiscountSpec `json:"discounts,omitempty"`

	// MarginDefaults is the margin default chain
	MarginDefaults MarginDefaults `json:"margin_defaults,omitempty"`
}

// Breakdown retains the intermediate values for audit/display.
// Monetary fields are rounded to 2 decimal places at the output boundary.
type Breakdown struct {
	// BaseUnit is the resolved unit cost (or implied cost in curve mode)
	BaseUnit float64 `json:"base_unit"`

	// InTarget is the pre-discount unit sell price
	InTarget float64 `json:"in_target"`

	// Discounted is the post-discount, pre-tax unit price
	Discounted float64 `json:"discounted"`

	// WithTax is the final taxed unit price
	WithTax float64 `json:"with_tax"`

	// TaxRate echoes the applied tax rate
	TaxRate float64 `json:"tax_rate"`
}

// Meta records which mode won and the mode-specific inputs it used
type Meta struct {
	// Mode is the pricing strategy that produced the result
	Mode PricingModel `json:"mode"`

	// Multiplier echoes the price-list multiplier
	Multiplier float64 `json:"multiplier"`

	// Tier is the matched sale tier (SALE_TIER mode)
	Tier *SaleTier `json:"tier,omitempty"`

	// CostTier is the matched cost tier (cost-based modes)
	CostTier *CostTier `json:"cost_tier,omitempty"`

	// Margin is the resolved margin fraction (margin-based modes)
	Margin *float64 `json:"margin,omitempty"`

	// Range is the matched quantity band (curve mode)
	Range *PricingSpecRange `json:"range,omitempty"`
}

// PriceOutput is the priced result with its full audit breakdown
type PriceOutput struct {
	// UnitSellPrice is the final taxed unit price, rounded to 2dp
	UnitSellPrice float64 `json:"unit_sell_price"`

	// ExtendedSell is UnitSellPrice's basis extended over quantity, rounded to 2dp
	ExtendedSell float64 `json:"extended_sell"`

	// ExtendedCost equals ExtendedSell in every mode; the engine does not
	// model procurement cost separately from the billed amount
	ExtendedCost float64 `json:"extended_cost"`

	// Breakdown holds the intermediate values
	Breakdown Breakdown `json:"breakdown"`

	// Meta records the winning mode and its inputs
	Meta Meta `json:"meta"`
}
