// Package scenario provides HCL pricing scenario parsing.
// A scenario file declares products (cost/margin/tier configuration)
// and orders (quantity, tax, price-list multiplier); the loader joins
// them into strict engine inputs.
package scenario

import (
	"github.com/crazynala/axis-sub002/core/determinism"
	"github.com/crazynala/axis-sub002/core/types"
	"github.com/crazynala/axis-sub002/internal/errors"
)

// Product is a product's pricing configuration as declared in a
// scenario file
type Product struct {
	// Code is the product code (block label)
	Code string `json:"code"`

	// Name is the display name
	Name string `json:"name,omitempty"`

	// BaseCost is the untiered per-unit cost
	BaseCost float64 `json:"base_cost"`

	// PricingModel selects the strategy
	PricingModel types.PricingModel `json:"pricing_model,omitempty"`

	// ManualSalePrice is the sale price override
	ManualSalePrice *float64 `json:"manual_sale_price,omitempty"`

	// ManualMargin is the record-level margin override
	ManualMargin *float64 `json:"manual_margin,omitempty"`

	// BaselinePriceAtMoq is the curve mode baseline
	BaselinePriceAtMoq float64 `json:"baseline_price_at_moq,omitempty"`

	// TransferPercent back-derives the curve mode display cost
	TransferPercent float64 `json:"transfer_percent,omitempty"`

	// CostTiers are quantity-break unit costs
	CostTiers []types.CostTier `json:"cost_tiers,omitempty"`

	// SaleTiers are quantity-break sell prices
	SaleTiers []types.SaleTier `json:"sale_tiers,omitempty"`

	// Discounts is the ordered discount chain
	Discounts []types.DiscountSpec `json:"discounts,omitempty"`

	// Ranges are the curve mode quantity bands
	Ranges []types.PricingSpecRange `json:"ranges,omitempty"`

	// MarginDefaults is the margin default chain
	MarginDefaults types.MarginDefaults `json:"margin_defaults,omitempty"`
}

// Order is one order line to price
type Order struct {
	// Name is the order label (block label)
	Name string `json:"name"`

	// Product references a product code
	Product string `json:"product"`

	// Qty is the order quantity
	Qty float64 `json:"qty"`

	// TaxRate is the fractional tax rate
	TaxRate float64 `json:"tax_rate"`

	// Multiplier is the price-list multiplier
	Multiplier float64 `json:"multiplier"`

	// Debug attaches a trace to the priced result
	Debug bool `json:"debug,omitempty"`
}

// Scenario is a parsed scenario file
type Scenario struct {
	// Products indexes products by code in stable order
	Products *determinism.StableMap[string, *Product]

	// Orders are the order lines in file order
	Orders []Order
}

// NewScenario creates an empty scenario
func NewScenario() *Scenario {
	return &Scenario{
		Products: determinism.NewStableMap[string, *Product](func(k string) string { return k }),
	}
}

// PriceInputFor joins an order with its product into a strict engine
// input. Returns a NOT_FOUND error when the product code is unknown.
func (s *Scenario) PriceInputFor(o Order) (types.PriceInput, error) {
	product, ok := s.Products.Get(o.Product)
	if !ok {
		return types.PriceInput{}, errors.NotFound("product", o.Product)
	}

	return types.PriceInput{
		BaseCost:           product.BaseCost,
		Qty:                o.Qty,
		TaxRate:            o.TaxRate,
		PriceMultiplier:    o.Multiplier,
		ManualSalePrice:    product.ManualSalePrice,
		ManualMargin:       product.ManualMargin,
		PricingModel:       product.PricingModel,
		BaselinePriceAtMoq: product.BaselinePriceAtMoq,
		TransferPercent:    product.TransferPercent,
		PricingSpecRanges:  product.Ranges,
		CostTiers:          product.CostTiers,
		SaleTiers:          product.SaleTiers,
		Discounts:          product.Discounts,
		MarginDefaults:     product.MarginDefaults,
	}, nil
}
