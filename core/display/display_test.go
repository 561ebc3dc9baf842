package display

import (
	"reflect"
	"testing"

	"github.com/crazynala/axis-sub002/core/pricing"
	"github.com/crazynala/axis-sub002/core/types"
)

func fp(v float64) *float64 { return &v }

// TestNormalizeCoercion tests the stringly/nullable field handling
func TestNormalizeCoercion(t *testing.T) {
	in := Input{
		BaseCost:        "4.5",
		Qty:             nil,
		TaxRate:         "0.1",
		PriceMultiplier: "not a number",
		ManualSalePrice: "oops",
		ManualMargin:    "0.2",
	}

	got := Normalize(in)

	if got.BaseCost != 4.5 {
		t.Errorf("expected base cost 4.5 from string, got %v", got.BaseCost)
	}
	if got.Qty != 1 {
		t.Errorf("expected absent qty to clamp to 1, got %v", got.Qty)
	}
	if got.TaxRate != 0.1 {
		t.Errorf("expected tax rate 0.1 from string, got %v", got.TaxRate)
	}
	if got.PriceMultiplier != 1 {
		t.Errorf("expected bad multiplier to default to 1, got %v", got.PriceMultiplier)
	}
	if got.ManualSalePrice != nil {
		t.Errorf("expected uncoercible manual price to stay unset, got %v", *got.ManualSalePrice)
	}
	if got.ManualMargin == nil || *got.ManualMargin != 0.2 {
		t.Errorf("expected margin 0.2 from string, got %v", got.ManualMargin)
	}
}

// TestNormalizeQtyClamp tests zero and negative quantity clamping
func TestNormalizeQtyClamp(t *testing.T) {
	for _, qty := range []interface{}{0, -3, "-10", "0"} {
		got := Normalize(Input{Qty: qty})
		if got.Qty != 1 {
			t.Errorf("qty %v: expected clamp to 1, got %v", qty, got.Qty)
		}
	}
	if got := Normalize(Input{Qty: "25"}); got.Qty != 25 {
		t.Errorf("expected string qty 25 to pass through, got %v", got.Qty)
	}
}

// TestNormalizeMarginPreResolution tests that the defaults chain is
// resolved at the adapter boundary
func TestNormalizeMarginPreResolution(t *testing.T) {
	got := Normalize(Input{
		ManualMargin: 0, // zero means unset
		MarginDefaults: types.MarginDefaults{
			VendorDefaultMargin: fp(0.15),
		},
	})

	if got.ManualMargin == nil || *got.ManualMargin != 0.15 {
		t.Errorf("expected pre-resolved margin 0.15, got %v", got.ManualMargin)
	}
}

// TestAdapterCalculatorEquivalence tests that the adapter produces
// identical output to a direct CalcPrice call on normalized input
func TestAdapterCalculatorEquivalence(t *testing.T) {
	inputs := []Input{
		{
			BaseCost: "4",
			TaxRate:  0.1,
			MarginDefaults: types.MarginDefaults{
				GlobalDefaultMargin: fp(0.1),
			},
		},
		{
			Qty:          "10",
			PricingModel: types.ModelTieredCostPlusMargin,
			CostTiers: []types.CostTier{
				{MinQty: 1, UnitCost: 5},
				{MinQty: 10, UnitCost: 4},
			},
			ManualMargin: "0.25",
		},
		{
			ManualSalePrice: 9.99,
			Discounts: []types.DiscountSpec{
				{Code: "P", Pct: fp(0.1)},
			},
		},
		{
			Qty:                60,
			PricingModel:       types.ModelCurveSellAtMoq,
			BaselinePriceAtMoq: 5,
			TransferPercent:    "0.5",
			TaxRate:            0.1,
			PricingSpecRanges: []types.PricingSpecRange{
				{RangeFrom: fp(1), Multiplier: 1},
			},
		},
	}

	for i, in := range inputs {
		adapted := GetProductDisplayPrice(in)
		direct := pricing.CalcPrice(Normalize(in))
		if !reflect.DeepEqual(adapted.PriceOutput, direct) {
			t.Errorf("input %d: adapter and calculator diverged:\n%+v\n%+v", i, adapted.PriceOutput, direct)
		}
	}
}

// TestGetProductDisplayPriceTrace tests the debug trace attachment
func TestGetProductDisplayPriceTrace(t *testing.T) {
	in := Input{
		Qty:             "0",
		TaxRate:         0.2,
		PriceMultiplier: 1.1,
		PricingModel:    types.ModelCostPlusMargin,
		ManualMargin:    0.3,
		Debug:           true,
	}

	res := GetProductDisplayPrice(in)
	if res.Trace == nil {
		t.Fatal("expected trace when debug is set")
	}
	if res.Trace.Qty != 1 {
		t.Errorf("expected trace qty clamped to 1, got %v", res.Trace.Qty)
	}
	if res.Trace.TaxRate != 0.2 {
		t.Errorf("expected trace tax rate 0.2, got %v", res.Trace.TaxRate)
	}
	if res.Trace.MarginPct == nil || *res.Trace.MarginPct != 0.3 {
		t.Errorf("expected trace margin 0.3, got %v", res.Trace.MarginPct)
	}
	if res.Trace.Multiplier != 1.1 {
		t.Errorf("expected trace multiplier 1.1, got %v", res.Trace.Multiplier)
	}

	in.Debug = false
	if res := GetProductDisplayPrice(in); res.Trace != nil {
		t.Error("expected no trace when debug is unset")
	}
}

// TestGetProductDisplayPriceBlankConfig tests the degrade path: absent
// upstream data prices as 0.00 rather than failing
func TestGetProductDisplayPriceBlankConfig(t *testing.T) {
	res := GetProductDisplayPrice(Input{})

	if res.UnitSellPrice != 0 {
		t.Errorf("expected 0 price for empty input, got %v", res.UnitSellPrice)
	}
	if res.Meta.Mode != types.ModelCostPlusMargin {
		t.Errorf("expected default mode, got %s", res.Meta.Mode)
	}
}
