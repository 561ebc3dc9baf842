package pricing

import (
	"testing"

	"github.com/crazynala/axis-sub002/core/types"
)

// TestApplyDiscounts tests the left-fold semantics
func TestApplyDiscounts(t *testing.T) {
	tests := []struct {
		name      string
		preTax    float64
		discounts []types.DiscountSpec
		want      float64
	}{
		{
			name:   "no discounts",
			preTax: 100,
			want:   100,
		},
		{
			name:   "single percentage",
			preTax: 100,
			discounts: []types.DiscountSpec{
				{Code: "PROMO10", Pct: fp(0.1)},
			},
			want: 90,
		},
		{
			name:   "single fixed amount",
			preTax: 100,
			discounts: []types.DiscountSpec{
				{Code: "FLAT5", Amount: fp(5)},
			},
			want: 95,
		},
		{
			name:   "fixed amount floors at zero",
			preTax: 3,
			discounts: []types.DiscountSpec{
				{Code: "FLAT5", Amount: fp(5)},
			},
			want: 0,
		},
		{
			name:   "empty entry is a no-op",
			preTax: 100,
			discounts: []types.DiscountSpec{
				{Code: "NOOP"},
			},
			want: 100,
		},
		{
			name:   "pct then amount",
			preTax: 100,
			discounts: []types.DiscountSpec{
				{Code: "PROMO10", Pct: fp(0.1)},
				{Code: "FLAT5", Amount: fp(5)},
			},
			want: 85,
		},
		{
			name:   "amount then pct",
			preTax: 100,
			discounts: []types.DiscountSpec{
				{Code: "FLAT5", Amount: fp(5)},
				{Code: "PROMO10", Pct: fp(0.1)},
			},
			want: 85.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscounts(tt.preTax, tt.discounts)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestApplyDiscountsOrderMatters documents that percentage and fixed
// discounts do not commute
func TestApplyDiscountsOrderMatters(t *testing.T) {
	pctFirst := ApplyDiscounts(100, []types.DiscountSpec{
		{Code: "P", Pct: fp(0.1)},
		{Code: "A", Amount: fp(5)},
	})
	amtFirst := ApplyDiscounts(100, []types.DiscountSpec{
		{Code: "A", Amount: fp(5)},
		{Code: "P", Pct: fp(0.1)},
	})

	if pctFirst == amtFirst {
		t.Errorf("expected different results by order, both were %v", pctFirst)
	}
}
