package pricing

import (
	"testing"

	"github.com/crazynala/axis-sub002/core/types"
)

func fp(v float64) *float64 { return &v }

// TestResolveMarginPrecedence tests the first-match-wins chain
func TestResolveMarginPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		manual   *float64
		defaults types.MarginDefaults
		want     *float64
	}{
		{
			name:   "manual wins over everything",
			manual: fp(0.25),
			defaults: types.MarginDefaults{
				MarginOverride:      fp(0.2),
				VendorDefaultMargin: fp(0.15),
				GlobalDefaultMargin: fp(0.1),
			},
			want: fp(0.25),
		},
		{
			name:   "zero manual means unset",
			manual: fp(0),
			defaults: types.MarginDefaults{
				MarginOverride: fp(0.2),
			},
			want: fp(0.2),
		},
		{
			name: "override beats vendor and global",
			defaults: types.MarginDefaults{
				MarginOverride:      fp(0.2),
				VendorDefaultMargin: fp(0.15),
				GlobalDefaultMargin: fp(0.1),
			},
			want: fp(0.2),
		},
		{
			name: "vendor beats global",
			defaults: types.MarginDefaults{
				VendorDefaultMargin: fp(0.15),
				GlobalDefaultMargin: fp(0.1),
			},
			want: fp(0.15),
		},
		{
			name: "global is last resort",
			defaults: types.MarginDefaults{
				GlobalDefaultMargin: fp(0.1),
			},
			want: fp(0.1),
		},
		{
			name: "fully unresolved",
			want: nil,
		},
		{
			name:   "negative manual margin is a real value",
			manual: fp(-0.05),
			defaults: types.MarginDefaults{
				GlobalDefaultMargin: fp(0.1),
			},
			want: fp(-0.05),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMargin(tt.manual, tt.defaults)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

// TestFirstPresent tests the reusable default-chain helper
func TestFirstPresent(t *testing.T) {
	if got := FirstPresent(nil, nil, fp(3), fp(4)); got == nil || *got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	if got := FirstPresent(); got != nil {
		t.Errorf("expected nil for no sources, got %v", got)
	}
	if got := FirstPresent(nil, nil); got != nil {
		t.Errorf("expected nil for all-absent sources, got %v", got)
	}
	if got := FirstPresent(fp(0), fp(1)); got == nil || *got != 0 {
		t.Errorf("expected present zero to win, got %v", got)
	}
}

// TestImpliedMargin tests the guarded back-derivation
func TestImpliedMargin(t *testing.T) {
	if got := ImpliedMargin(15, 10); got == nil || *got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if got := ImpliedMargin(12, 0); got != nil {
		t.Errorf("expected nil for zero cost, got %v", *got)
	}
	if got := ImpliedMargin(12, -5); got != nil {
		t.Errorf("expected nil for negative cost, got %v", *got)
	}
}
