// Package types - Numeric guards
// Caller-supplied values arrive from form state and JSON and may be
// strings, nulls, or non-finite. Coercion happens here, once, at the
// boundary - never inside strategy logic.
package types

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ToNum coerces an arbitrary value to a finite float64, returning
// fallback for anything that is not a finite number.
func ToNum(v interface{}, fallback float64) float64 {
	f, ok := asFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// ToNumOpt coerces like ToNum but returns nil when the value is absent
// or not a finite number, preserving the set/unset distinction.
func ToNumOpt(v interface{}) *float64 {
	f, ok := asFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case *float64:
		if n == nil {
			return 0, false
		}
		return *n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Finite reports whether v is a usable number
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round2 rounds a monetary value to 2 decimal places at the output
// boundary. Intermediate arithmetic stays unrounded; this is the only
// place money is rounded. Non-finite input degrades to 0.
func Round2(v float64) float64 {
	if !Finite(v) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
