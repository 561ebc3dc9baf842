package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crazynala/axis-sub002/core/display"
	"github.com/crazynala/axis-sub002/core/pricing"
	"github.com/crazynala/axis-sub002/core/types"
)

func sampleReport() *Report {
	out := pricing.CalcPrice(types.PriceInput{
		BaseCost: 4,
		TaxRate:  0.1,
		Qty:      2,
		MarginDefaults: types.MarginDefaults{
			GlobalDefaultMargin: func() *float64 { v := 0.1; return &v }(),
		},
	})

	return &Report{
		Scenario: "test.hcl",
		Currency: types.CurrencyUSD,
		Orders: []PricedOrder{
			{Product: "WIDGET-A", Qty: 2, Result: display.Result{PriceOutput: out}},
		},
	}
}

// TestCLIFormatterRender tests the table output carries the breakdown
func TestCLIFormatterRender(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{}

	if err := f.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"WIDGET-A", "COST_PLUS_MARGIN", "4.84", "9.68", "USD"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

// TestJSONFormatterRender tests the JSON output round-trips
func TestJSONFormatterRender(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	if err := f.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(decoded.Orders))
	}
	if decoded.Orders[0].Result.UnitSellPrice != 4.84 {
		t.Errorf("expected unit sell price 4.84, got %v", decoded.Orders[0].Result.UnitSellPrice)
	}
}

// TestNewFormatter tests format selection
func TestNewFormatter(t *testing.T) {
	if f, err := NewFormatter(FormatJSON); err != nil || f.Format() != FormatJSON {
		t.Errorf("expected json formatter, got %v (err=%v)", f, err)
	}
	if f, err := NewFormatter(""); err != nil || f.Format() != FormatCLI {
		t.Errorf("expected cli formatter for empty format, got %v (err=%v)", f, err)
	}
	if _, err := NewFormatter("yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

// TestReportTotal tests extended totals summation
func TestReportTotal(t *testing.T) {
	r := sampleReport()
	if got := r.Total(); got != 9.68 {
		t.Errorf("expected total 9.68, got %v", got)
	}
}
