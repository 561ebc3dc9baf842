// Package output provides output formatting for priced orders.
// This package produces human and machine-readable renderings; it
// never performs pricing logic.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/crazynala/axis-sub002/core/display"
	"github.com/crazynala/axis-sub002/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// PricedOrder pairs an order line with its priced result
type PricedOrder struct {
	// Product is the product code
	Product string `json:"product"`

	// Qty is the ordered quantity
	Qty float64 `json:"qty"`

	// Result is the priced output with optional trace
	Result display.Result `json:"result"`
}

// Report is the complete pricing run output
type Report struct {
	// Scenario is the source scenario file, when applicable
	Scenario string `json:"scenario,omitempty"`

	// Currency is the display currency
	Currency types.Currency `json:"currency"`

	// Orders are the priced order lines, in scenario order
	Orders []PricedOrder `json:"orders"`
}

// Total returns the summed extended sell across all orders
func (r *Report) Total() float64 {
	total := decimal.Zero
	for _, o := range r.Orders {
		total = total.Add(decimal.NewFromFloat(o.Result.ExtendedSell))
	}
	f, _ := total.Float64()
	return f
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, r *Report) error
}

// NewFormatter returns the formatter for a format name
func NewFormatter(f Format) (Formatter, error) {
	switch f {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", f)
	}
}

// CLIFormatter renders a human-readable table
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the aligned breakdown table
func (f *CLIFormatter) Render(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "PRODUCT\tQTY\tMODE\tBASE\tIN TARGET\tDISCOUNTED\tUNIT SELL\tEXTENDED")
	for _, o := range r.Orders {
		b := o.Result.Breakdown
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.Product,
			decimal.NewFromFloat(o.Qty).String(),
			o.Result.Meta.Mode,
			money(b.BaseUnit),
			money(b.InTarget),
			money(b.Discounted),
			money(o.Result.UnitSellPrice),
			money(o.Result.ExtendedSell),
		)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t\t\t\t\t%s %s\n", money(r.Total()), r.Currency)

	return tw.Flush()
}

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as indented JSON
func (f *JSONFormatter) Render(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
