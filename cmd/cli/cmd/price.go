// Package cmd - price command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crazynala/axis-sub002/adapters/scenario"
	"github.com/crazynala/axis-sub002/core/display"
	"github.com/crazynala/axis-sub002/core/output"
	"github.com/crazynala/axis-sub002/core/pricing"
	"github.com/crazynala/axis-sub002/core/types"
	"github.com/crazynala/axis-sub002/internal/config"
	"github.com/crazynala/axis-sub002/internal/logging"
)

var (
	outputFormat string
	withTrace    bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price [scenario.hcl]",
	Short: "Price every order in a scenario file",
	Long: `Parse an HCL scenario file and price each order line through the
pricing engine.

Examples:
  pricer price scenario.hcl
  pricer price --format json scenario.hcl
  pricer price --trace scenario.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	priceCmd.Flags().BoolVarP(&withTrace, "trace", "t", false, "attach a diagnostic trace to every order")
}

func runPrice(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("scenario file does not exist: %s", path)
	}

	cfg := config.Get()

	s, err := scenario.NewLoader().Load(path)
	if err != nil {
		return err
	}

	logging.Info("scenario loaded",
		zap.String("path", path),
		zap.Int("products", s.Products.Len()),
		zap.Int("orders", len(s.Orders)),
	)

	report := &output.Report{
		Scenario: path,
		Currency: cfg.Display.Currency,
	}

	for _, o := range s.Orders {
		in, err := s.PriceInputFor(o)
		if err != nil {
			return err
		}

		result := display.Result{PriceOutput: pricing.CalcPrice(in)}
		if withTrace || o.Debug || cfg.Display.Trace {
			result = display.GetProductDisplayPrice(displayInputFor(in))
		}

		report.Orders = append(report.Orders, output.PricedOrder{
			Product: o.Product,
			Qty:     in.Qty,
			Result:  result,
		})
	}

	format := output.Format(outputFormat)
	if format == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, report)
}

// displayInputFor lifts a strict engine input into the adapter shape so
// the trace path goes through the same normalization callers use
func displayInputFor(in types.PriceInput) display.Input {
	return display.Input{
		BaseCost:           in.BaseCost,
		Qty:                in.Qty,
		TaxRate:            in.TaxRate,
		PriceMultiplier:    in.PriceMultiplier,
		ManualSalePrice:    in.ManualSalePrice,
		ManualMargin:       in.ManualMargin,
		PricingModel:       in.PricingModel,
		BaselinePriceAtMoq: in.BaselinePriceAtMoq,
		TransferPercent:    in.TransferPercent,
		PricingSpecRanges:  in.PricingSpecRanges,
		CostTiers:          in.CostTiers,
		SaleTiers:          in.SaleTiers,
		Discounts:          in.Discounts,
		MarginDefaults:     in.MarginDefaults,
		Debug:              true,
	}
}
