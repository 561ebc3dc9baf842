// Package scenario - HCL loader
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/crazynala/axis-sub002/core/types"
	"github.com/crazynala/axis-sub002/internal/errors"
)

// Loader parses scenario files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new scenario loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "product", LabelNames: []string{"code"}},
		{Type: "order", LabelNames: []string{"name"}},
	},
}

var productSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "base_cost"},
		{Name: "pricing_model"},
		{Name: "manual_sale_price"},
		{Name: "manual_margin"},
		{Name: "baseline_price_at_moq"},
		{Name: "transfer_percent"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cost_tier"},
		{Type: "sale_tier"},
		{Type: "discount"},
		{Type: "curve_range"},
		{Type: "margins"},
	},
}

var orderSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "product", Required: true},
		{Name: "qty"},
		{Name: "tax_rate"},
		{Name: "multiplier"},
		{Name: "debug"},
	},
}

// Load parses the scenario file at path
func (l *Loader) Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Scenario("failed to read scenario file", err)
	}
	return l.Parse(src, path)
}

// Parse parses scenario source. The filename is used for diagnostics
// only.
func (l *Loader) Parse(src []byte, filename string) (*Scenario, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Scenario("invalid scenario syntax", diags)
	}

	content, _, diags := file.Body.PartialContent(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Scenario("invalid scenario structure", diags)
	}

	s := NewScenario()
	for _, block := range content.Blocks {
		switch block.Type {
		case "product":
			product, err := parseProduct(block)
			if err != nil {
				return nil, err
			}
			s.Products.Set(product.Code, product)
		case "order":
			order, err := parseOrder(block)
			if err != nil {
				return nil, err
			}
			s.Orders = append(s.Orders, *order)
		}
	}

	for _, o := range s.Orders {
		if _, ok := s.Products.Get(o.Product); !ok {
			return nil, errors.NotFound("product", o.Product).
				WithContext("order", o.Name)
		}
	}

	return s, nil
}

func parseProduct(block *hcl.Block) (*Product, error) {
	content, _, diags := block.Body.PartialContent(productSchema)
	if diags.HasErrors() {
		return nil, errors.Scenario(
			fmt.Sprintf("invalid product %q", block.Labels[0]), diags)
	}

	product := &Product{Code: block.Labels[0]}

	if v, err := attrString(content.Attributes, "name"); err != nil {
		return nil, err
	} else if v != nil {
		product.Name = *v
	}
	if v, err := attrString(content.Attributes, "pricing_model"); err != nil {
		return nil, err
	} else if v != nil {
		product.PricingModel = types.PricingModel(*v)
	}

	numbers := map[string]func(*float64){
		"base_cost":             func(v *float64) { product.BaseCost = *v },
		"manual_sale_price":     func(v *float64) { product.ManualSalePrice = v },
		"manual_margin":         func(v *float64) { product.ManualMargin = v },
		"baseline_price_at_moq": func(v *float64) { product.BaselinePriceAtMoq = *v },
		"transfer_percent":      func(v *float64) { product.TransferPercent = *v },
	}
	for name, assign := range numbers {
		v, err := attrNumber(content.Attributes, name)
		if err != nil {
			return nil, err
		}
		if v != nil {
			assign(v)
		}
	}

	for _, sub := range content.Blocks {
		if err := parseProductBlock(product, sub); err != nil {
			return nil, err
		}
	}

	return product, nil
}

func parseProductBlock(product *Product, block *hcl.Block) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return errors.Scenario(
			fmt.Sprintf("invalid %s block in product %q", block.Type, product.Code), diags)
	}

	switch block.Type {
	case "cost_tier":
		minQty, err := attrNumber(attrs, "min_qty")
		if err != nil {
			return err
		}
		unitCost, err := attrNumber(attrs, "unit_cost")
		if err != nil {
			return err
		}
		tier := types.CostTier{}
		if minQty != nil {
			tier.MinQty = *minQty
		}
		if unitCost != nil {
			tier.UnitCost = *unitCost
		}
		product.CostTiers = append(product.CostTiers, tier)

	case "sale_tier":
		minQty, err := attrNumber(attrs, "min_qty")
		if err != nil {
			return err
		}
		unitPrice, err := attrNumber(attrs, "unit_price")
		if err != nil {
			return err
		}
		tier := types.SaleTier{}
		if minQty != nil {
			tier.MinQty = *minQty
		}
		if unitPrice != nil {
			tier.UnitPrice = *unitPrice
		}
		product.SaleTiers = append(product.SaleTiers, tier)

	case "discount":
		code, err := attrString(attrs, "code")
		if err != nil {
			return err
		}
		d := types.DiscountSpec{}
		if code != nil {
			d.Code = *code
		}
		if d.Pct, err = attrNumber(attrs, "pct"); err != nil {
			return err
		}
		if d.Amount, err = attrNumber(attrs, "amount"); err != nil {
			return err
		}
		product.Discounts = append(product.Discounts, d)

	case "curve_range":
		var r types.PricingSpecRange
		var err error
		if r.RangeFrom, err = attrNumber(attrs, "from"); err != nil {
			return err
		}
		if r.RangeTo, err = attrNumber(attrs, "to"); err != nil {
			return err
		}
		mult, err := attrNumber(attrs, "multiplier")
		if err != nil {
			return err
		}
		if mult != nil {
			r.Multiplier = *mult
		}
		product.Ranges = append(product.Ranges, r)

	case "margins":
		var err error
		d := &product.MarginDefaults
		if d.MarginOverride, err = attrNumber(attrs, "override"); err != nil {
			return err
		}
		if d.VendorDefaultMargin, err = attrNumber(attrs, "vendor"); err != nil {
			return err
		}
		if d.GlobalDefaultMargin, err = attrNumber(attrs, "global"); err != nil {
			return err
		}
	}

	return nil
}

func parseOrder(block *hcl.Block) (*Order, error) {
	content, _, diags := block.Body.PartialContent(orderSchema)
	if diags.HasErrors() {
		return nil, errors.Scenario(
			fmt.Sprintf("invalid order %q", block.Labels[0]), diags)
	}

	order := &Order{Name: block.Labels[0], Qty: 1, Multiplier: 1}

	product, err := attrString(content.Attributes, "product")
	if err != nil {
		return nil, err
	}
	if product == nil || *product == "" {
		return nil, errors.Input(fmt.Sprintf("order %q has no product", order.Name))
	}
	order.Product = *product

	if v, err := attrNumber(content.Attributes, "qty"); err != nil {
		return nil, err
	} else if v != nil {
		order.Qty = *v
	}
	if v, err := attrNumber(content.Attributes, "tax_rate"); err != nil {
		return nil, err
	} else if v != nil {
		order.TaxRate = *v
	}
	if v, err := attrNumber(content.Attributes, "multiplier"); err != nil {
		return nil, err
	} else if v != nil {
		order.Multiplier = *v
	}
	if v, err := attrBool(content.Attributes, "debug"); err != nil {
		return nil, err
	} else if v != nil {
		order.Debug = *v
	}

	return order, nil
}

// attrNumber evaluates an attribute as a number, nil when absent
func attrNumber(attrs hcl.Attributes, name string) (*float64, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Scenario(fmt.Sprintf("invalid value for %s", name), diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return nil, errors.Input(fmt.Sprintf("%s must be a number", name))
	}
	f, _ := val.AsBigFloat().Float64()
	return &f, nil
}

// attrString evaluates an attribute as a string, nil when absent
func attrString(attrs hcl.Attributes, name string) (*string, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Scenario(fmt.Sprintf("invalid value for %s", name), diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return nil, errors.Input(fmt.Sprintf("%s must be a string", name))
	}
	s := val.AsString()
	return &s, nil
}

// attrBool evaluates an attribute as a bool, nil when absent
func attrBool(attrs hcl.Attributes, name string) (*bool, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Scenario(fmt.Sprintf("invalid value for %s", name), diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Bool {
		return nil, errors.Input(fmt.Sprintf("%s must be a bool", name))
	}
	b := val.True()
	return &b, nil
}
