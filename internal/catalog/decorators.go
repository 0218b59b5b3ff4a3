package catalog

import "math"

const (
	// DefaultTaxRate is applied when no explicit rate is given.
	DefaultTaxRate = 0.15
	// DefaultPromoLabel is applied when no explicit label is given.
	DefaultPromoLabel = "Special Offer"
	// DefaultDiscountPercent is applied when no explicit percentage is given.
	DefaultDiscountPercent = 10.0

	featuredPromoLabel = "⭐ Featured"
)

// Decorator is a pure enhancement step: it returns a new product and
// never mutates its input. Steps read the current price field, so the
// order they run in is significant.
type Decorator func(Product) Product

// Compose applies the steps left to right, feeding each step's output to
// the next. With no steps the product is returned unchanged.
func Compose(p Product, steps ...Decorator) Product {
	for _, step := range steps {
		p = step(p)
	}
	return p
}

// WithTax adds priceWithTax computed on the product's current price.
// A non-positive rate falls back to DefaultTaxRate.
func WithTax(rate float64) Decorator {
	if rate <= 0 {
		rate = DefaultTaxRate
	}
	return func(p Product) Product {
		withTax := round2(p.Price * (1 + rate))
		taxRate := rate
		p.PriceWithTax = &withTax
		p.TaxRate = &taxRate
		return p
	}
}

// WithPromo attaches a promotional label. An empty label falls back to
// DefaultPromoLabel.
func WithPromo(label string) Decorator {
	if label == "" {
		label = DefaultPromoLabel
	}
	return func(p Product) Product {
		p.PromoLabel = label
		return p
	}
}

// WithDiscount rewrites price to the discounted value and records the
// original price and discount breakdown. A non-positive percentage falls
// back to DefaultDiscountPercent.
func WithDiscount(percent float64) Decorator {
	if percent <= 0 {
		percent = DefaultDiscountPercent
	}
	return func(p Product) Product {
		original := p.Price
		amount := round2(p.Price * percent / 100)
		pct := percent
		p.OriginalPrice = &original
		p.DiscountPercent = &pct
		p.DiscountAmount = &amount
		p.Price = round2(p.Price - amount)
		return p
	}
}

// WithStockStatus labels the product by its current stock level. Bands
// are exclusive; the first match wins.
func WithStockStatus() Decorator {
	return func(p Product) Product {
		switch {
		case p.Stock > 50:
			p.StockStatus = "In Stock"
		case p.Stock > 10:
			p.StockStatus = "Limited Stock"
		case p.Stock > 0:
			p.StockStatus = "Low Stock"
		default:
			p.StockStatus = "Out of Stock"
		}
		return p
	}
}

// EnhanceOptions names the decorators the fixed policy may apply.
// Discount of zero means no discount step.
type EnhanceOptions struct {
	IncludeTax         bool
	IncludePromo       bool
	IncludeStockStatus bool
	Discount           float64
}

// Enhance applies the policy steps in their fixed order: tax, promo (only
// for featured products), stock status, discount. Tax is deliberately
// computed on the pre-discount price.
func Enhance(p Product, opts EnhanceOptions) Product {
	return Compose(p, policySteps(opts, p.Featured)...)
}

// policySteps is the declared policy order, built as data so the
// ordering lives in exactly one place.
func policySteps(opts EnhanceOptions, featured bool) []Decorator {
	steps := make([]Decorator, 0, 4)
	if opts.IncludeTax {
		steps = append(steps, WithTax(DefaultTaxRate))
	}
	if opts.IncludePromo && featured {
		steps = append(steps, WithPromo(featuredPromoLabel))
	}
	if opts.IncludeStockStatus {
		steps = append(steps, WithStockStatus())
	}
	if opts.Discount != 0 {
		steps = append(steps, WithDiscount(opts.Discount))
	}
	return steps
}

// round2 rounds half away from zero to two decimals. Every derived
// monetary value passes through it before being stored.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
