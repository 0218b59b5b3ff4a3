package usecase

import (
	"context"

	"github.com/meridianhome/storefront/internal/catalog"
	"github.com/meridianhome/storefront/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

// List selects records by the criteria, assembles each one and applies
// the default read enhancement: stock status always, tax only when the
// caller asked for it. Tax runs before stock status so both orderings of
// price-reading steps stay consistent with Get.
func (uc *ProductUC) List(ctx context.Context, c catalog.Criteria, includeTax bool) ([]catalog.Product, error) {
	records, err := uc.Products.Products(ctx)
	if err != nil {
		return nil, err
	}

	selected := catalog.Filter(records, c)
	out := make([]catalog.Product, 0, len(selected))
	for _, rec := range selected {
		steps := make([]catalog.Decorator, 0, 2)
		if includeTax {
			steps = append(steps, catalog.WithTax(catalog.DefaultTaxRate))
		}
		steps = append(steps, catalog.WithStockStatus())
		out = append(out, catalog.Compose(catalog.FromRecord(rec), steps...))
	}
	return out, nil
}

// Get assembles a single record and enhances it with the fixed policy:
// tax if requested, promo if the record is featured, stock status always.
// Returns domain.ErrNotFound when the id has no record.
func (uc *ProductUC) Get(ctx context.Context, id int, includeTax bool) (*catalog.Product, error) {
	rec, err := uc.Products.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := catalog.Enhance(catalog.FromRecord(*rec), catalog.EnhanceOptions{
		IncludeTax:         includeTax,
		IncludePromo:       rec.Featured,
		IncludeStockStatus: true,
	})
	return &p, nil
}

func (uc *ProductUC) Landing(ctx context.Context) (*domain.LandingContent, error) {
	return uc.Products.Landing(ctx)
}
