// Package catalog derives the client-facing product representation from
// raw stored records: a staged builder, composable enhancement decorators
// and the query filter that selects which records enter the pipeline.
package catalog

import "github.com/meridianhome/storefront/internal/domain"

// Product is the canonical client-facing projection of a domain.Record,
// plus the optional fields added by decorators. Enhanced fields use
// pointers so that an unenhanced product serializes without them.
type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	Variants    []domain.Variant `json:"variants"`
	Stock       int              `json:"stock"`
	Featured    bool             `json:"featured"`
	ImageURL    string           `json:"imageUrl"`
	Rating      float64          `json:"rating"`
	Tags        []string         `json:"tags"`

	PriceWithTax    *float64 `json:"priceWithTax,omitempty"`
	TaxRate         *float64 `json:"taxRate,omitempty"`
	PromoLabel      string   `json:"promoLabel,omitempty"`
	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	DiscountAmount  *float64 `json:"discountAmount,omitempty"`
	StockStatus     string   `json:"stockStatus,omitempty"`
}

// BaseInfo carries the fields copied verbatim from a record.
type BaseInfo struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Category    string
}

// Metadata carries the defaultable presentation fields of a record.
type Metadata struct {
	Stock    int
	Featured bool
	ImageURL string
	Rating   float64
}

// Builder assembles a Product in named stages. Every stage returns the
// builder for chaining; Build finalizes and returns an independent value.
type Builder struct {
	p Product
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) BaseInfo(info BaseInfo) *Builder {
	b.p.ID = info.ID
	b.p.Name = info.Name
	b.p.Description = info.Description
	b.p.Price = info.Price
	b.p.Category = info.Category
	return b
}

// Variants sets the variant list; nil becomes an empty list.
func (b *Builder) Variants(variants []domain.Variant) *Builder {
	b.p.Variants = copyVariants(variants)
	return b
}

func (b *Builder) Metadata(meta Metadata) *Builder {
	b.p.Stock = meta.Stock
	b.p.Featured = meta.Featured
	b.p.ImageURL = meta.ImageURL
	b.p.Rating = meta.Rating
	return b
}

// Tags sets the tag list; nil becomes an empty list.
func (b *Builder) Tags(tags []string) *Builder {
	b.p.Tags = copyTags(tags)
	return b
}

// Build returns the assembled product. The result does not alias the
// builder or any slice passed in, so later mutation of the source record
// cannot affect it.
func (b *Builder) Build() Product {
	p := b.p
	if p.Variants == nil {
		p.Variants = []domain.Variant{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

// FromRecord is the convenience path: it runs every builder stage against
// the record and produces the same output as the stepwise chain.
func FromRecord(rec domain.Record) Product {
	return NewBuilder().
		BaseInfo(BaseInfo{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Price:       rec.Price,
			Category:    rec.Category,
		}).
		Variants(rec.Variants).
		Metadata(Metadata{
			Stock:    rec.Stock,
			Featured: rec.Featured,
			ImageURL: rec.ImageURL,
			Rating:   rec.Rating,
		}).
		Tags(rec.Tags).
		Build()
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func copyVariants(variants []domain.Variant) []domain.Variant {
	out := make([]domain.Variant, len(variants))
	for i, v := range variants {
		if v.Attributes != nil {
			attrs := make(map[string]string, len(v.Attributes))
			for k, val := range v.Attributes {
				attrs[k] = val
			}
			v.Attributes = attrs
		}
		out[i] = v
	}
	return out
}
