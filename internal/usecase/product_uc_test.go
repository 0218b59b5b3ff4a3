package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhome/storefront/internal/catalog"
	"github.com/meridianhome/storefront/internal/domain"
	"github.com/meridianhome/storefront/internal/usecase"
)

// fixtureRepo is an in-test ProductRepo with a fixed record set.
type fixtureRepo struct {
	records []domain.Record
	landing domain.LandingContent
}

func (f *fixtureRepo) Products(ctx context.Context) ([]domain.Record, error) {
	return f.records, nil
}

func (f *fixtureRepo) ProductByID(ctx context.Context, id int) (*domain.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fixtureRepo) Landing(ctx context.Context) (*domain.LandingContent, error) {
	return &f.landing, nil
}

func newProductUC() *usecase.ProductUC {
	return &usecase.ProductUC{Products: &fixtureRepo{
		landing: domain.LandingContent{Hero: domain.Hero{Title: "Hello"}},
		records: []domain.Record{
			{ID: 1, Name: "Arc Desk Lamp", Category: "lighting", Price: 89, Stock: 64, Featured: true, Tags: []string{"lamp"}},
			{ID: 2, Name: "Loft Floor Lamp", Category: "lighting", Price: 149.5, Stock: 23, Tags: []string{"lamp"}},
			{ID: 3, Name: "Drift Charger", Category: "electronics", Price: 39.99, Stock: 8, Featured: true, Tags: []string{"wireless"}},
		},
	}}
}

func TestListAlwaysAddsStockStatus(t *testing.T) {
	list, err := newProductUC().List(context.Background(), catalog.Criteria{}, false)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "In Stock", list[0].StockStatus)
	assert.Equal(t, "Limited Stock", list[1].StockStatus)
	assert.Equal(t, "Low Stock", list[2].StockStatus)
	for _, p := range list {
		assert.Nil(t, p.PriceWithTax)
		assert.Empty(t, p.PromoLabel)
	}
}

func TestListWithTax(t *testing.T) {
	list, err := newProductUC().List(context.Background(), catalog.Criteria{}, true)
	require.NoError(t, err)
	require.Len(t, list, 3)

	require.NotNil(t, list[0].PriceWithTax)
	assert.Equal(t, 102.35, *list[0].PriceWithTax)
	assert.Equal(t, "In Stock", list[0].StockStatus)
}

func TestListAppliesCriteria(t *testing.T) {
	list, err := newProductUC().List(context.Background(), catalog.Criteria{
		Featured: "true",
		Query:    "lamp",
		Limit:    "2",
	}, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ID)
}

func TestGetEnhancesFeatured(t *testing.T) {
	p, err := newProductUC().Get(context.Background(), 1, true)
	require.NoError(t, err)

	require.NotNil(t, p.PriceWithTax)
	assert.Equal(t, 102.35, *p.PriceWithTax)
	assert.Equal(t, "⭐ Featured", p.PromoLabel)
	assert.Equal(t, "In Stock", p.StockStatus)
}

func TestGetNonFeaturedHasNoPromo(t *testing.T) {
	p, err := newProductUC().Get(context.Background(), 2, false)
	require.NoError(t, err)

	assert.Empty(t, p.PromoLabel)
	assert.Nil(t, p.PriceWithTax)
	assert.Equal(t, "Limited Stock", p.StockStatus)
}

func TestGetNotFound(t *testing.T) {
	_, err := newProductUC().Get(context.Background(), 999, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLandingPassThrough(t *testing.T) {
	landing, err := newProductUC().Landing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello", landing.Hero.Title)
}
