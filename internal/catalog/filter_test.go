package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhome/storefront/internal/catalog"
	"github.com/meridianhome/storefront/internal/domain"
)

func fixtureRecords() []domain.Record {
	return []domain.Record{
		{ID: 1, Name: "Arc Desk Lamp", Description: "Warm light for late work", Category: "lighting", Featured: true, Tags: []string{"lamp", "Wireless"}},
		{ID: 2, Name: "Loft Floor Lamp", Description: "Linen shade", Category: "lighting", Featured: false, Tags: []string{"lamp"}},
		{ID: 3, Name: "Drift Charger", Description: "Cork-topped wireless pad", Category: "electronics", Featured: true, Tags: []string{"charging"}},
		{ID: 4, Name: "Haven Blanket", Description: "Reading lamp companion", Category: "textiles", Featured: true, Tags: []string{"wool"}},
	}
}

func ids(records []domain.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterNoCriteria(t *testing.T) {
	got := catalog.Filter(fixtureRecords(), catalog.Criteria{})
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestFilterFeatured(t *testing.T) {
	got := catalog.Filter(fixtureRecords(), catalog.Criteria{Featured: "true"})
	assert.Equal(t, []int{1, 3, 4}, ids(got))

	// Anything other than "true" coerces to false and selects the rest.
	for _, v := range []string{"false", "yes", "1", "TRUE"} {
		got = catalog.Filter(fixtureRecords(), catalog.Criteria{Featured: v})
		assert.Equal(t, []int{2}, ids(got), "featured=%q", v)
	}
}

func TestFilterSearch(t *testing.T) {
	// Tag match is case-insensitive in both directions.
	got := catalog.Filter(fixtureRecords(), catalog.Criteria{Query: "wireless"})
	assert.Equal(t, []int{1, 3}, ids(got))

	got = catalog.Filter(fixtureRecords(), catalog.Criteria{Query: "WIRELESS"})
	assert.Equal(t, []int{1, 3}, ids(got))

	// A record matched only through its description still qualifies.
	got = catalog.Filter(fixtureRecords(), catalog.Criteria{Query: "cork"})
	assert.Equal(t, []int{3}, ids(got))

	got = catalog.Filter(fixtureRecords(), catalog.Criteria{Query: "no-such-term"})
	assert.Empty(t, got)
}

func TestFilterLimit(t *testing.T) {
	got := catalog.Filter(fixtureRecords(), catalog.Criteria{Limit: "2"})
	assert.Equal(t, []int{1, 2}, ids(got))

	// Unparsable and non-positive limits mean "no limit".
	for _, v := range []string{"abc", "0", "-3", "2.5"} {
		got = catalog.Filter(fixtureRecords(), catalog.Criteria{Limit: v})
		assert.Equal(t, []int{1, 2, 3, 4}, ids(got), "limit=%q", v)
	}

	got = catalog.Filter(fixtureRecords(), catalog.Criteria{Limit: "99"})
	assert.Len(t, got, 4)
}

func TestFilterOrderOfApplication(t *testing.T) {
	// featured, then search, then limit; limiting first would return
	// different records.
	got := catalog.Filter(fixtureRecords(), catalog.Criteria{
		Featured: "true",
		Query:    "lamp",
		Limit:    "2",
	})
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 4}, ids(got))
	for _, rec := range got {
		assert.True(t, rec.Featured)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := fixtureRecords()
	_ = catalog.Filter(records, catalog.Criteria{Featured: "true", Limit: "1"})
	assert.Equal(t, []int{1, 2, 3, 4}, ids(records))
}

func TestParseBool(t *testing.T) {
	assert.True(t, catalog.ParseBool("true"))
	assert.False(t, catalog.ParseBool("TRUE"))
	assert.False(t, catalog.ParseBool("false"))
	assert.False(t, catalog.ParseBool(""))
}

func TestParseLimit(t *testing.T) {
	n, ok := catalog.ParseLimit("5")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	for _, v := range []string{"abc", "0", "-1", ""} {
		_, ok := catalog.ParseLimit(v)
		assert.False(t, ok, "limit=%q", v)
	}
}
