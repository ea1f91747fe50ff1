package postgres_adapter

import (
	"strings"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildSearchQueryNoFilters(t *testing.T) {
	query, args := buildSearchQuery(domain.ListingFilters{})

	assert.NotContains(t, query, "\n\tWHERE ")
	assert.Contains(t, query, "ORDER BY l.id")
	assert.Empty(t, args)
}

func TestBuildSearchQueryFreeText(t *testing.T) {
	query, args := buildSearchQuery(domain.ListingFilters{FreeText: "Vasa"})

	assert.Contains(t, query, "(l.title ILIKE $1 OR loc.city ILIKE $1)")
	require.Len(t, args, 1)
	assert.Equal(t, "Vasa%", args[0])
}

func TestBuildSearchQueryCombinesWithAnd(t *testing.T) {
	filters := domain.ListingFilters{
		Status:   "active",
		City:     "Stockholm",
		PriceMin: floatPtr(1000000),
		PriceMax: floatPtr(5000000),
		RoomsMin: floatPtr(2),
	}

	query, args := buildSearchQuery(filters)

	assert.Contains(t, query, "ls.name = $1")
	assert.Contains(t, query, "loc.city ILIKE $2")
	assert.Contains(t, query, "l.list_price >= $3")
	assert.Contains(t, query, "l.list_price <= $4")
	assert.Contains(t, query, "p.rooms >= $5")

	whereClause := query[strings.Index(query, "\n\tWHERE "):strings.Index(query, "ORDER BY")]
	assert.Equal(t, 4, strings.Count(whereClause, " AND "))

	require.Len(t, args, 5)
	assert.Equal(t, "active", args[0])
	assert.Equal(t, "%Stockholm%", args[1])
	assert.Equal(t, 1000000.0, args[2])
	assert.Equal(t, 5000000.0, args[3])
	assert.Equal(t, 2.0, args[4])
}

func TestBuildSearchQueryPropertyTypeSet(t *testing.T) {
	filters := domain.ListingFilters{
		PropertyTypes: []string{"apartment", "house"},
	}

	query, args := buildSearchQuery(filters)

	assert.Contains(t, query, "pt.name = ANY($1)")
	require.Len(t, args, 1)
	assert.Equal(t, []string{"apartment", "house"}, args[0])
}

func TestBuildSearchQueryPagination(t *testing.T) {
	filters := domain.ListingFilters{
		Status: "active",
		Limit:  intPtr(2),
		Offset: intPtr(2),
	}

	query, args := buildSearchQuery(filters)

	assert.Contains(t, query, "LIMIT $2")
	assert.Contains(t, query, "OFFSET $3")
	// Ordering precedes paging so page boundaries stay stable.
	assert.Less(t, strings.Index(query, "ORDER BY l.id"), strings.Index(query, "LIMIT"))

	require.Len(t, args, 3)
	assert.Equal(t, "active", args[0])
	assert.Equal(t, 2, args[1])
	assert.Equal(t, 2, args[2])
}

func TestBuildSearchQueryOffsetOnly(t *testing.T) {
	query, args := buildSearchQuery(domain.ListingFilters{Offset: intPtr(4)})

	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "OFFSET $1")
	require.Len(t, args, 1)
	assert.Equal(t, 4, args[0])
}

func TestBuildSearchQueryBaseProjection(t *testing.T) {
	query, _ := buildSearchQuery(domain.ListingFilters{})

	assert.Contains(t, query, "JOIN listing_properties lp ON l.id = lp.listing_id")
	assert.Contains(t, query, "JOIN property_types pt ON p.property_type_id = pt.id")
	assert.Contains(t, query, "JOIN locations loc ON p.location_id = loc.id")
	assert.Contains(t, query, "lm.media_type_id = 1")
}
