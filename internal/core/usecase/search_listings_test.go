package usecase

import (
	"context"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchListingsPassesFiltersThrough(t *testing.T) {
	var gotFilters domain.ListingFilters
	repo := &stubListingRepo{
		searchFn: func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
			gotFilters = filters
			return &domain.SearchResult{Count: 1, Items: []domain.ListingSummary{{ID: 3}}}, nil
		},
	}

	price := 2000000.0
	svc := NewSearchListingsService(repo)
	result, err := svc.Execute(context.Background(), domain.ListingFilters{
		Status:   "active",
		PriceMax: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "active", gotFilters.Status)
	require.NotNil(t, gotFilters.PriceMax)
	assert.Equal(t, price, *gotFilters.PriceMax)
}

func TestSearchListingsEmptyResultIsNotAnError(t *testing.T) {
	repo := &stubListingRepo{
		searchFn: func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
			return &domain.SearchResult{Count: 0, Items: []domain.ListingSummary{}}, nil
		},
	}

	svc := NewSearchListingsService(repo)
	result, err := svc.Execute(context.Background(), domain.ListingFilters{City: "Nowhere"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Items)
}

func TestSearchListingsRejectsNegativePaging(t *testing.T) {
	repo := &stubListingRepo{
		searchFn: func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		},
	}

	negative := -1
	svc := NewSearchListingsService(repo)

	_, err := svc.Execute(context.Background(), domain.ListingFilters{Limit: &negative})
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.Execute(context.Background(), domain.ListingFilters{Offset: &negative})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestAutocompleteEmptyTermShortCircuits(t *testing.T) {
	repo := &stubListingRepo{
		autocompleteFn: func(ctx context.Context, term string) ([]string, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		},
	}

	svc := NewAutocompleteListingsService(repo)
	titles, err := svc.Execute(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, titles)
}
