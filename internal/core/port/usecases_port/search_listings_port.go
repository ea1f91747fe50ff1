package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error)
}

type AutocompleteListingsUseCase interface {
	Execute(ctx context.Context, term string) ([]string, error)
}
