package usecase

import (
	"context"

	"listing-service/internal/core/port"
)

// AutocompleteListingsService suggests listing titles for a typed prefix.
type AutocompleteListingsService struct {
	listingRepo port.ListingRepositoryPort
}

func NewAutocompleteListingsService(listingRepo port.ListingRepositoryPort) *AutocompleteListingsService {
	return &AutocompleteListingsService{listingRepo: listingRepo}
}

func (s *AutocompleteListingsService) Execute(ctx context.Context, term string) ([]string, error) {
	if term == "" {
		return []string{}, nil
	}
	return s.listingRepo.Autocomplete(ctx, term)
}
