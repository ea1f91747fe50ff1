package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// SearchListingsService runs the filtered listing search. Filters are
// optional and independent; the repository composes whatever subset arrives.
type SearchListingsService struct {
	listingRepo port.ListingRepositoryPort
}

func NewSearchListingsService(listingRepo port.ListingRepositoryPort) *SearchListingsService {
	return &SearchListingsService{listingRepo: listingRepo}
}

func (s *SearchListingsService) Execute(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
	if err := validatePage(filters.Limit, filters.Offset); err != nil {
		return nil, err
	}

	result, err := s.listingRepo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	logger := contextkeys.LoggerFromContext(ctx)
	logger.Debug("listing search executed", port.Fields{"count": result.Count})
	return result, nil
}

// validatePage rejects negative paging values before they reach the query.
func validatePage(limit, offset *int) error {
	if limit != nil && *limit < 0 {
		return domain.ValidationConflict("limit must not be negative", nil)
	}
	if offset != nil && *offset < 0 {
		return domain.ValidationConflict("offset must not be negative", nil)
	}
	return nil
}
