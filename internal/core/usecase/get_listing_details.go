package usecase

import (
	"context"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetListingDetailsService loads the full joined view of one listing.
type GetListingDetailsService struct {
	listingRepo port.ListingRepositoryPort
}

func NewGetListingDetailsService(listingRepo port.ListingRepositoryPort) *GetListingDetailsService {
	return &GetListingDetailsService{listingRepo: listingRepo}
}

func (s *GetListingDetailsService) Execute(ctx context.Context, listingID int64) (*domain.ListingDetails, error) {
	return s.listingRepo.GetDetails(ctx, listingID)
}
