package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// UpdateListingService patches listing scalars and optionally re-points the
// property or agent link in the same transaction.
type UpdateListingService struct {
	listingRepo port.ListingRepositoryPort
}

func NewUpdateListingService(listingRepo port.ListingRepositoryPort) *UpdateListingService {
	return &UpdateListingService{listingRepo: listingRepo}
}

func (s *UpdateListingService) Execute(ctx context.Context, principal domain.Principal, listingID int64, patch domain.ListingPatch) (*domain.Listing, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, domain.ValidationConflict("title must not be empty", nil)
	}

	listing, err := s.listingRepo.Update(ctx, listingID, patch)
	if err != nil {
		return nil, err
	}

	contextkeys.LoggerFromContext(ctx).Info("listing updated", port.Fields{
		"listing_id": listingID,
		"user_id":    principal.UserID,
	})
	return listing, nil
}
