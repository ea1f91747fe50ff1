package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// SavedListingsService manages a user's bookmarked listings. The user id
// always comes from the verified principal, never from the request body.
type SavedListingsService struct {
	userRepo port.UserRepositoryPort
}

func NewSavedListingsService(userRepo port.UserRepositoryPort) *SavedListingsService {
	return &SavedListingsService{userRepo: userRepo}
}

func (s *SavedListingsService) List(ctx context.Context, principal domain.Principal) ([]domain.SavedListing, error) {
	return s.userRepo.ListSavedListings(ctx, principal.UserID)
}

func (s *SavedListingsService) Save(ctx context.Context, principal domain.Principal, listingID int64) error {
	if err := s.userRepo.SaveListing(ctx, principal.UserID, listingID); err != nil {
		return err
	}

	contextkeys.LoggerFromContext(ctx).Debug("listing saved", port.Fields{
		"user_id":    principal.UserID,
		"listing_id": listingID,
	})
	return nil
}

func (s *SavedListingsService) Remove(ctx context.Context, principal domain.Principal, listingID int64) error {
	return s.userRepo.RemoveSavedListing(ctx, principal.UserID, listingID)
}
