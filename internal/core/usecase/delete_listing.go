package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// DeleteListingService tears down a listing and everything it owns. The
// linked property stays; removing it is a separate, guarded operation.
type DeleteListingService struct {
	listingRepo port.ListingRepositoryPort
	events      port.EventPublisherPort
}

func NewDeleteListingService(listingRepo port.ListingRepositoryPort, events port.EventPublisherPort) *DeleteListingService {
	return &DeleteListingService{listingRepo: listingRepo, events: events}
}

func (s *DeleteListingService) Execute(ctx context.Context, principal domain.Principal, listingID int64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"listing_id": listingID,
		"user_id":    principal.UserID,
	})

	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		return err
	}

	if err := s.events.ListingDeleted(ctx, listingID); err != nil {
		logger.Warn("failed to publish listing deleted event", port.Fields{
			"error": err.Error(),
		})
	}

	logger.Info("listing deleted", nil)
	return nil
}
