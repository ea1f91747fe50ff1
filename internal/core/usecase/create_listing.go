package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// CreateListingService creates a listing together with its property and
// agent links. The principal is carried for auditing; authorization already
// happened at the transport edge.
type CreateListingService struct {
	listingRepo port.ListingRepositoryPort
	events      port.EventPublisherPort
}

func NewCreateListingService(listingRepo port.ListingRepositoryPort, events port.EventPublisherPort) *CreateListingService {
	return &CreateListingService{listingRepo: listingRepo, events: events}
}

func (s *CreateListingService) Execute(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error) {
	if draft.Title == "" {
		return nil, domain.ValidationConflict("title is required", nil)
	}
	if draft.StatusID == 0 {
		return nil, domain.ValidationConflict("status_id is required", nil)
	}
	if draft.AgentID == 0 || draft.PropertyID == 0 {
		return nil, domain.ValidationConflict("agent_id and property_id are required", nil)
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"user_id": principal.UserID,
	})

	listing, err := s.listingRepo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := s.events.ListingCreated(ctx, listing.ID); err != nil {
		logger.Warn("failed to publish listing created event", port.Fields{
			"listing_id": listing.ID,
			"error":      err.Error(),
		})
	}

	logger.Info("listing created", port.Fields{"listing_id": listing.ID})
	return listing, nil
}
