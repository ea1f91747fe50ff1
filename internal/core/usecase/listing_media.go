package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type ListListingMediaService struct {
	listingRepo port.ListingRepositoryPort
}

func NewListListingMediaService(listingRepo port.ListingRepositoryPort) *ListListingMediaService {
	return &ListListingMediaService{listingRepo: listingRepo}
}

func (s *ListListingMediaService) Execute(ctx context.Context, listingID int64, limit, offset *int) ([]domain.ListingMedia, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	return s.listingRepo.ListMedia(ctx, listingID, limit, offset)
}

type AddListingMediaService struct {
	listingRepo port.ListingRepositoryPort
}

func NewAddListingMediaService(listingRepo port.ListingRepositoryPort) *AddListingMediaService {
	return &AddListingMediaService{listingRepo: listingRepo}
}

func (s *AddListingMediaService) Execute(ctx context.Context, principal domain.Principal, listingID int64, draft domain.MediaDraft) (*domain.ListingMedia, error) {
	if draft.URL == "" {
		return nil, domain.ValidationConflict("url is required", nil)
	}
	if draft.MediaTypeID == 0 {
		return nil, domain.ValidationConflict("media_type_id is required", nil)
	}

	media, err := s.listingRepo.AddMedia(ctx, listingID, draft)
	if err != nil {
		return nil, err
	}

	contextkeys.LoggerFromContext(ctx).Info("listing media added", port.Fields{
		"listing_id": listingID,
		"media_id":   media.ID,
		"user_id":    principal.UserID,
	})
	return media, nil
}

type DeleteListingMediaService struct {
	listingRepo port.ListingRepositoryPort
}

func NewDeleteListingMediaService(listingRepo port.ListingRepositoryPort) *DeleteListingMediaService {
	return &DeleteListingMediaService{listingRepo: listingRepo}
}

func (s *DeleteListingMediaService) Execute(ctx context.Context, principal domain.Principal, mediaID int64) error {
	return s.listingRepo.DeleteMedia(ctx, mediaID)
}
