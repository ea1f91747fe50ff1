package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type ListOpenHousesService struct {
	listingRepo port.ListingRepositoryPort
}

func NewListOpenHousesService(listingRepo port.ListingRepositoryPort) *ListOpenHousesService {
	return &ListOpenHousesService{listingRepo: listingRepo}
}

func (s *ListOpenHousesService) Execute(ctx context.Context, listingID int64, limit, offset *int) ([]domain.OpenHouse, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	return s.listingRepo.ListOpenHouses(ctx, listingID, limit, offset)
}

type AddOpenHouseService struct {
	listingRepo port.ListingRepositoryPort
}

func NewAddOpenHouseService(listingRepo port.ListingRepositoryPort) *AddOpenHouseService {
	return &AddOpenHouseService{listingRepo: listingRepo}
}

func (s *AddOpenHouseService) Execute(ctx context.Context, principal domain.Principal, listingID int64, draft domain.OpenHouseDraft) (*domain.OpenHouse, error) {
	if draft.StartsAt.IsZero() {
		return nil, domain.ValidationConflict("starts_at is required", nil)
	}
	if draft.TypeID == 0 {
		return nil, domain.ValidationConflict("open_house_type_id is required", nil)
	}
	if draft.EndsAt != nil && draft.EndsAt.Before(draft.StartsAt) {
		return nil, domain.ValidationConflict("ends_at must not precede starts_at", nil)
	}

	openHouse, err := s.listingRepo.AddOpenHouse(ctx, listingID, draft)
	if err != nil {
		return nil, err
	}

	contextkeys.LoggerFromContext(ctx).Info("open house scheduled", port.Fields{
		"listing_id":    listingID,
		"open_house_id": openHouse.ID,
		"user_id":       principal.UserID,
	})
	return openHouse, nil
}

type DeleteOpenHouseService struct {
	listingRepo port.ListingRepositoryPort
}

func NewDeleteOpenHouseService(listingRepo port.ListingRepositoryPort) *DeleteOpenHouseService {
	return &DeleteOpenHouseService{listingRepo: listingRepo}
}

func (s *DeleteOpenHouseService) Execute(ctx context.Context, principal domain.Principal, openHouseID int64) error {
	return s.listingRepo.DeleteOpenHouse(ctx, openHouseID)
}
