package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type ListListingMediaUseCase interface {
	Execute(ctx context.Context, listingID int64, limit, offset *int) ([]domain.ListingMedia, error)
}

type AddListingMediaUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, listingID int64, draft domain.MediaDraft) (*domain.ListingMedia, error)
}

type DeleteListingMediaUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, mediaID int64) error
}

type ListOpenHousesUseCase interface {
	Execute(ctx context.Context, listingID int64, limit, offset *int) ([]domain.OpenHouse, error)
}

type AddOpenHouseUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, listingID int64, draft domain.OpenHouseDraft) (*domain.OpenHouse, error)
}

type DeleteOpenHouseUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, openHouseID int64) error
}
