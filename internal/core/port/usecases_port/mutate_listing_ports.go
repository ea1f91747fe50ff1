package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type CreateListingUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error)
}

type UpdateListingUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, listingID int64, patch domain.ListingPatch) (*domain.Listing, error)
}

type DeleteListingUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, listingID int64) error
}
