package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type ListUsersUseCase interface {
	Execute(ctx context.Context, limit, offset *int) ([]domain.User, error)
}

type SavedListingsUseCase interface {
	List(ctx context.Context, principal domain.Principal) ([]domain.SavedListing, error)
	Save(ctx context.Context, principal domain.Principal, listingID int64) error
	Remove(ctx context.Context, principal domain.Principal, listingID int64) error
}

type SavedSearchesUseCase interface {
	List(ctx context.Context, principal domain.Principal) ([]domain.SavedSearch, error)
	Create(ctx context.Context, principal domain.Principal, draft domain.SavedSearchDraft) (*domain.SavedSearch, error)
	Update(ctx context.Context, principal domain.Principal, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error)
	Delete(ctx context.Context, principal domain.Principal, searchID int64) error
}
