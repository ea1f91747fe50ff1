package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// UserRepositoryPort covers user read models and user-owned artifacts.
// Every method scoped to a user receives the verified user id explicitly.
type UserRepositoryPort interface {
	ListUsers(ctx context.Context, limit, offset *int) ([]domain.User, error)

	ListSavedListings(ctx context.Context, userID int64) ([]domain.SavedListing, error)
	// SaveListing is idempotent per user+listing.
	SaveListing(ctx context.Context, userID, listingID int64) error
	RemoveSavedListing(ctx context.Context, userID, listingID int64) error

	ListSavedSearches(ctx context.Context, userID int64) ([]domain.SavedSearch, error)
	// CreateSavedSearch resolves every property type name and inserts the
	// association rows with the parent in one transaction; one unresolvable
	// name aborts everything, parent row included.
	CreateSavedSearch(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error)
	// UpdateSavedSearch patches scalars and, when a type set is supplied,
	// replaces the whole association set in the same transaction.
	UpdateSavedSearch(ctx context.Context, userID, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error)
	DeleteSavedSearch(ctx context.Context, userID, searchID int64) error
}
