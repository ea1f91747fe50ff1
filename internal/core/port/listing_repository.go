package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// ListingRepositoryPort covers listing search and every listing-scoped
// mutation. Multi-statement writes are atomic: either all statements commit
// or none do.
type ListingRepositoryPort interface {
	// Search returns listings matching every supplied filter, ordered
	// ascending by id. No filters means the full ordered collection.
	Search(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error)
	// Autocomplete returns distinct titles where the title or city starts
	// with the term, capped at ten.
	Autocomplete(ctx context.Context, term string) ([]string, error)
	GetDetails(ctx context.Context, listingID int64) (*domain.ListingDetails, error)

	// Create inserts the listing row plus its property and agent link rows
	// in one transaction. An invalid reference rolls the whole insert back.
	Create(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error)
	// Update patches listing scalars and, when the patch carries a property
	// or agent id, re-points the link row in the same transaction.
	Update(ctx context.Context, listingID int64, patch domain.ListingPatch) (*domain.Listing, error)
	// Delete tears down media, open houses, saved listings and both link
	// rows before the listing row, all in one transaction. The linked
	// property is never deleted.
	Delete(ctx context.Context, listingID int64) error

	ListMedia(ctx context.Context, listingID int64, limit, offset *int) ([]domain.ListingMedia, error)
	AddMedia(ctx context.Context, listingID int64, draft domain.MediaDraft) (*domain.ListingMedia, error)
	DeleteMedia(ctx context.Context, mediaID int64) error

	ListOpenHouses(ctx context.Context, listingID int64, limit, offset *int) ([]domain.OpenHouse, error)
	AddOpenHouse(ctx context.Context, listingID int64, draft domain.OpenHouseDraft) (*domain.OpenHouse, error)
	DeleteOpenHouse(ctx context.Context, openHouseID int64) error
}
