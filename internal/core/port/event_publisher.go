package port

import "context"

// EventPublisherPort emits domain events after successful mutations.
// Publishing is best-effort: callers log failures and never roll back.
type EventPublisherPort interface {
	ListingCreated(ctx context.Context, listingID int64) error
	ListingDeleted(ctx context.Context, listingID int64) error
	SearchSaved(ctx context.Context, userID, searchID int64) error
	Close() error
}
