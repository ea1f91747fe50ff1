package constants

// Messaging topology for domain events.
const (
	ListingEventsExchange     = "listing_events"
	ListingEventsExchangeType = "topic"

	ListingCreatedRoutingKey = "listing.created"
	ListingDeletedRoutingKey = "listing.deleted"
	SearchSavedRoutingKey    = "search.saved"
)
