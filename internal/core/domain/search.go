package domain

// ListingFilters is the set of independently-optional search predicates.
// All supplied filters are combined with AND; the property-type set is a
// disjunction within that one filter. Nil/empty fields are not applied.
type ListingFilters struct {
	// FreeText matches when the listing title OR the location city starts
	// with the term, case-insensitively.
	FreeText string
	// Status is an exact match against the status catalog name.
	Status string
	// City is a case-insensitive substring match.
	City string

	PriceMin *float64
	PriceMax *float64
	RoomsMin *float64
	RoomsMax *float64

	// PropertyTypes matches listings whose type name is any member of the set.
	PropertyTypes []string

	// Limit and Offset apply after filtering and ascending-by-id ordering.
	Limit  *int
	Offset *int
}

// ListingSummary is one row of a search result.
type ListingSummary struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Status        string   `json:"status"`
	ListPrice     *float64 `json:"list_price"`
	PropertyType  string   `json:"property_type"`
	Rooms         *float64 `json:"rooms"`
	LivingAreaSqm *float64 `json:"living_area_sqm"`
	City          string   `json:"city"`
	Image         *string  `json:"image"`
}

// SearchResult pairs the returned items with their count. An empty result is
// valid, not an error.
type SearchResult struct {
	Count int              `json:"count"`
	Items []ListingSummary `json:"items"`
}
