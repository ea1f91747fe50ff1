package domain

import "time"

// Principal is the verified identity supplied by the authentication
// collaborator. The core trusts it and never re-derives identity.
type Principal struct {
	UserID int64
	Email  string
	Role   string
}

// User is an account holder (read model for the users listing).
type User struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     string  `json:"email"`
	Role      *string `json:"role"`
}

// SavedListing is a user's bookmark of a listing, unique per user+listing.
type SavedListing struct {
	ID           int64     `json:"id"`
	ListingID    int64     `json:"listing_id"`
	Title        string    `json:"title"`
	ListPrice    *float64  `json:"list_price"`
	Status       string    `json:"status"`
	City         string    `json:"city"`
	PropertyType string    `json:"property_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// SavedSearch is a user's stored query criteria plus a many-to-many
// association to property type names.
type SavedSearch struct {
	ID            int64     `json:"id"`
	Query         string    `json:"query"`
	Location      *string   `json:"location"`
	PriceMin      *float64  `json:"price_min"`
	PriceMax      *float64  `json:"price_max"`
	RoomsMin      *float64  `json:"rooms_min"`
	RoomsMax      *float64  `json:"rooms_max"`
	SendEmail     bool      `json:"send_email"`
	PropertyTypes []string  `json:"property_types"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavedSearchDraft creates a saved search. Every property type name must
// resolve against the catalog or the whole create is aborted.
type SavedSearchDraft struct {
	Query         string
	Location      *string
	PriceMin      *float64
	PriceMax      *float64
	RoomsMin      *float64
	RoomsMax      *float64
	PropertyTypes []string
	SendEmail     bool
}

// SavedSearchPatch updates scalars; a non-nil PropertyTypes fully replaces
// the association set (delete-all, then re-insert) in the same transaction.
type SavedSearchPatch struct {
	Query         *string
	Location      *string
	PriceMin      *float64
	PriceMax      *float64
	RoomsMin      *float64
	RoomsMax      *float64
	PropertyTypes *[]string
	SendEmail     *bool
}
