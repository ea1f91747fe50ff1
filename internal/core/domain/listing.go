package domain

import "time"

// Listing is the marketing record for a property offered for sale.
// It always references exactly one property and one agent through link rows;
// the mutation coordinator keeps that invariant, not the schema.
type Listing struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StatusID    int64      `json:"status_id"`
	ListPrice   *float64   `json:"list_price"`
	PriceTypeID *int64     `json:"price_type_id"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ExternalRef *string    `json:"external_ref"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListingDraft is the payload for creating a listing. PropertyID and AgentID
// become link rows in the same transaction as the listing insert.
type ListingDraft struct {
	AgentID     int64
	PropertyID  int64
	Title       string
	Description *string
	StatusID    int64
	ListPrice   *float64
	PriceTypeID *int64
	PublishedAt *time.Time
	ExpiresAt   *time.Time
	ExternalRef *string
}

// ListingPatch updates listing scalars; nil fields keep their current value.
// A non-nil PropertyID or AgentID re-points the corresponding link row.
type ListingPatch struct {
	AgentID     *int64
	PropertyID  *int64
	Title       *string
	Description *string
	StatusID    *int64
	ListPrice   *float64
	PriceTypeID *int64
	PublishedAt *time.Time
	ExpiresAt   *time.Time
	ExternalRef *string
}

// ListingDetails is the full joined view for a single listing.
type ListingDetails struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	ListPrice     *float64   `json:"list_price"`
	PriceTypeID   *int64     `json:"price_type_id"`
	PublishedAt   *time.Time `json:"published_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
	ExternalRef   *string    `json:"external_ref"`
	PropertyType  string     `json:"property_type"`
	Tenure        string     `json:"tenure"`
	Rooms         *float64   `json:"rooms"`
	LivingAreaSqm *float64   `json:"living_area_sqm"`
	PlotAreaSqm   *float64   `json:"plot_area_sqm"`
	EnergyClass   *string    `json:"energy_class"`
	YearBuilt     *int       `json:"year_built"`
	StreetAddress string     `json:"street_address"`
	PostalCode    string     `json:"postal_code"`
	City          string     `json:"city"`
	Municipality  *string    `json:"municipality"`
	AgentName     string     `json:"agent_name"`
	AgentPhone    *string    `json:"agent_phone"`
	Agency        *string    `json:"agency"`
}

// ListingMedia is an ordered media item owned by a listing.
type ListingMedia struct {
	ID          int64     `json:"id"`
	ListingID   int64     `json:"listing_id"`
	MediaTypeID int64     `json:"media_type_id"`
	URL         string    `json:"url"`
	Caption     *string   `json:"caption"`
	Position    *int      `json:"position"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MediaDraft is the payload for attaching media to a listing.
type MediaDraft struct {
	MediaTypeID int64
	URL         string
	Caption     *string
	Position    *int
}

// OpenHouse is a scheduled viewing event owned by a listing.
type OpenHouse struct {
	ID        int64      `json:"id"`
	ListingID int64      `json:"listing_id"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	Type      string     `json:"type"`
	Note      *string    `json:"note"`
}

// OpenHouseDraft is the payload for scheduling an open house.
type OpenHouseDraft struct {
	StartsAt time.Time
	EndsAt   *time.Time
	TypeID   int64
	Note     *string
}
