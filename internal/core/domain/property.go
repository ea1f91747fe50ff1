package domain

import "time"

// Location is an address record, owned independently of any property.
type Location struct {
	ID            int64    `json:"id"`
	StreetAddress string   `json:"street_address"`
	PostalCode    string   `json:"postal_code"`
	City          string   `json:"city"`
	Municipality  *string  `json:"municipality"`
	County        *string  `json:"county"`
	Country       string   `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	// Geocell is derived from the coordinates on every write; empty when the
	// location has no coordinates.
	Geocell *string `json:"geocell"`
}

// LocationDraft is the payload for creating or replacing a location.
type LocationDraft struct {
	StreetAddress string
	PostalCode    string
	City          string
	Municipality  *string
	County        *string
	Country       string
	Latitude      *float64
	Longitude     *float64
}

// Property is a physical unit. It never owns a listing directly; listings
// reference it through the listing_properties link table.
type Property struct {
	ID                int64     `json:"id"`
	LocationID        int64     `json:"location_id"`
	PropertyTypeID    int64     `json:"property_type_id"`
	TenureID          int64     `json:"tenure_id"`
	YearBuilt         *int      `json:"year_built"`
	LivingAreaSqm     *float64  `json:"living_area_sqm"`
	AdditionalAreaSqm *float64  `json:"additional_area_sqm"`
	PlotAreaSqm       *float64  `json:"plot_area_sqm"`
	Rooms             *float64  `json:"rooms"`
	Floor             *int      `json:"floor"`
	MonthlyFee        *float64  `json:"monthly_fee"`
	EnergyClass       *string   `json:"energy_class"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PropertyDraft is the payload for creating a property. The referenced
// location, type and tenure must already exist.
type PropertyDraft struct {
	LocationID        int64
	PropertyTypeID    int64
	TenureID          int64
	YearBuilt         *int
	LivingAreaSqm     *float64
	AdditionalAreaSqm *float64
	PlotAreaSqm       *float64
	Rooms             *float64
	Floor             *int
	MonthlyFee        *float64
	EnergyClass       *string
}
