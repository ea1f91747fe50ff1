package rest

import (
	"time"

	"listing-service/internal/core/domain"
)

type listingCreateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StatusID    int64      `json:"status_id"`
	AgentID     int64      `json:"agent_id"`
	PropertyID  int64      `json:"property_id"`
	ListPrice   *float64   `json:"list_price"`
	PriceTypeID *int64     `json:"price_type_id"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ExternalRef *string    `json:"external_ref"`
}

func (req listingCreateRequest) toDraft() domain.ListingDraft {
	return domain.ListingDraft{
		AgentID:     req.AgentID,
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: req.Description,
		StatusID:    req.StatusID,
		ListPrice:   req.ListPrice,
		PriceTypeID: req.PriceTypeID,
		PublishedAt: req.PublishedAt,
		ExpiresAt:   req.ExpiresAt,
		ExternalRef: req.ExternalRef,
	}
}

type listingUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StatusID    *int64     `json:"status_id"`
	AgentID     *int64     `json:"agent_id"`
	PropertyID  *int64     `json:"property_id"`
	ListPrice   *float64   `json:"list_price"`
	PriceTypeID *int64     `json:"price_type_id"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ExternalRef *string    `json:"external_ref"`
}

func (req listingUpdateRequest) toPatch() domain.ListingPatch {
	return domain.ListingPatch{
		AgentID:     req.AgentID,
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: req.Description,
		StatusID:    req.StatusID,
		ListPrice:   req.ListPrice,
		PriceTypeID: req.PriceTypeID,
		PublishedAt: req.PublishedAt,
		ExpiresAt:   req.ExpiresAt,
		ExternalRef: req.ExternalRef,
	}
}

type mediaCreateRequest struct {
	MediaTypeID int64   `json:"media_type_id"`
	URL         string  `json:"url"`
	Caption     *string `json:"caption"`
	Position    *int    `json:"position"`
}

func (req mediaCreateRequest) toDraft() domain.MediaDraft {
	return domain.MediaDraft{
		MediaTypeID: req.MediaTypeID,
		URL:         req.URL,
		Caption:     req.Caption,
		Position:    req.Position,
	}
}

type openHouseCreateRequest struct {
	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	TypeID   int64      `json:"open_house_type_id"`
	Note     *string    `json:"note"`
}

func (req openHouseCreateRequest) toDraft() domain.OpenHouseDraft {
	return domain.OpenHouseDraft{
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		TypeID:   req.TypeID,
		Note:     req.Note,
	}
}

type propertyRequest struct {
	LocationID        int64    `json:"location_id"`
	PropertyTypeID    int64    `json:"property_type_id"`
	TenureID          int64    `json:"tenure_id"`
	YearBuilt         *int     `json:"year_built"`
	LivingAreaSqm     *float64 `json:"living_area_sqm"`
	AdditionalAreaSqm *float64 `json:"additional_area_sqm"`
	PlotAreaSqm       *float64 `json:"plot_area_sqm"`
	Rooms             *float64 `json:"rooms"`
	Floor             *int     `json:"floor"`
	MonthlyFee        *float64 `json:"monthly_fee"`
	EnergyClass       *string  `json:"energy_class"`
}

func (req propertyRequest) toDraft() domain.PropertyDraft {
	return domain.PropertyDraft{
		LocationID:        req.LocationID,
		PropertyTypeID:    req.PropertyTypeID,
		TenureID:          req.TenureID,
		YearBuilt:         req.YearBuilt,
		LivingAreaSqm:     req.LivingAreaSqm,
		AdditionalAreaSqm: req.AdditionalAreaSqm,
		PlotAreaSqm:       req.PlotAreaSqm,
		Rooms:             req.Rooms,
		Floor:             req.Floor,
		MonthlyFee:        req.MonthlyFee,
		EnergyClass:       req.EnergyClass,
	}
}

type locationRequest struct {
	StreetAddress string   `json:"street_address"`
	PostalCode    string   `json:"postal_code"`
	City          string   `json:"city"`
	Municipality  *string  `json:"municipality"`
	County        *string  `json:"county"`
	Country       string   `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

func (req locationRequest) toDraft() domain.LocationDraft {
	return domain.LocationDraft{
		StreetAddress: req.StreetAddress,
		PostalCode:    req.PostalCode,
		City:          req.City,
		Municipality:  req.Municipality,
		County:        req.County,
		Country:       req.Country,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
}

type agencyRequest struct {
	Name      *string `json:"name"`
	OrgNumber *string `json:"org_number"`
	Phone     *string `json:"phone"`
	Website   *string `json:"website"`
}

func (req agencyRequest) toDraft() domain.AgencyDraft {
	return domain.AgencyDraft{
		Name:      req.Name,
		OrgNumber: req.OrgNumber,
		Phone:     req.Phone,
		Website:   req.Website,
	}
}

type agentCreateRequest struct {
	UserID        int64   `json:"user_id"`
	AgencyID      *int64  `json:"agency_id"`
	Title         *string `json:"title"`
	LicenseNumber *string `json:"license_number"`
	Bio           *string `json:"bio"`
}

func (req agentCreateRequest) toDraft() domain.AgentDraft {
	return domain.AgentDraft{
		UserID:        req.UserID,
		AgencyID:      req.AgencyID,
		Title:         req.Title,
		LicenseNumber: req.LicenseNumber,
		Bio:           req.Bio,
	}
}

type agentUpdateRequest struct {
	UserID        *int64  `json:"user_id"`
	AgencyID      *int64  `json:"agency_id"`
	Title         *string `json:"title"`
	LicenseNumber *string `json:"license_number"`
	Bio           *string `json:"bio"`
}

func (req agentUpdateRequest) toPatch() domain.AgentPatch {
	return domain.AgentPatch{
		UserID:        req.UserID,
		AgencyID:      req.AgencyID,
		Title:         req.Title,
		LicenseNumber: req.LicenseNumber,
		Bio:           req.Bio,
	}
}

type saveListingRequest struct {
	ListingID int64 `json:"listing_id"`
}

type savedSearchCreateRequest struct {
	Query         string   `json:"query"`
	Location      *string  `json:"location"`
	PriceMin      *float64 `json:"price_min"`
	PriceMax      *float64 `json:"price_max"`
	RoomsMin      *float64 `json:"rooms_min"`
	RoomsMax      *float64 `json:"rooms_max"`
	PropertyTypes []string `json:"property_types"`
	SendEmail     bool     `json:"send_email"`
}

func (req savedSearchCreateRequest) toDraft() domain.SavedSearchDraft {
	return domain.SavedSearchDraft{
		Query:         req.Query,
		Location:      req.Location,
		PriceMin:      req.PriceMin,
		PriceMax:      req.PriceMax,
		RoomsMin:      req.RoomsMin,
		RoomsMax:      req.RoomsMax,
		PropertyTypes: req.PropertyTypes,
		SendEmail:     req.SendEmail,
	}
}

type savedSearchUpdateRequest struct {
	Query         *string   `json:"query"`
	Location      *string   `json:"location"`
	PriceMin      *float64  `json:"price_min"`
	PriceMax      *float64  `json:"price_max"`
	RoomsMin      *float64  `json:"rooms_min"`
	RoomsMax      *float64  `json:"rooms_max"`
	PropertyTypes *[]string `json:"property_types"`
	SendEmail     *bool     `json:"send_email"`
}

func (req savedSearchUpdateRequest) toPatch() domain.SavedSearchPatch {
	return domain.SavedSearchPatch{
		Query:         req.Query,
		Location:      req.Location,
		PriceMin:      req.PriceMin,
		PriceMax:      req.PriceMax,
		RoomsMin:      req.RoomsMin,
		RoomsMax:      req.RoomsMax,
		PropertyTypes: req.PropertyTypes,
		SendEmail:     req.SendEmail,
	}
}
