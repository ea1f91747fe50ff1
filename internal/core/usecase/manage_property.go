package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetPropertyService struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewGetPropertyService(propertyRepo port.PropertyRepositoryPort) *GetPropertyService {
	return &GetPropertyService{propertyRepo: propertyRepo}
}

func (s *GetPropertyService) Execute(ctx context.Context, propertyID int64) (*domain.Property, error) {
	return s.propertyRepo.GetProperty(ctx, propertyID)
}

type CreatePropertyService struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewCreatePropertyService(propertyRepo port.PropertyRepositoryPort) *CreatePropertyService {
	return &CreatePropertyService{propertyRepo: propertyRepo}
}

func (s *CreatePropertyService) Execute(ctx context.Context, principal domain.Principal, draft domain.PropertyDraft) (*domain.Property, error) {
	if draft.LocationID == 0 || draft.PropertyTypeID == 0 || draft.TenureID == 0 {
		return nil, domain.ValidationConflict("location_id, property_type_id and tenure_id are required", nil)
	}

	property, err := s.propertyRepo.CreateProperty(ctx, draft)
	if err != nil {
		return nil, err
	}

	contextkeys.LoggerFromContext(ctx).Info("property created", port.Fields{
		"property_id": property.ID,
		"user_id":     principal.UserID,
	})
	return property, nil
}

type UpdatePropertyService struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewUpdatePropertyService(propertyRepo port.PropertyRepositoryPort) *UpdatePropertyService {
	return &UpdatePropertyService{propertyRepo: propertyRepo}
}

func (s *UpdatePropertyService) Execute(ctx context.Context, principal domain.Principal, propertyID int64, draft domain.PropertyDraft) (*domain.Property, error) {
	return s.propertyRepo.UpdateProperty(ctx, propertyID, draft)
}

// DeletePropertyService removes a property only when no listing references
// it; otherwise the repository reports a conflict and nothing changes.
type DeletePropertyService struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewDeletePropertyService(propertyRepo port.PropertyRepositoryPort) *DeletePropertyService {
	return &DeletePropertyService{propertyRepo: propertyRepo}
}

func (s *DeletePropertyService) Execute(ctx context.Context, principal domain.Principal, propertyID int64) error {
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}

	contextkeys.LoggerFromContext(ctx).Info("property deleted", port.Fields{
		"property_id": propertyID,
		"user_id":     principal.UserID,
	})
	return nil
}

type CreateLocationService struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewCreateLocationService(propertyRepo port.PropertyRepositoryPort) *CreateLocationService {
	return &CreateLocationService{propertyRepo: propertyRepo}
}

func (s *CreateLocationService) Execute(ctx context.Context, principal domain.Principal, draft domain.LocationDraft) (*domain.Location, error) {
	if draft.StreetAddress == "" || draft.PostalCode == "" || draft.City == "" {
		return nil, domain.ValidationConflict("street_address, postal_code and city are required", nil)
	}
	if err := validateCoordinates(draft.Latitude, draft.Longitude); err != nil {
		return nil, err
	}
	return s.propertyRepo.CreateLocation(ctx, draft)
}

type UpdateLocationService struct {
	propertyRepo port.PropertyRepositoryPort
}

func NewUpdateLocationService(propertyRepo port.PropertyRepositoryPort) *UpdateLocationService {
	return &UpdateLocationService{propertyRepo: propertyRepo}
}

func (s *UpdateLocationService) Execute(ctx context.Context, principal domain.Principal, locationID int64, draft domain.LocationDraft) (*domain.Location, error) {
	if err := validateCoordinates(draft.Latitude, draft.Longitude); err != nil {
		return nil, err
	}
	return s.propertyRepo.UpdateLocation(ctx, locationID, draft)
}

// validateCoordinates requires latitude and longitude as a pair within the
// WGS84 envelope.
func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return domain.ValidationConflict("latitude and longitude must be supplied together", nil)
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return domain.ValidationConflict("coordinates out of range", nil)
	}
	return nil
}
