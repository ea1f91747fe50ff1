package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// PropertyRepositoryPort covers properties and their locations.
type PropertyRepositoryPort interface {
	GetProperty(ctx context.Context, propertyID int64) (*domain.Property, error)
	CreateProperty(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error)
	UpdateProperty(ctx context.Context, propertyID int64, draft domain.PropertyDraft) (*domain.Property, error)
	// DeleteProperty refuses with a conflict while any listing link row
	// still references the property, touching nothing.
	DeleteProperty(ctx context.Context, propertyID int64) error

	CreateLocation(ctx context.Context, draft domain.LocationDraft) (*domain.Location, error)
	UpdateLocation(ctx context.Context, locationID int64, draft domain.LocationDraft) (*domain.Location, error)
}
