package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetPropertyUseCase interface {
	Execute(ctx context.Context, propertyID int64) (*domain.Property, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, draft domain.PropertyDraft) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, propertyID int64, draft domain.PropertyDraft) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, propertyID int64) error
}

type CreateLocationUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, draft domain.LocationDraft) (*domain.Location, error)
}

type UpdateLocationUseCase interface {
	Execute(ctx context.Context, principal domain.Principal, locationID int64, draft domain.LocationDraft) (*domain.Location, error)
}
