package postgres_adapter

import (
	"context"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/mmcloughlin/geohash"
)

// geocellPrecision gives cells of roughly 5x5 meters, enough to group
// properties on the same plot.
const geocellPrecision = 9

// PropertyRepository implements property and location persistence.
type PropertyRepository struct {
	pool   DB
	logger port.LoggerPort
}

func NewPropertyRepository(pool DB, logger port.LoggerPort) *PropertyRepository {
	return &PropertyRepository{
		pool:   pool,
		logger: logger.WithFields(port.Fields{"component": "property_repository"}),
	}
}

const propertyColumns = `id, location_id, property_type_id, tenure_id, year_built,
	       living_area_sqm, additional_area_sqm, plot_area_sqm, rooms, floor,
	       monthly_fee, energy_class, created_at, updated_at`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID,
		&p.LocationID,
		&p.PropertyTypeID,
		&p.TenureID,
		&p.YearBuilt,
		&p.LivingAreaSqm,
		&p.AdditionalAreaSqm,
		&p.PlotAreaSqm,
		&p.Rooms,
		&p.Floor,
		&p.MonthlyFee,
		&p.EnergyClass,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) GetProperty(ctx context.Context, propertyID int64) (*domain.Property, error) {
	property, err := scanProperty(r.pool.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, propertyID))
	if err != nil {
		return nil, translateError(err, "property")
	}
	return property, nil
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	const query = `
		INSERT INTO properties (location_id, property_type_id, tenure_id, year_built,
		                        living_area_sqm, additional_area_sqm, plot_area_sqm,
		                        rooms, floor, monthly_fee, energy_class)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + propertyColumns

	property, err := scanProperty(r.pool.QueryRow(ctx, query,
		draft.LocationID,
		draft.PropertyTypeID,
		draft.TenureID,
		draft.YearBuilt,
		draft.LivingAreaSqm,
		draft.AdditionalAreaSqm,
		draft.PlotAreaSqm,
		draft.Rooms,
		draft.Floor,
		draft.MonthlyFee,
		draft.EnergyClass,
	))
	if err != nil {
		return nil, translateError(err, "property")
	}
	return property, nil
}

func (r *PropertyRepository) UpdateProperty(ctx context.Context, propertyID int64, draft domain.PropertyDraft) (*domain.Property, error) {
	const query = `
		UPDATE properties
		SET location_id         = COALESCE($1, location_id),
		    property_type_id    = COALESCE($2, property_type_id),
		    tenure_id           = COALESCE($3, tenure_id),
		    year_built          = COALESCE($4, year_built),
		    living_area_sqm     = COALESCE($5, living_area_sqm),
		    additional_area_sqm = COALESCE($6, additional_area_sqm),
		    plot_area_sqm       = COALESCE($7, plot_area_sqm),
		    rooms               = COALESCE($8, rooms),
		    floor               = COALESCE($9, floor),
		    monthly_fee         = COALESCE($10, monthly_fee),
		    energy_class        = COALESCE($11, energy_class),
		    updated_at          = NOW()
		WHERE id = $12
		RETURNING ` + propertyColumns

	property, err := scanProperty(r.pool.QueryRow(ctx, query,
		nullableID(draft.LocationID),
		nullableID(draft.PropertyTypeID),
		nullableID(draft.TenureID),
		draft.YearBuilt,
		draft.LivingAreaSqm,
		draft.AdditionalAreaSqm,
		draft.PlotAreaSqm,
		draft.Rooms,
		draft.Floor,
		draft.MonthlyFee,
		draft.EnergyClass,
		propertyID,
	))
	if err != nil {
		return nil, translateError(err, "property")
	}
	return property, nil
}

// nullableID turns the zero id into NULL so COALESCE keeps the current value.
func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

// DeleteProperty checks the listing link count and the delete inside one
// transaction; a referenced property is refused with a conflict and nothing
// is touched.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, propertyID int64) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var refs int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM listing_properties WHERE property_id = $1`,
			propertyID).Scan(&refs); err != nil {
			return err
		}
		if refs > 0 {
			return domain.Conflict("property", "property is referenced by existing listings")
		}

		var deletedID int64
		return tx.QueryRow(ctx,
			`DELETE FROM properties WHERE id = $1 RETURNING id`, propertyID).Scan(&deletedID)
	})
	if err != nil {
		return translateError(err, "property")
	}

	r.logger.Debug("property deleted", port.Fields{"property_id": propertyID})
	return nil
}

const locationColumns = `id, street_address, postal_code, city, municipality, county,
	       country, latitude, longitude, geocell`

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	err := row.Scan(
		&l.ID,
		&l.StreetAddress,
		&l.PostalCode,
		&l.City,
		&l.Municipality,
		&l.County,
		&l.Country,
		&l.Latitude,
		&l.Longitude,
		&l.Geocell,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// geocellFor derives the geocell from coordinates; nil when either is absent.
func geocellFor(lat, lng *float64) *string {
	if lat == nil || lng == nil {
		return nil
	}
	cell := geohash.EncodeWithPrecision(*lat, *lng, geocellPrecision)
	return &cell
}

func (r *PropertyRepository) CreateLocation(ctx context.Context, draft domain.LocationDraft) (*domain.Location, error) {
	const query = `
		INSERT INTO locations (street_address, postal_code, city, municipality, county,
		                       country, latitude, longitude, geocell)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + locationColumns

	location, err := scanLocation(r.pool.QueryRow(ctx, query,
		draft.StreetAddress,
		draft.PostalCode,
		draft.City,
		draft.Municipality,
		draft.County,
		draft.Country,
		draft.Latitude,
		draft.Longitude,
		geocellFor(draft.Latitude, draft.Longitude),
	))
	if err != nil {
		return nil, translateError(err, "location")
	}
	return location, nil
}

func (r *PropertyRepository) UpdateLocation(ctx context.Context, locationID int64, draft domain.LocationDraft) (*domain.Location, error) {
	const query = `
		UPDATE locations
		SET street_address = COALESCE($1, street_address),
		    postal_code    = COALESCE($2, postal_code),
		    city           = COALESCE($3, city),
		    municipality   = COALESCE($4, municipality),
		    county         = COALESCE($5, county),
		    country        = COALESCE($6, country),
		    latitude       = COALESCE($7, latitude),
		    longitude      = COALESCE($8, longitude),
		    geocell        = COALESCE($9, geocell)
		WHERE id = $10
		RETURNING ` + locationColumns

	location, err := scanLocation(r.pool.QueryRow(ctx, query,
		nullableString(draft.StreetAddress),
		nullableString(draft.PostalCode),
		nullableString(draft.City),
		draft.Municipality,
		draft.County,
		nullableString(draft.Country),
		draft.Latitude,
		draft.Longitude,
		geocellFor(draft.Latitude, draft.Longitude),
	))
	if err != nil {
		return nil, translateError(err, "location")
	}
	return location, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
