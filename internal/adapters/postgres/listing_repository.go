package postgres_adapter

import (
	"context"
	"fmt"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
)

// ListingRepository implements listing search and all listing-scoped writes
// on top of a pgx connection pool.
type ListingRepository struct {
	pool   DB
	logger port.LoggerPort
}

func NewListingRepository(pool DB, logger port.LoggerPort) *ListingRepository {
	return &ListingRepository{
		pool:   pool,
		logger: logger.WithFields(port.Fields{"component": "listing_repository"}),
	}
}

func (r *ListingRepository) Search(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
	query, args := buildSearchQuery(filters)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listing")
	}
	defer rows.Close()

	items := make([]domain.ListingSummary, 0)
	for rows.Next() {
		var item domain.ListingSummary
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Status,
			&item.ListPrice,
			&item.PropertyType,
			&item.Rooms,
			&item.LivingAreaSqm,
			&item.City,
			&item.Image,
		); err != nil {
			return nil, translateError(err, "listing")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "listing")
	}

	return &domain.SearchResult{Count: len(items), Items: items}, nil
}

func (r *ListingRepository) Autocomplete(ctx context.Context, term string) ([]string, error) {
	const query = `
		SELECT DISTINCT l.title
		FROM listings l
		JOIN listing_properties lp ON l.id = lp.listing_id
		JOIN properties p ON lp.property_id = p.id
		JOIN locations loc ON p.location_id = loc.id
		WHERE l.title ILIKE $1 OR loc.city ILIKE $1
		ORDER BY l.title
		LIMIT 10`

	rows, err := r.pool.Query(ctx, query, term+"%")
	if err != nil {
		return nil, translateError(err, "listing")
	}
	defer rows.Close()

	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, translateError(err, "listing")
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

func (r *ListingRepository) GetDetails(ctx context.Context, listingID int64) (*domain.ListingDetails, error) {
	const query = `
		SELECT l.id,
		       l.title,
		       l.description,
		       ls.name AS status,
		       l.list_price,
		       l.price_type_id,
		       l.published_at,
		       l.expires_at,
		       l.external_ref,
		       pt.name AS property_type,
		       t.name AS tenure,
		       p.rooms,
		       p.living_area_sqm,
		       p.plot_area_sqm,
		       p.energy_class,
		       p.year_built,
		       loc.street_address,
		       loc.postal_code,
		       loc.city,
		       loc.municipality,
		       u.first_name || ' ' || u.last_name AS agent_name,
		       u.phone AS agent_phone,
		       ag.name AS agency
		FROM listings l
		JOIN listing_status ls ON l.status_id = ls.id
		JOIN listing_properties lp ON l.id = lp.listing_id
		JOIN properties p ON lp.property_id = p.id
		JOIN property_types pt ON p.property_type_id = pt.id
		JOIN tenures t ON p.tenure_id = t.id
		JOIN locations loc ON p.location_id = loc.id
		JOIN listing_agents la ON l.id = la.listing_id
		JOIN agents a ON la.agent_id = a.id
		JOIN users u ON a.user_id = u.id
		LEFT JOIN agent_agencies aa ON a.id = aa.agent_id
		LEFT JOIN agencies ag ON aa.agency_id = ag.id
		WHERE l.id = $1`

	var d domain.ListingDetails
	err := r.pool.QueryRow(ctx, query, listingID).Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Status,
		&d.ListPrice,
		&d.PriceTypeID,
		&d.PublishedAt,
		&d.ExpiresAt,
		&d.ExternalRef,
		&d.PropertyType,
		&d.Tenure,
		&d.Rooms,
		&d.LivingAreaSqm,
		&d.PlotAreaSqm,
		&d.EnergyClass,
		&d.YearBuilt,
		&d.StreetAddress,
		&d.PostalCode,
		&d.City,
		&d.Municipality,
		&d.AgentName,
		&d.AgentPhone,
		&d.Agency,
	)
	if err != nil {
		return nil, translateError(err, "listing")
	}
	return &d, nil
}

const listingReturning = `id, title, description, status_id, list_price, price_type_id,
	       published_at, expires_at, external_ref, created_at, updated_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.StatusID,
		&l.ListPrice,
		&l.PriceTypeID,
		&l.PublishedAt,
		&l.ExpiresAt,
		&l.ExternalRef,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	var created *domain.Listing

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		insert := fmt.Sprintf(`
			INSERT INTO listings (title, description, status_id, list_price, price_type_id,
			                      published_at, expires_at, external_ref)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING %s`, listingReturning)

		var err error
		created, err = scanListing(tx.QueryRow(ctx, insert,
			draft.Title,
			draft.Description,
			draft.StatusID,
			draft.ListPrice,
			draft.PriceTypeID,
			draft.PublishedAt,
			draft.ExpiresAt,
			draft.ExternalRef,
		))
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO listing_properties (listing_id, property_id) VALUES ($1, $2)`,
			created.ID, draft.PropertyID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO listing_agents (listing_id, agent_id) VALUES ($1, $2)`,
			created.ID, draft.AgentID)
		return err
	})
	if err != nil {
		r.logger.Error("failed to create listing", err, port.Fields{"title": draft.Title})
		return nil, translateError(err, "listing")
	}

	r.logger.Debug("listing created", port.Fields{"listing_id": created.ID})
	return created, nil
}

func (r *ListingRepository) Update(ctx context.Context, listingID int64, patch domain.ListingPatch) (*domain.Listing, error) {
	var updated *domain.Listing

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		update := fmt.Sprintf(`
			UPDATE listings
			SET title        = COALESCE($1, title),
			    description  = COALESCE($2, description),
			    status_id    = COALESCE($3, status_id),
			    list_price   = COALESCE($4, list_price),
			    price_type_id = COALESCE($5, price_type_id),
			    published_at = COALESCE($6, published_at),
			    expires_at   = COALESCE($7, expires_at),
			    external_ref = COALESCE($8, external_ref),
			    updated_at   = NOW()
			WHERE id = $9
			RETURNING %s`, listingReturning)

		var err error
		updated, err = scanListing(tx.QueryRow(ctx, update,
			patch.Title,
			patch.Description,
			patch.StatusID,
			patch.ListPrice,
			patch.PriceTypeID,
			patch.PublishedAt,
			patch.ExpiresAt,
			patch.ExternalRef,
			listingID,
		))
		if err != nil {
			return err
		}

		if patch.PropertyID != nil {
			if _, err := tx.Exec(ctx,
				`UPDATE listing_properties SET property_id = $1 WHERE listing_id = $2`,
				*patch.PropertyID, listingID); err != nil {
				return err
			}
		}
		if patch.AgentID != nil {
			if _, err := tx.Exec(ctx,
				`UPDATE listing_agents SET agent_id = $1 WHERE listing_id = $2`,
				*patch.AgentID, listingID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err, "listing")
	}
	return updated, nil
}

// Delete removes everything owned by the listing before the listing row
// itself. The linked property and its location survive; they may back other
// listings.
func (r *ListingRepository) Delete(ctx context.Context, listingID int64) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		dependents := []string{
			`DELETE FROM listing_media WHERE listing_id = $1`,
			`DELETE FROM open_houses WHERE listing_id = $1`,
			`DELETE FROM saved_listings WHERE listing_id = $1`,
			`DELETE FROM listing_agents WHERE listing_id = $1`,
			`DELETE FROM listing_properties WHERE listing_id = $1`,
		}
		for _, stmt := range dependents {
			if _, err := tx.Exec(ctx, stmt, listingID); err != nil {
				return err
			}
		}

		var deletedID int64
		return tx.QueryRow(ctx,
			`DELETE FROM listings WHERE id = $1 RETURNING id`, listingID).Scan(&deletedID)
	})
	if err != nil {
		return translateError(err, "listing")
	}

	r.logger.Debug("listing deleted", port.Fields{"listing_id": listingID})
	return nil
}

func (r *ListingRepository) ListMedia(ctx context.Context, listingID int64, limit, offset *int) ([]domain.ListingMedia, error) {
	query := `
		SELECT id, listing_id, media_type_id, url, caption, position, updated_at
		FROM listing_media
		WHERE listing_id = $1
		ORDER BY position NULLS LAST, id`
	args := []interface{}{listingID}
	args, query = appendPage(args, query, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listing media")
	}
	defer rows.Close()

	media := make([]domain.ListingMedia, 0)
	for rows.Next() {
		var m domain.ListingMedia
		if err := rows.Scan(&m.ID, &m.ListingID, &m.MediaTypeID, &m.URL, &m.Caption, &m.Position, &m.UpdatedAt); err != nil {
			return nil, translateError(err, "listing media")
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

func (r *ListingRepository) AddMedia(ctx context.Context, listingID int64, draft domain.MediaDraft) (*domain.ListingMedia, error) {
	const query = `
		INSERT INTO listing_media (listing_id, media_type_id, url, caption, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, listing_id, media_type_id, url, caption, position, updated_at`

	var m domain.ListingMedia
	err := r.pool.QueryRow(ctx, query,
		listingID, draft.MediaTypeID, draft.URL, draft.Caption, draft.Position,
	).Scan(&m.ID, &m.ListingID, &m.MediaTypeID, &m.URL, &m.Caption, &m.Position, &m.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "listing media")
	}
	return &m, nil
}

func (r *ListingRepository) DeleteMedia(ctx context.Context, mediaID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM listing_media WHERE id = $1`, mediaID)
	if err != nil {
		return translateError(err, "listing media")
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.NotFound("listing media")
	}
	return nil
}

func (r *ListingRepository) ListOpenHouses(ctx context.Context, listingID int64, limit, offset *int) ([]domain.OpenHouse, error) {
	query := `
		SELECT oh.id, oh.listing_id, oh.starts_at, oh.ends_at, oht.name AS type, oh.note
		FROM open_houses oh
		JOIN open_house_types oht ON oh.open_house_type_id = oht.id
		WHERE oh.listing_id = $1
		ORDER BY oh.starts_at, oh.id`
	args := []interface{}{listingID}
	args, query = appendPage(args, query, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "open house")
	}
	defer rows.Close()

	events := make([]domain.OpenHouse, 0)
	for rows.Next() {
		var oh domain.OpenHouse
		if err := rows.Scan(&oh.ID, &oh.ListingID, &oh.StartsAt, &oh.EndsAt, &oh.Type, &oh.Note); err != nil {
			return nil, translateError(err, "open house")
		}
		events = append(events, oh)
	}
	return events, rows.Err()
}

func (r *ListingRepository) AddOpenHouse(ctx context.Context, listingID int64, draft domain.OpenHouseDraft) (*domain.OpenHouse, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO open_houses (listing_id, starts_at, ends_at, open_house_type_id, note)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, listing_id, starts_at, ends_at, open_house_type_id, note
		)
		SELECT i.id, i.listing_id, i.starts_at, i.ends_at, oht.name, i.note
		FROM inserted i
		JOIN open_house_types oht ON i.open_house_type_id = oht.id`

	var oh domain.OpenHouse
	err := r.pool.QueryRow(ctx, query,
		listingID, draft.StartsAt, draft.EndsAt, draft.TypeID, draft.Note,
	).Scan(&oh.ID, &oh.ListingID, &oh.StartsAt, &oh.EndsAt, &oh.Type, &oh.Note)
	if err != nil {
		return nil, translateError(err, "open house")
	}
	return &oh, nil
}

func (r *ListingRepository) DeleteOpenHouse(ctx context.Context, openHouseID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM open_houses WHERE id = $1`, openHouseID)
	if err != nil {
		return translateError(err, "open house")
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.NotFound("open house")
	}
	return nil
}

// appendPage appends LIMIT/OFFSET as bound args onto an already-built query.
func appendPage(args []interface{}, query string, limit, offset *int) ([]interface{}, string) {
	if limit != nil {
		args = append(args, *limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset != nil {
		args = append(args, *offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return args, query
}
