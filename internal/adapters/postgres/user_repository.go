package postgres_adapter

import (
	"context"
	"errors"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepository implements user read models, saved listings and saved
// searches. All user-scoped queries filter by the caller-verified user id.
type UserRepository struct {
	pool   DB
	logger port.LoggerPort
}

func NewUserRepository(pool DB, logger port.LoggerPort) *UserRepository {
	return &UserRepository{
		pool:   pool,
		logger: logger.WithFields(port.Fields{"component": "user_repository"}),
	}
}

func (r *UserRepository) ListUsers(ctx context.Context, limit, offset *int) ([]domain.User, error) {
	query := `
		SELECT u.first_name, u.last_name, u.email, ur.name AS role
		FROM users u
		LEFT JOIN user_roles ur ON u.role_id = ur.id
		ORDER BY u.id`
	args := make([]interface{}, 0)
	args, query = appendPage(args, query, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "user")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.FirstName, &u.LastName, &u.Email, &u.Role); err != nil {
			return nil, translateError(err, "user")
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) ListSavedListings(ctx context.Context, userID int64) ([]domain.SavedListing, error) {
	const query = `
		SELECT sl.id,
		       sl.listing_id,
		       l.title,
		       l.list_price,
		       ls.name AS status,
		       loc.city,
		       pt.name AS property_type,
		       sl.created_at
		FROM saved_listings sl
		JOIN listings l ON sl.listing_id = l.id
		JOIN listing_status ls ON l.status_id = ls.id
		JOIN listing_properties lp ON l.id = lp.listing_id
		JOIN properties p ON lp.property_id = p.id
		JOIN property_types pt ON p.property_type_id = pt.id
		JOIN locations loc ON p.location_id = loc.id
		WHERE sl.user_id = $1
		ORDER BY sl.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err, "saved listing")
	}
	defer rows.Close()

	saved := make([]domain.SavedListing, 0)
	for rows.Next() {
		var s domain.SavedListing
		if err := rows.Scan(&s.ID, &s.ListingID, &s.Title, &s.ListPrice,
			&s.Status, &s.City, &s.PropertyType, &s.CreatedAt); err != nil {
			return nil, translateError(err, "saved listing")
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

// SaveListing is idempotent: re-saving an already saved listing succeeds
// without touching the existing row.
func (r *UserRepository) SaveListing(ctx context.Context, userID, listingID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO saved_listings (user_id, listing_id) VALUES ($1, $2)`,
		userID, listingID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Debug("listing already saved", port.Fields{
				"user_id":    userID,
				"listing_id": listingID,
			})
			return nil
		}
		return translateError(err, "saved listing")
	}
	return nil
}

func (r *UserRepository) RemoveSavedListing(ctx context.Context, userID, listingID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM saved_listings WHERE user_id = $1 AND listing_id = $2`,
		userID, listingID)
	if err != nil {
		return translateError(err, "saved listing")
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.NotFound("saved listing")
	}
	return nil
}

const savedSearchColumns = `id, query, location, price_min, price_max, rooms_min,
	       rooms_max, send_email, created_at, updated_at`

func scanSavedSearch(row pgx.Row) (*domain.SavedSearch, error) {
	var s domain.SavedSearch
	err := row.Scan(
		&s.ID,
		&s.Query,
		&s.Location,
		&s.PriceMin,
		&s.PriceMax,
		&s.RoomsMin,
		&s.RoomsMax,
		&s.SendEmail,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *UserRepository) ListSavedSearches(ctx context.Context, userID int64) ([]domain.SavedSearch, error) {
	const query = `
		SELECT s.id, s.query, s.location, s.price_min, s.price_max, s.rooms_min,
		       s.rooms_max, s.send_email, s.created_at, s.updated_at,
		       COALESCE(array_agg(pt.name) FILTER (WHERE pt.name IS NOT NULL), '{}') AS property_types
		FROM saved_searches s
		LEFT JOIN saved_search_property_types sspt ON s.id = sspt.saved_search_id
		LEFT JOIN property_types pt ON sspt.property_type_id = pt.id
		WHERE s.user_id = $1
		GROUP BY s.id
		ORDER BY s.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err, "saved search")
	}
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0)
	for rows.Next() {
		var s domain.SavedSearch
		if err := rows.Scan(&s.ID, &s.Query, &s.Location, &s.PriceMin, &s.PriceMax,
			&s.RoomsMin, &s.RoomsMax, &s.SendEmail, &s.CreatedAt, &s.UpdatedAt,
			&s.PropertyTypes); err != nil {
			return nil, translateError(err, "saved search")
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

// insertSearchTypes resolves every type name against the catalog and inserts
// the association rows. One unknown name fails the whole call, which aborts
// the surrounding transaction.
func insertSearchTypes(ctx context.Context, tx pgx.Tx, searchID int64, typeNames []string) error {
	for _, name := range typeNames {
		var typeID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM property_types WHERE name = $1`, name).Scan(&typeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ValidationConflict("unknown property type: "+name, err)
			}
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO saved_search_property_types (saved_search_id, property_type_id) VALUES ($1, $2)`,
			searchID, typeID); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepository) CreateSavedSearch(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error) {
	var created *domain.SavedSearch

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		created, err = scanSavedSearch(tx.QueryRow(ctx, `
			INSERT INTO saved_searches (user_id, query, location, price_min, price_max,
			                            rooms_min, rooms_max, send_email)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+savedSearchColumns,
			userID,
			draft.Query,
			draft.Location,
			draft.PriceMin,
			draft.PriceMax,
			draft.RoomsMin,
			draft.RoomsMax,
			draft.SendEmail,
		))
		if err != nil {
			return err
		}

		return insertSearchTypes(ctx, tx, created.ID, draft.PropertyTypes)
	})
	if err != nil {
		return nil, translateError(err, "saved search")
	}

	created.PropertyTypes = append([]string{}, draft.PropertyTypes...)
	r.logger.Debug("saved search created", port.Fields{
		"user_id":   userID,
		"search_id": created.ID,
	})
	return created, nil
}

func (r *UserRepository) UpdateSavedSearch(ctx context.Context, userID, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error) {
	var updated *domain.SavedSearch

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = scanSavedSearch(tx.QueryRow(ctx, `
			UPDATE saved_searches
			SET query      = COALESCE($1, query),
			    location   = COALESCE($2, location),
			    price_min  = COALESCE($3, price_min),
			    price_max  = COALESCE($4, price_max),
			    rooms_min  = COALESCE($5, rooms_min),
			    rooms_max  = COALESCE($6, rooms_max),
			    send_email = COALESCE($7, send_email),
			    updated_at = NOW()
			WHERE id = $8 AND user_id = $9
			RETURNING `+savedSearchColumns,
			patch.Query,
			patch.Location,
			patch.PriceMin,
			patch.PriceMax,
			patch.RoomsMin,
			patch.RoomsMax,
			patch.SendEmail,
			searchID,
			userID,
		))
		if err != nil {
			return err
		}

		if patch.PropertyTypes != nil {
			if _, err := tx.Exec(ctx,
				`DELETE FROM saved_search_property_types WHERE saved_search_id = $1`,
				searchID); err != nil {
				return err
			}
			if err := insertSearchTypes(ctx, tx, searchID, *patch.PropertyTypes); err != nil {
				return err
			}
		}

		return tx.QueryRow(ctx, `
			SELECT COALESCE(array_agg(pt.name), '{}')
			FROM saved_search_property_types sspt
			JOIN property_types pt ON sspt.property_type_id = pt.id
			WHERE sspt.saved_search_id = $1`,
			searchID).Scan(&updated.PropertyTypes)
	})
	if err != nil {
		return nil, translateError(err, "saved search")
	}
	return updated, nil
}

func (r *UserRepository) DeleteSavedSearch(ctx context.Context, userID, searchID int64) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM saved_search_property_types WHERE saved_search_id = $1
			 AND saved_search_id IN (SELECT id FROM saved_searches WHERE user_id = $2)`,
			searchID, userID); err != nil {
			return err
		}
		var deletedID int64
		return tx.QueryRow(ctx,
			`DELETE FROM saved_searches WHERE id = $1 AND user_id = $2 RETURNING id`,
			searchID, userID).Scan(&deletedID)
	})
	if err != nil {
		return translateError(err, "saved search")
	}
	return nil
}
