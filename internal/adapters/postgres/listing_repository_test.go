package postgres_adapter

import (
	"context"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listingColumns = []string{
	"id", "title", "description", "status_id", "list_price", "price_type_id",
	"published_at", "expires_at", "external_ref", "created_at", "updated_at",
}

func listingRow(id int64, title string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(listingColumns).
		AddRow(id, title, nil, int64(1), nil, nil, nil, nil, nil, now, now)
}

// The mock matches expectations in order, so this pins the whole sequence:
// every dependent table is cleared before the listing row goes.
func TestDeleteListingCascadeOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	for _, table := range []string{
		"listing_media", "open_houses", "saved_listings",
		"listing_agents", "listing_properties",
	} {
		mock.ExpectExec(`DELETE FROM ` + table + ` WHERE listing_id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
	}
	mock.ExpectQuery(`DELETE FROM listings WHERE id = \$1 RETURNING id`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	repo := NewListingRepository(mock, discardLogger{})

	require.NoError(t, repo.Delete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteListingMissingRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	for _, table := range []string{
		"listing_media", "open_houses", "saved_listings",
		"listing_agents", "listing_properties",
	} {
		mock.ExpectExec(`DELETE FROM ` + table + ` WHERE listing_id = \$1`).
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
	}
	mock.ExpectQuery(`DELETE FROM listings WHERE id = \$1 RETURNING id`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	repo := NewListingRepository(mock, discardLogger{})
	err = repo.Delete(context.Background(), 404)

	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

// A bad property reference on the link insert must abort the transaction:
// the listing row inserted first never survives, and the agent link insert
// never runs.
func TestCreateListingRollsBackOnBadPropertyReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO listings`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(listingRow(42, "Sunny apartment"))
	mock.ExpectExec(`INSERT INTO listing_properties \(listing_id, property_id\) VALUES \(\$1, \$2\)`).
		WithArgs(int64(42), int64(99)).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			ConstraintName: "listing_properties_property_id_fkey",
		})
	mock.ExpectRollback()

	repo := NewListingRepository(mock, discardLogger{})
	_, err = repo.Create(context.Background(), domain.ListingDraft{
		Title:      "Sunny apartment",
		StatusID:   1,
		AgentID:    2,
		PropertyID: 99,
	})

	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Contains(t, err.Error(), "invalid property reference")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListingCommitsBothLinks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO listings`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(listingRow(42, "Sunny apartment"))
	mock.ExpectExec(`INSERT INTO listing_properties`).
		WithArgs(int64(42), int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO listing_agents`).
		WithArgs(int64(42), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := NewListingRepository(mock, discardLogger{})
	listing, err := repo.Create(context.Background(), domain.ListingDraft{
		Title:      "Sunny apartment",
		StatusID:   1,
		AgentID:    2,
		PropertyID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), listing.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
