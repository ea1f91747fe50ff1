package postgres_adapter

import (
	"errors"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateErrorNil(t *testing.T) {
	assert.NoError(t, translateError(nil, "listing"))
}

func TestTranslateErrorNoRows(t *testing.T) {
	err := translateError(pgx.ErrNoRows, "listing")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestTranslateErrorForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "listing_agents_agent_id_fkey",
	}

	err := translateError(pgErr, "listing")

	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Contains(t, err.Error(), "invalid agent reference")
}

func TestTranslateErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "saved_listings_user_id_listing_id_key"}

	err := translateError(pgErr, "saved listing")

	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Contains(t, err.Error(), "already exists")
}

func TestTranslateErrorKeepsDomainErrors(t *testing.T) {
	conflict := domain.Conflict("property", "property is referenced by existing listings")

	err := translateError(conflict, "property")

	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.Equal(t, conflict, err)
}

func TestTranslateErrorUnknown(t *testing.T) {
	cause := errors.New("boom")

	err := translateError(cause, "agent")

	assert.False(t, domain.IsKind(err, domain.KindNotFound))
	assert.ErrorIs(t, err, cause)
}

func TestReferenceMessage(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"listing_properties_property_id_fkey", "invalid property reference"},
		{"listing_agents_agent_id_fkey", "invalid agent reference"},
		{"listings_status_id_fkey", "invalid status reference"},
		{"properties_tenure_id_fkey", "invalid tenure reference"},
		{"something_else_fkey", "invalid reference"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, referenceMessage(tt.constraint), tt.constraint)
	}
}
