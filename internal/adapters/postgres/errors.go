package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps driver failures onto the domain taxonomy at the
// adapter boundary. Domain errors produced inside a transaction pass
// through untouched.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return domain.ValidationConflict(referenceMessage(pgErr.ConstraintName), err)
		case "23505": // unique_violation
			return domain.ValidationConflict(fmt.Sprintf("%s already exists", entity), err)
		case "23502", "23514": // not_null_violation, check_violation
			return domain.ValidationConflict("invalid data", err)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, context.DeadlineExceeded) {
		return domain.Unavailable(err)
	}

	return fmt.Errorf("%s: %w", entity, err)
}

// referenceMessage names the relationship behind a foreign key violation so
// callers see the likely cause instead of a constraint name.
func referenceMessage(constraint string) string {
	switch {
	case strings.Contains(constraint, "listing_properties"):
		return "invalid property reference"
	case strings.Contains(constraint, "listing_agents"):
		return "invalid agent reference"
	case strings.Contains(constraint, "agent_agencies"):
		return "invalid agency reference"
	case strings.Contains(constraint, "status"):
		return "invalid status reference"
	case strings.Contains(constraint, "price_type"):
		return "invalid price type reference"
	case strings.Contains(constraint, "media_type"):
		return "invalid media type reference"
	case strings.Contains(constraint, "property_type"):
		return "invalid property type reference"
	case strings.Contains(constraint, "tenure"):
		return "invalid tenure reference"
	case strings.Contains(constraint, "location"):
		return "invalid location reference"
	case strings.Contains(constraint, "listing"):
		return "invalid listing reference"
	case strings.Contains(constraint, "user"):
		return "invalid user reference"
	default:
		return "invalid reference"
	}
}
