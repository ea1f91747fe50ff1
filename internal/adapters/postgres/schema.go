package postgres_adapter

import (
	"context"
	_ "embed"
	"strings"

	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const schemaVersion = 1

// EnsureSchema applies the embedded DDL when the stored schema version is
// behind. The version row and all statements go in one transaction, so a
// partially applied schema is never recorded as done.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger port.LoggerPort) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
		    version    INT PRIMARY KEY,
		    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return translateError(err, "schema")
	}

	var current int
	if err := pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return translateError(err, "schema")
	}
	if current >= schemaVersion {
		logger.Debug("schema up to date", port.Fields{"version": current})
		return nil
	}

	err := withTx(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range strings.Split(schemaSQL, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO schema_version (version) VALUES ($1)`, schemaVersion)
		return err
	})
	if err != nil {
		return translateError(err, "schema")
	}

	logger.Info("schema applied", port.Fields{"version": schemaVersion})
	return nil
}
