package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/candlepulse/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres opens the order-book database described by cfg.Postgres and
// pings it. The handle is only used while the dataset loads and for the
// readiness probe.
//
// Example usage:
//
//	db, err := app.InitPostgres(ctx, config.AppConfig)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func InitPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	// Initialize database handle (does not establish a real connection yet)
	db, err := sqlOpener("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by LoadDataset; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
