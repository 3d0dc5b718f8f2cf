package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/candlepulse/config"
	"github.com/guttosm/candlepulse/internal/dataset"
	"github.com/guttosm/candlepulse/internal/ingestion"
	"github.com/guttosm/candlepulse/internal/logger"
	"github.com/guttosm/candlepulse/internal/storage"
)

// Dataset is the loaded trade store together with the source it came from.
type Dataset struct {
	Store *dataset.Store
	db    *sql.DB
}

// LoadDataset builds the sources selected by cfg.Dataset and loads them into
// a Store. With the postgres source the connection stays open for readiness
// checks until Close.
func LoadDataset(ctx context.Context, cfg config.Config) (*Dataset, error) {
	var (
		sources []ingestion.Source
		db      *sql.DB
	)

	switch cfg.Dataset.Source {
	case config.SourceCSV:
		for _, p := range cfg.Dataset.Paths {
			sources = append(sources, ingestion.CSVSource{Path: p})
		}
	case config.SourcePostgres:
		var err error
		// indirection for unit testing
		db, err = postgresOpener(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		sources = append(sources, ingestion.PostgresSource{
			Table: cfg.Dataset.Table,
			Repo:  storage.NewOrderBooksRepository(db, cfg.Dataset.Table),
		})
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}

	log := logger.Component("dataset")
	store, err := ingestion.Load(ctx, sources, dataset.LoadOptions{
		SkipMalformed: cfg.Dataset.SkipMalformed,
		Logger:        &log,
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	return &Dataset{Store: store, db: db}, nil
}

// Ready reports whether the dataset can serve queries.
func (d *Dataset) Ready(ctx context.Context) error {
	if d == nil || d.Store == nil {
		return fmt.Errorf("dataset not loaded")
	}
	if d.db != nil {
		if err := d.db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres unreachable: %w", err)
		}
	}
	return nil
}

// Close releases the source connection, if any.
func (d *Dataset) Close() {
	if d != nil && d.db != nil {
		_ = d.db.Close()
	}
}
