package ingestion

import (
	"context"

	"github.com/guttosm/candlepulse/internal/domain/models"
	"github.com/guttosm/candlepulse/internal/storage"
)

// Source yields the raw rows of one tabular order-book source.
type Source interface {
	Name() string
	Rows(ctx context.Context) ([]models.RawTrade, error)
}

// PostgresSource adapts an order-book table to Source.
type PostgresSource struct {
	Table string
	Repo  storage.OrderBooksRepository
}

func (p PostgresSource) Name() string { return "postgres:" + p.Table }

func (p PostgresSource) Rows(ctx context.Context) ([]models.RawTrade, error) {
	return p.Repo.ListRows(ctx)
}
