package storage

import (
	"context"
	"database/sql"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/guttosm/candlepulse/internal/domain/models"
)

// OrderBooksRepository reads the tabular order-book source from PostgreSQL.
type OrderBooksRepository interface {
	ListRows(ctx context.Context) ([]models.RawTrade, error)
}

type orderBooksRepository struct {
	db    *sql.DB
	table string
}

// NewOrderBooksRepository reads rows from table. The name is quoted as an
// identifier, so it may contain mixed case or a schema-less special name.
func NewOrderBooksRepository(db *sql.DB, table string) OrderBooksRepository {
	return &orderBooksRepository{db: db, table: table}
}

// ListRows returns every row ordered by insertion id. Time and price are
// returned as text so normalization is identical to the CSV source.
func (r *orderBooksRepository) ListRows(ctx context.Context) ([]models.RawTrade, error) {
	query := fmt.Sprintf(`SELECT code, "time", price::text FROM %s ORDER BY id`, pq.QuoteIdentifier(r.table))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.RawTrade
	line := 0
	for rows.Next() {
		line++
		var code, ts, price sql.NullString
		if err := rows.Scan(&code, &ts, &price); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", r.table, line, err)
		}
		out = append(out, models.RawTrade{
			Source: r.table,
			Line:   line,
			Code:   code.String,
			Time:   ts.String,
			Price:  price.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.table, err)
	}
	return out, nil
}
