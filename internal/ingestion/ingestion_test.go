package ingestion

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/candlepulse/internal/dataset"
	"github.com/guttosm/candlepulse/internal/domain/models"
)

// fakeSource returns fixed rows after an optional delay.
type fakeSource struct {
	name  string
	rows  []models.RawTrade
	err   error
	delay time.Duration
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) Rows(ctx context.Context) ([]models.RawTrade, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.rows, f.err
}

// fakeRepo implements storage.OrderBooksRepository.
type fakeRepo struct {
	rows []models.RawTrade
}

func (f fakeRepo) ListRows(context.Context) ([]models.RawTrade, error) { return f.rows, nil }

func row(code, ts, price string) models.RawTrade {
	return models.RawTrade{Source: "fake", Code: code, Time: ts, Price: price}
}

func TestLoad_ConcatenatesInListedOrder(t *testing.T) {
	slow := fakeSource{name: "first", delay: 30 * time.Millisecond, rows: []models.RawTrade{
		row("A", "2021-12-22 10:00:00 +0900 JST", "1"),
	}}
	fast := fakeSource{name: "second", rows: []models.RawTrade{
		row("B", "2021-12-22 10:00:00 +0900 JST", "2"),
	}}

	store, err := Load(context.Background(), []Source{slow, fast}, dataset.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := store.Codes(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("codes out of listed order: %v", got)
	}
}

func TestLoad_SourceErrorCancels(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), []Source{
		fakeSource{name: "bad", err: boom},
		fakeSource{name: "slow", delay: time.Second},
	}, dataset.LoadOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestLoad_MalformedPolicy(t *testing.T) {
	src := fakeSource{name: "mixed", rows: []models.RawTrade{
		row("A", "2021-12-22 10:00:00 +0900 JST", "1"),
		row("A", "2021-12-22 10:00:00", "1"),
	}}

	if _, err := Load(context.Background(), []Source{src}, dataset.LoadOptions{}); !errors.Is(err, dataset.ErrMalformedTimestamp) {
		t.Fatalf("expected malformed timestamp, got %v", err)
	}

	store, err := Load(context.Background(), []Source{src}, dataset.LoadOptions{SkipMalformed: true})
	if err != nil {
		t.Fatalf("Load with skip: %v", err)
	}
	if store.Len() != 1 || store.Skipped() != 1 {
		t.Fatalf("len=%d skipped=%d", store.Len(), store.Skipped())
	}
}

func TestLoad_NoSources(t *testing.T) {
	if _, err := Load(context.Background(), nil, dataset.LoadOptions{}); err == nil {
		t.Fatalf("expected error without sources")
	}
}

func TestLoad_CSVAndPostgresSources(t *testing.T) {
	dir := t.TempDir()
	p := writeTempFile(t, dir, "order_books.csv", "code,time,price\nFTHD,2021-12-22 10:00:00 +0900 JST,100\n")

	pg := PostgresSource{Table: "order_books", Repo: fakeRepo{rows: []models.RawTrade{
		row("PG", "2021-12-22 11:00:00 +0900 JST", "5"),
	}}}
	if pg.Name() != "postgres:order_books" {
		t.Fatalf("unexpected name %q", pg.Name())
	}

	store, err := Load(context.Background(), []Source{CSVSource{Path: filepath.Clean(p)}, pg}, dataset.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("want 2 records, got %d", store.Len())
	}
}
