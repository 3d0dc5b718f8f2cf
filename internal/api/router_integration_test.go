//go:build integration
// +build integration

package api_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/candlepulse/config"
	"github.com/guttosm/candlepulse/internal/app"
)

func startPG(t *testing.T) (dsn string, host string, port nat.Port, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "orderbooks",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=orderbooks sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", h, mp.Port(), "orderbooks")
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, h, mp, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedOrderBooks(t *testing.T, db *sql.DB) {
	t.Helper()
	rows := []struct {
		code, ts, price string
	}{
		{"FX_BTC_JPY", "2021-12-22 09:59:59 +0900 JST", "1"},
		{"FX_BTC_JPY", "2021-12-22 10:00:00 +0900 JST", "5800000.9"},
		{"FX_BTC_JPY", "2021-12-22 10:10:00 +0900 JST", "5900000"},
		{"FX_BTC_JPY", "2021-12-22 10:20:00 +0900 JST", "5750000.1"},
		{"FX_BTC_JPY", "2021-12-22 10:59:59 +0900 JST", "5850000.5"},
		{"FX_BTC_JPY", "2021-12-22 11:00:00 +0900 JST", "1"},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO order_books (code, "time", price) VALUES ($1, $2, $3)`, r.code, r.ts, r.price); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestAPI_E2E_Candle_FromPostgres(t *testing.T) {
	dsn, host, port, term := startPG(t)
	defer term()
	db := openAndMigrate(t, dsn)
	defer db.Close()
	seedOrderBooks(t, db)

	// Point application config to containerized DB
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:    config.ServerConfig{Port: "8080", RequestTimeout: 5 * time.Second},
		RateLimit: config.RateLimitConfig{Requests: 100, Window: time.Minute},
		Dataset: config.DatasetConfig{
			Source:   config.SourcePostgres,
			Table:    "order_books",
			Timezone: "JST",
		},
		Postgres: config.PostgresConfig{
			Host:     host,
			Port:     port.Int(),
			User:     "postgres",
			Password: "postgres",
			DBName:   "orderbooks",
			SSLMode:  "disable",
		},
	}

	router, cleanup, err := app.InitializeApp(context.Background())
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candle?code=FX_BTC_JPY&year=2021&month=12&day=22&hour=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	if want := `{"open":5800000,"high":5900000,"low":5750000,"close":5850000}`; w.Body.String() != want {
		t.Fatalf("body %s, want %s", w.Body.String(), want)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz status: %d", w.Code)
	}
}
