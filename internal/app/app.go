package app

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // DATASET_TIMEZONE resolves without a system zoneinfo

	"github.com/gin-gonic/gin"

	"github.com/guttosm/candlepulse/config"
	"github.com/guttosm/candlepulse/internal/aggregate"
	"github.com/guttosm/candlepulse/internal/api"
	"github.com/guttosm/candlepulse/internal/middleware"
	"github.com/guttosm/candlepulse/internal/service"
)

// readyTimeout bounds the readiness probe's database ping.
const readyTimeout = 2 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Resolves the hour-window time zone (DATASET_TIMEZONE).
//   - Loads the trade dataset once via LoadDataset().
//   - Wires the aggregator, candle and flag services and the HTTP handler.
//   - Configures the Gin router, rate limiter and health/readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	loc, err := aggregate.LoadLocation(cfg.Dataset.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid DATASET_TIMEZONE %q: %w", cfg.Dataset.Timezone, err)
	}

	ds, err := LoadDataset(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	// Business logic
	candles := service.NewCandleService(aggregate.NewAggregator(ds.Store, loc))
	flags := service.NewFlagService()

	// HTTP layer
	middleware.ConfigureRateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	handler := api.NewHandler(candles, flags)
	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), readyTimeout)
		defer cancel()
		return ds.Ready(pingCtx)
	})
	healthHandler.Register(router)

	return router, ds.Close, nil
}
