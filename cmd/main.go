package main

//
//  @title           candlepulse API
//  @version         1.0
//  @description     Hourly OHLC candles over a pre-loaded order-book dataset.
//  @termsOfService  https://github.com/guttosm/candlepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/candlepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        candle
//  @tag.description Hourly open/high/low/close per instrument
//
//  @tag.name        flag
//  @tag.description Opaque flag acknowledgement
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/candlepulse/config"
	_ "github.com/guttosm/candlepulse/docs" // swagger docs
	"github.com/guttosm/candlepulse/internal/app"
	"github.com/guttosm/candlepulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// validateDataset loads the configured dataset once and reports what it holds.
// A malformed dataset (under the configured policy) is returned as an error.
func validateDataset(ctx context.Context, cfg config.Config) error {
	ds, err := app.LoadDataset(ctx, cfg)
	if err != nil {
		return err
	}
	defer ds.Close()

	logger.L().Info().
		Str("source", cfg.Dataset.Source).
		Int("records", ds.Store.Len()).
		Int("skipped", ds.Store.Skipped()).
		Strs("codes", ds.Store.Codes()).
		Msg("dataset valid")
	return nil
}

// main is the entry point of the candlepulse application.
//
// Modes (selected via --mode flag):
//   - api:      Loads the dataset and serves GET /candle and PUT /flag.
//   - validate: Loads the dataset, logs a summary and exits non-zero if it is malformed.
//
// Flags:
//   - --mode: Execution mode ("api" or "validate"). Default: "api".
//   - --data: Comma-separated CSV paths. Overrides DATASET_PATHS and selects the csv source.
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init(config.AppConfig.Log)

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or validate")
	data := flag.String("data", "", "Comma-separated CSV files (overrides DATASET_PATHS)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	if paths := config.SplitPaths(*data); len(paths) > 0 {
		config.AppConfig.Dataset.Source = config.SourceCSV
		config.AppConfig.Dataset.Paths = paths
	}

	switch *mode {
	case "validate":
		logger.L().Info().Msg("validating dataset")
		if err := validateDataset(ctx, config.AppConfig); err != nil {
			logger.L().Fatal().Err(err).Msg("dataset invalid")
		}

	case "api":
		// API mode: load the dataset and start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
