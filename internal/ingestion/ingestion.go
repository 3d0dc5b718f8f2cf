package ingestion

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/candlepulse/internal/dataset"
	"github.com/guttosm/candlepulse/internal/domain/models"
	"github.com/guttosm/candlepulse/internal/logger"
)

// Load reads every source and builds one Store.
//
// Behavior:
//   - Sources are read concurrently, at most min(len(sources), NumCPU) at a time.
//   - Rows are concatenated in the order sources are listed, so ingestion order
//     is deterministic regardless of which read finishes first.
//   - The first read error cancels the remaining reads and is returned.
//   - Malformed rows follow opts (fatal by default, see dataset.LoadOptions).
func Load(ctx context.Context, sources []Source, opts dataset.LoadOptions) (*dataset.Store, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no dataset sources configured")
	}

	maxParallel := runtime.NumCPU()
	if len(sources) < maxParallel {
		maxParallel = len(sources)
	}

	log := logger.Component("ingestion")
	log.Info().Int("sources", len(sources)).Int("max_parallel", maxParallel).Msg("dataset load start")

	parts := make([][]models.RawTrade, len(sources))

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			start := time.Now()
			rows, err := src.Rows(gctx)
			if err != nil {
				log.Error().Str("source", src.Name()).Err(err).Msg("source failed")
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			parts[i] = rows
			log.Info().Str("source", src.Name()).Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("source read")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	all := make([]models.RawTrade, 0, total)
	for _, p := range parts {
		all = append(all, p...)
	}

	if opts.Logger == nil {
		opts.Logger = &log
	}
	store, err := dataset.Load(all, opts)
	if err != nil {
		return nil, fmt.Errorf("normalize dataset: %w", err)
	}

	log.Info().Int("records", store.Len()).Int("skipped", store.Skipped()).Int("codes", len(store.Codes())).Msg("dataset loaded")
	return store, nil
}
