package levels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-levels/pkg/safe"
	"go.uber.org/zap"
)

// Options tunes a Collector.
type Options struct {
	// SeedHead adds the current head level of the network to the result.
	SeedHead bool
	// MaxPages caps the number of operations pages per run; 0 means no cap.
	MaxPages int
	// IncludeFinalPage keeps the operations that arrive together with the end cursor.
	IncludeFinalPage bool
}

// Collector discovers the distinct levels at which a contract has operations.
type Collector struct {
	logger       *zap.Logger
	metrics      CollectorMetrics
	seedHead     bool
	headResolver *headResolver
	fetcher      *paginatedFetcher
}

func NewCollector(
	heads HeadSource,
	operations OperationsSource,
	metrics CollectorMetrics,
	opts Options,
	logger *zap.Logger,
) (*Collector, error) {
	if operations == nil {
		return nil, errors.New("operations source is required")
	}
	if opts.SeedHead && heads == nil {
		return nil, errors.New("head source is required when seeding with the head")
	}
	if metrics == nil {
		return nil, errors.New("level collector metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	maxPages, err := safe.Uint64(opts.MaxPages)
	if err != nil {
		return nil, fmt.Errorf("max pages: %w", err)
	}

	return &Collector{
		logger:   logger,
		metrics:  metrics,
		seedHead: opts.SeedHead,
		headResolver: &headResolver{
			source: heads,
			logger: logger.Named("headResolver"),
		},
		fetcher: &paginatedFetcher{
			source:           operations,
			metrics:          metrics,
			maxPages:         maxPages,
			includeFinalPage: opts.IncludeFinalPage,
			logger:           logger.Named("fetcher"),
		},
	}, nil
}

// Collect runs head resolution (when enabled) and the full pagination walk.
// Any failure discards everything collected so far.
func (c *Collector) Collect(ctx context.Context, ref model.NetworkRef) (set *LevelSet, err error) {
	started := time.Now()
	logger := c.logger.With(
		zap.String("network", string(ref.Network)),
		zap.String("contract", string(ref.Contract)),
	)
	defer func() {
		levels := 0
		if set != nil {
			levels = set.Len()
		}
		c.metrics.ObserveCollect(err, levels, started)
	}()

	set = NewLevelSet()
	if c.seedHead {
		var head model.Level
		head, err = c.headResolver.Resolve(ctx, ref.Network)
		if err != nil {
			logger.Error("resolve head failed", zap.Error(err))
			return nil, fmt.Errorf("resolve head: %w", err)
		}
		set.Add(head)
	}

	if err = c.fetcher.Fetch(ctx, ref, set); err != nil {
		logger.Error("fetch operations failed", zap.Error(err))
		return nil, fmt.Errorf("fetch levels: %w", err)
	}

	logger.Info("levels collected",
		zap.Int("level_count", set.Len()),
		zap.Duration("elapsed", time.Since(started)),
	)
	return set, nil
}

// Walk streams the levels of each operations page without head seeding or deduplication.
func (c *Collector) Walk(ctx context.Context, ref model.NetworkRef, visit func([]model.Level) error) error {
	return c.fetcher.Walk(ctx, ref, visit)
}
