package levels

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"go.uber.org/zap"
)

type paginatedFetcher struct {
	source  OperationsSource
	metrics CollectorMetrics
	// maxPages caps the number of requests; unlimitedPages disables the cap.
	maxPages uint64
	// includeFinalPage makes the batch that arrives with the end cursor count too.
	includeFinalPage bool
	logger           *zap.Logger
}

// Walk follows the cursor chain and hands the levels of each page to visit in server order.
// The batch returned alongside the end cursor is dropped unless includeFinalPage is set.
func (f *paginatedFetcher) Walk(ctx context.Context, ref model.NetworkRef, visit func([]model.Level) error) error {
	var cursor model.Cursor
	for page := uint64(1); ; page++ {
		if f.maxPages != unlimitedPages && page > f.maxPages {
			return fmt.Errorf("%w: stopped after %d pages", ErrPageLimitExceeded, f.maxPages)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		started := time.Now()
		resp, err := f.source.Operations(ctx, ref, cursor)
		if err != nil {
			f.metrics.ObservePage(err, 0, started)
			return fmt.Errorf("fetch operations page %d: %w", page, err)
		}
		if resp == nil {
			resp = &model.OperationsPage{}
		}
		f.metrics.ObservePage(nil, len(resp.Operations), started)

		f.logger.Debug("page fetched",
			zap.Uint64("page", page),
			zap.String("cursor", string(cursor)),
			zap.String("last_id", string(resp.LastID)),
			zap.Int("operation_count", len(resp.Operations)),
		)

		if resp.LastID.IsEnd() {
			if f.includeFinalPage {
				return visit(resp.Levels())
			}
			return nil
		}

		if err := visit(resp.Levels()); err != nil {
			return err
		}
		cursor = resp.LastID
	}
}

// Fetch adds every level of the cursor chain to set.
func (f *paginatedFetcher) Fetch(ctx context.Context, ref model.NetworkRef, set *LevelSet) error {
	return f.Walk(ctx, ref, func(levels []model.Level) error {
		set.Add(levels...)
		return nil
	})
}
