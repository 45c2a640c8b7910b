package levels

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"go.uber.org/zap"
)

type headResolver struct {
	source HeadSource
	logger *zap.Logger
}

func (r *headResolver) Resolve(ctx context.Context, network model.Network) (model.Level, error) {
	heads, err := r.source.Heads(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch heads: %w", err)
	}

	for _, head := range heads {
		if head.Network == network {
			r.logger.Debug("head resolved", zap.Uint64("level", uint64(head.Level)))
			return head.Level, nil
		}
	}

	return 0, &NotFoundError{Network: network}
}
