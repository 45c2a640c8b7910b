package levels

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeadSource interface {
		Heads(ctx context.Context) ([]model.Head, error)
	}
	OperationsSource interface {
		Operations(ctx context.Context, ref model.NetworkRef, cursor model.Cursor) (*model.OperationsPage, error)
	}
	CollectorMetrics interface {
		ObservePage(err error, operations int, started time.Time)
		ObserveCollect(err error, levels int, started time.Time)
	}
)
