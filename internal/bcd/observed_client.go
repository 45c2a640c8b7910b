package bcd

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	API interface {
		Heads(ctx context.Context) ([]model.Head, error)
		Operations(ctx context.Context, ref model.NetworkRef, cursor model.Cursor) (*model.OperationsPage, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient records metrics around every API call.
type ObservedClient struct {
	client  API
	metrics Metrics
}

func NewObservedClient(client API, metrics Metrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

func (r *ObservedClient) Heads(ctx context.Context) (heads []model.Head, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(operationHead, err, started)
	}()
	return r.client.Heads(ctx)
}

func (r *ObservedClient) Operations(ctx context.Context, ref model.NetworkRef, cursor model.Cursor) (page *model.OperationsPage, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(operationOperations, err, started)
	}()
	return r.client.Operations(ctx, ref, cursor)
}
