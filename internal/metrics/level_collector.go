// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "level_collector",
		Name:      "pages_total",
		Help:      "Count of operations pages requested.",
	}, []string{"network", "status"})

	collectorPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "level_collector",
		Name:      "page_duration_seconds",
		Help:      "Duration of fetching a single operations page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	collectorPageOperations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "level_collector",
		Name:      "page_operations",
		Help:      "Number of operations returned per page.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	collectorCollectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "level_collector",
		Name:      "collect_total",
		Help:      "Count of level collection runs.",
	}, []string{"network", "status"})

	collectorCollectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "level_collector",
		Name:      "collect_duration_seconds",
		Help:      "Duration of a full level collection run.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"network", "status"})

	collectorLevels = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "level_collector",
		Name:      "levels",
		Help:      "Distinct levels found by the last successful run.",
	}, []string{"network"})
)

// LevelCollector tracks metrics for the level collection pipeline.
type LevelCollector struct {
	network model.Network
}

// NewLevelCollector constructs a LevelCollector with sane defaults.
func NewLevelCollector(network model.Network) *LevelCollector {
	if network == "" {
		network = "unknown"
	}
	return &LevelCollector{network: network}
}

// ObservePage records a single page request and the size of its batch.
func (m LevelCollector) ObservePage(err error, operations int, started time.Time) {
	s := status(err)
	collectorPagesTotal.WithLabelValues(string(m.network), s).Inc()
	collectorPageDuration.WithLabelValues(string(m.network), s).Observe(time.Since(started).Seconds())
	if err == nil {
		collectorPageOperations.WithLabelValues(string(m.network)).Observe(float64(operations))
	}
}

// ObserveCollect records a collection run outcome.
func (m LevelCollector) ObserveCollect(err error, levels int, started time.Time) {
	s := status(err)
	collectorCollectTotal.WithLabelValues(string(m.network), s).Inc()
	collectorCollectDuration.WithLabelValues(string(m.network), s).Observe(time.Since(started).Seconds())
	if err == nil {
		collectorLevels.WithLabelValues(string(m.network)).Set(float64(levels))
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
