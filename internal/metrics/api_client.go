package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of better-call.dev API operations.",
	}, []string{"operation", "network", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of better-call.dev API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// APIClient tracks metrics for calls to the better-call.dev API.
type APIClient struct {
	network model.Network
}

// NewAPIClient constructs a metrics collector for API calls.
func NewAPIClient(network model.Network) *APIClient {
	if network == "" {
		network = "unknown"
	}
	return &APIClient{network: network}
}

// Observe records a single API call outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	apiRequestsTotal.WithLabelValues(operation, string(m.network), s).Inc()
	apiRequestDuration.WithLabelValues(operation, string(m.network), s).Observe(time.Since(started).Seconds())
}
