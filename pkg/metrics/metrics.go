package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Dataset metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset retrievals by outcome",
		},
		[]string{"source", "status", "kind"},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Dataset retrieval and parse duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	DatasetState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_state",
			Help: "Current provider state (1 for the active state, 0 otherwise)",
		},
		[]string{"state"},
	)

	DatasetInconsistencies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_inconsistencies",
			Help: "Number of expected-invariant violations found in the loaded dataset",
		},
	)

	// Dashboard metrics
	ViewRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_view_renders_total",
			Help: "Total number of dashboard views rendered",
		},
		[]string{"tab", "format"},
	)
)

var datasetStates = []string{"loading", "ready", "failed"}

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordDatasetLoad records the outcome of one dataset retrieval.
// kind is empty on success.
func RecordDatasetLoad(source, kind string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DatasetLoadsTotal.WithLabelValues(source, status, kind).Inc()
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// SetDatasetState flips the state gauge so exactly one state reports 1.
func SetDatasetState(state string) {
	for _, s := range datasetStates {
		v := 0.0
		if s == state {
			v = 1
		}
		DatasetState.WithLabelValues(s).Set(v)
	}
}

// RecordViewRender counts a rendered dashboard view.
func RecordViewRender(tab, format string) {
	ViewRendersTotal.WithLabelValues(tab, format).Inc()
}
