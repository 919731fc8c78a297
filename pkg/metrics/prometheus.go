// Package metrics provides Prometheus metrics for the capwindow service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the capwindow service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Scoring pass metrics
	scoringPasses       prometheus.Counter
	scoringPassDuration prometheus.Histogram
	scoringErrors       prometheus.Counter
	teamsScored         prometheus.Gauge
	alertsGenerated     prometheus.Gauge

	// Dataset metrics
	datasetTeams     prometheus.Gauge
	datasetContracts prometheus.Gauge
	datasetRookies   prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "capwindow",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoringPasses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_passes_total",
		Help:      "Total number of full scoring passes over the dataset",
	})

	m.scoringPassDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_pass_duration_milliseconds",
		Help:      "Histogram of full scoring pass duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.scoringErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total number of per-team scoring failures",
	})

	m.teamsScored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_scored",
		Help:      "Number of teams scored in the latest pass",
	})

	m.alertsGenerated = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alerts_generated",
		Help:      "Number of alerts produced by the latest pass",
	})

	m.datasetTeams = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_teams",
		Help:      "Number of team records in the loaded dataset",
	})

	m.datasetContracts = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_contracts",
		Help:      "Number of QB contract records in the loaded dataset",
	})

	m.datasetRookies = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rookie_stars",
		Help:      "Number of rookie-star candidate records in the loaded dataset",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry backing the global manager so the HTTP
// layer can serve it.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordScoringPass records a completed full scoring pass.
func RecordScoringPass(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.scoringPasses.Inc()
	globalManager.scoringPassDuration.Observe(durationMs)
}

// RecordScoringError increments the per-team scoring failure counter.
func RecordScoringError() {
	if !globalManager.enabled {
		return
	}
	globalManager.scoringErrors.Inc()
}

// UpdateTeamsScored sets the number of teams scored in the latest pass.
func UpdateTeamsScored(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.teamsScored.Set(float64(n))
}

// UpdateAlertsGenerated sets the number of alerts produced by the latest pass.
func UpdateAlertsGenerated(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.alertsGenerated.Set(float64(n))
}

// UpdateDatasetSize records the size of the loaded dataset snapshot.
func UpdateDatasetSize(teams, contracts, rookies int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetTeams.Set(float64(teams))
	globalManager.datasetContracts.Set(float64(contracts))
	globalManager.datasetRookies.Set(float64(rookies))
}

// RecordHTTPRequest records an HTTP request by endpoint, method and status.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration by endpoint, method and status.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}
