// Package metrics provides Prometheus metrics for the issue matching service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	// Upstream platform metrics
	githubCalls       *prometheus.CounterVec
	githubCallLatency *prometheus.HistogramVec

	// Matching pipeline metrics
	issuesRetrieved  prometheus.Counter
	issuesScored     prometheus.Counter
	duplicateIssues  prometheus.Counter
	matchesReturned  prometheus.Histogram
	profilesAnalyzed prometheus.Counter
	analysisFailures prometheus.Counter
	matchingLatency  prometheus.Histogram

	// Error metrics
	errorsByComponent *prometheus.CounterVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "skillissue",
		subsystem:        "matcher",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_in_flight_requests",
		Help:      "Number of HTTP requests currently being served",
	})

	m.githubCalls = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "github_api_calls_total",
			Help:      "Total number of GitHub API calls by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	m.githubCallLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "github_api_call_latency_milliseconds",
			Help:      "GitHub API call latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"operation"},
	)

	m.issuesRetrieved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "issues_retrieved_total",
		Help:      "Total number of candidate issues retrieved from the platform",
	})

	m.issuesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "issues_scored_total",
		Help:      "Total number of issues scored by the ranker",
	})

	m.duplicateIssues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_issues_total",
		Help:      "Total number of duplicate issues dropped during deduplication",
	})

	m.matchesReturned = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_returned",
		Help:      "Number of matched issues returned per request",
		Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
	})

	m.profilesAnalyzed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_analyzed_total",
		Help:      "Total number of user profiles analyzed successfully",
	})

	m.analysisFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_failures_total",
		Help:      "Total number of failed user profile analyses",
	})

	m.matchingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matching_latency_milliseconds",
		Help:      "End-to-end matching latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// IncHTTPInFlight increments the in-flight request gauge.
func IncHTTPInFlight() {
	globalManager.httpInFlight.Inc()
}

// DecHTTPInFlight decrements the in-flight request gauge.
func DecHTTPInFlight() {
	globalManager.httpInFlight.Dec()
}

// RecordGitHubCall records a GitHub API call with its outcome.
func RecordGitHubCall(operation, status string) {
	globalManager.githubCalls.WithLabelValues(operation, status).Inc()
}

// RecordGitHubCallLatency records GitHub API call latency in milliseconds.
func RecordGitHubCallLatency(operation string, latencyMs float64) {
	globalManager.githubCallLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordIssuesRetrieved adds to the retrieved issues counter.
func RecordIssuesRetrieved(n int) {
	globalManager.issuesRetrieved.Add(float64(n))
}

// RecordIssuesScored adds to the scored issues counter.
func RecordIssuesScored(n int) {
	globalManager.issuesScored.Add(float64(n))
}

// RecordDuplicateIssues adds to the duplicate issues counter.
func RecordDuplicateIssues(n int) {
	globalManager.duplicateIssues.Add(float64(n))
}

// RecordMatchesReturned observes the number of matches returned for a request.
func RecordMatchesReturned(n int) {
	globalManager.matchesReturned.Observe(float64(n))
}

// RecordProfileAnalyzed increments the analyzed profiles counter.
func RecordProfileAnalyzed() {
	globalManager.profilesAnalyzed.Inc()
}

// RecordAnalysisFailure increments the failed analyses counter.
func RecordAnalysisFailure() {
	globalManager.analysisFailures.Inc()
}

// RecordMatchingLatency records end-to-end matching latency in milliseconds.
func RecordMatchingLatency(latencyMs float64) {
	globalManager.matchingLatency.Observe(latencyMs)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
