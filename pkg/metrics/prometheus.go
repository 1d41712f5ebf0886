// Package metrics provides Prometheus metrics for the course recommendation service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the recommendation service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for a recommender
	queriesServed      prometheus.Counter
	queryLatency       prometheus.Histogram
	resultsReturned    prometheus.Histogram
	emptyResults       prometheus.Counter
	invalidQueries     prometheus.Counter
	invalidFilters     prometheus.Counter
	topSimilarityScore prometheus.Histogram

	// Catalog Metrics - Scale of the loaded dataset
	catalogCourses  prometheus.Gauge
	catalogDropped  prometheus.Gauge
	vocabularyTerms prometheus.Gauge
	catalogLoadMs   prometheus.Gauge
	vectorizerFitMs prometheus.Gauge

	// Feedback Metrics
	feedbackSubmitted prometheus.Counter
	feedbackDuplicate prometheus.Counter
	feedbackDropped   prometheus.Counter
	feedbackWritten   prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
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
		namespace:        "courserec",
		subsystem:        "ranker",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // metric declarations are long by nature
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.queriesServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queries_served_total",
		Help:      "Total number of recommendation queries answered",
	})

	m.queryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_latency_milliseconds",
		Help:      "Histogram of end-to-end recommendation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.resultsReturned = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_returned",
		Help:      "Histogram of result counts per query after filtering",
		Buckets:   []float64{0, 1, 2, 3, 5, 10, 20, 50, 100},
	})

	m.emptyResults = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_results_total",
		Help:      "Total number of queries that matched no courses",
	})

	m.invalidQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_queries_total",
		Help:      "Total number of queries rejected for empty text",
	})

	m.invalidFilters = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_filters_total",
		Help:      "Total number of queries rejected for bad filter values",
	})

	m.topSimilarityScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "top_similarity_score",
		Help:      "Histogram of the best similarity score per non-empty result set",
		Buckets:   []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	})

	// Catalog Metrics
	m.catalogCourses = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_courses",
		Help:      "Number of usable courses in the loaded catalog",
	})

	m.catalogDropped = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_dropped_rows",
		Help:      "Number of malformed rows dropped during catalog load",
	})

	m.vocabularyTerms = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vocabulary_terms",
		Help:      "Size of the fitted TF-IDF vocabulary",
	})

	m.catalogLoadMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_load_milliseconds",
		Help:      "Wall time of the last catalog load in milliseconds",
	})

	m.vectorizerFitMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vectorizer_fit_milliseconds",
		Help:      "Wall time of the last vectorizer fit in milliseconds",
	})

	// Feedback Metrics
	m.feedbackSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feedback_submitted_total",
		Help:      "Total number of feedback messages accepted",
	})

	m.feedbackDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feedback_duplicate_total",
		Help:      "Total number of duplicate feedback messages suppressed",
	})

	m.feedbackDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feedback_dropped_total",
		Help:      "Total number of feedback messages dropped on backpressure",
	})

	m.feedbackWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feedback_written_total",
		Help:      "Total number of feedback rows persisted to disk",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
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

	// Enhanced Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total errors by component and error type",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total errors by error type and severity",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total errors by endpoint and method",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System Performance Metrics
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

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordQueryServed increments the queries served counter.
func RecordQueryServed() {
	globalManager.queriesServed.Inc()
}

// RecordQueryLatency records end-to-end recommendation latency in milliseconds.
func RecordQueryLatency(latencyMs float64) {
	globalManager.queryLatency.Observe(latencyMs)
}

// RecordResultsReturned records the result count of a query.
func RecordResultsReturned(count int) {
	globalManager.resultsReturned.Observe(float64(count))
}

// RecordEmptyResult increments the empty results counter.
func RecordEmptyResult() {
	globalManager.emptyResults.Inc()
}

// RecordInvalidQuery increments the invalid query counter.
func RecordInvalidQuery() {
	globalManager.invalidQueries.Inc()
}

// RecordInvalidFilter increments the invalid filter counter.
func RecordInvalidFilter() {
	globalManager.invalidFilters.Inc()
}

// RecordTopSimilarityScore records the best score of a non-empty result set.
func RecordTopSimilarityScore(score float64) {
	globalManager.topSimilarityScore.Observe(score)
}

// UpdateCatalogCourses sets the number of usable courses.
func UpdateCatalogCourses(count int) {
	globalManager.catalogCourses.Set(float64(count))
}

// UpdateCatalogDroppedRows sets the number of dropped rows.
func UpdateCatalogDroppedRows(count int) {
	globalManager.catalogDropped.Set(float64(count))
}

// UpdateVocabularyTerms sets the fitted vocabulary size.
func UpdateVocabularyTerms(count int) {
	globalManager.vocabularyTerms.Set(float64(count))
}

// UpdateCatalogLoadDuration sets the last catalog load duration.
func UpdateCatalogLoadDuration(ms float64) {
	globalManager.catalogLoadMs.Set(ms)
}

// UpdateVectorizerFitDuration sets the last vectorizer fit duration.
func UpdateVectorizerFitDuration(ms float64) {
	globalManager.vectorizerFitMs.Set(ms)
}

// RecordFeedbackSubmitted increments the feedback accepted counter.
func RecordFeedbackSubmitted() {
	globalManager.feedbackSubmitted.Inc()
}

// RecordFeedbackDuplicate increments the duplicate feedback counter.
func RecordFeedbackDuplicate() {
	globalManager.feedbackDuplicate.Inc()
}

// RecordFeedbackDropped increments the dropped feedback counter.
func RecordFeedbackDropped() {
	globalManager.feedbackDropped.Inc()
}

// RecordFeedbackWritten increments the persisted feedback counter.
func RecordFeedbackWritten() {
	globalManager.feedbackWritten.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error for a specific component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error for a specific endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records a GC pause observation.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
