// Package metrics provides Prometheus metrics for the gigmatch service.
package metrics

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

var knownTiers = map[string]struct{}{"Perfect": {}, "Great": {}, "Good": {}, "Fair": {}}

// Manager owns the Prometheus collectors of the service.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	registry       prometheus.Registerer

	// mu guards refreshInterval, which may change after registration.
	mu              sync.Mutex
	refreshInterval time.Duration

	// Matching
	searches        prometheus.Counter
	searchErrors    *prometheus.CounterVec
	listingsScored  prometheus.Counter
	searchLatency   prometheus.Histogram
	searchResults   prometheus.Histogram
	recommendations *prometheus.CounterVec

	// Listing pool
	catalogListings prometheus.Gauge
	repoLatency     *prometheus.HistogramVec
	duplicates      prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Runtime
	memoryUsage    prometheus.Gauge
	goroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "gigmatch",
		subsystem:       "matcher",
		latencyBuckets:  []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
		refreshInterval: defaultRefreshInterval,
		registry:        prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.searches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Total number of completed searches",
	})

	m.searchErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_errors_total",
		Help:      "Total number of failed searches by error kind",
	}, []string{"kind"})

	m.listingsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "listings_scored_total",
		Help:      "Total number of listings offered to the engine",
	})

	m.searchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_latency_milliseconds",
		Help:      "End-to-end search latency in milliseconds",
		Buckets:   m.latencyBuckets,
	})

	m.searchResults = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_results",
		Help:      "Number of ranked listings returned per search",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	m.recommendations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_total",
		Help:      "Total number of returned listings by recommendation tier",
	}, []string{"tier"})

	m.catalogListings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_listings",
		Help:      "Number of listings held by the in-memory catalog",
	})

	m.repoLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repository_query_latency_milliseconds",
		Help:      "Project repository query latency in milliseconds",
		Buckets:   m.latencyBuckets,
	}, []string{"backend"})

	m.duplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "listings_duplicate_total",
		Help:      "Listings dropped because their id was already in the pool",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.latencyBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of errors by endpoint",
	}, []string{"endpoint", "method", "error_type"})

	m.memoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Heap memory in use in bytes",
	})

	m.goroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordSearch records one successful search.
func (m *Manager) RecordSearch(scored, returned int, latencyMs float64) {
	m.searches.Inc()
	m.listingsScored.Add(float64(scored))
	m.searchLatency.Observe(latencyMs)
	m.searchResults.Observe(float64(returned))
}

// RecordSearchError records one failed search by kind.
func (m *Manager) RecordSearchError(kind string) {
	m.searchErrors.WithLabelValues(kind).Inc()
}

// RecordRecommendation counts one returned listing of tier.
func (m *Manager) RecordRecommendation(tier string) error {
	if _, ok := knownTiers[tier]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	m.recommendations.WithLabelValues(tier).Inc()
	return nil
}

// SetCatalogListings sets the catalog size gauge.
func (m *Manager) SetCatalogListings(n int) {
	m.catalogListings.Set(float64(n))
}

// RecordRepositoryQuery records a repository query latency.
func (m *Manager) RecordRepositoryQuery(backend string, latencyMs float64) {
	m.repoLatency.WithLabelValues(backend).Observe(latencyMs)
}

// RecordDuplicateListing counts a listing dropped as a duplicate.
func (m *Manager) RecordDuplicateListing() {
	m.duplicates.Inc()
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// SampleRuntime updates the memory and goroutine gauges.
func (m *Manager) SampleRuntime() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.memoryUsage.Set(float64(ms.HeapInuse))
	m.goroutineCount.Set(float64(runtime.NumGoroutine()))
}

// SetRefreshInterval changes the sampling period used by the next
// RunRuntimeSampler call. Non-positive values are ignored.
func (m *Manager) SetRefreshInterval(interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	WithRefreshInterval(interval)(m)
}

// RefreshInterval returns the runtime sampling period.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshInterval
}

// RunRuntimeSampler samples runtime gauges until ctx is done.
func (m *Manager) RunRuntimeSampler(ctx context.Context) {
	t := time.NewTicker(m.RefreshInterval())
	defer t.Stop()
	m.SampleRuntime()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.SampleRuntime()
		}
	}
}

// Package-level helpers delegate to the global manager.

// RecordSearch records one successful search.
func RecordSearch(scored, returned int, latencyMs float64) {
	globalManager.RecordSearch(scored, returned, latencyMs)
}

// RecordSearchError records one failed search by kind.
func RecordSearchError(kind string) { globalManager.RecordSearchError(kind) }

// RecordRecommendation counts one returned listing of tier.
func RecordRecommendation(tier string) error { return globalManager.RecordRecommendation(tier) }

// SetCatalogListings sets the catalog size gauge.
func SetCatalogListings(n int) { globalManager.SetCatalogListings(n) }

// RecordRepositoryQuery records a repository query latency.
func RecordRepositoryQuery(backend string, latencyMs float64) {
	globalManager.RecordRepositoryQuery(backend, latencyMs)
}

// RecordDuplicateListing counts a listing dropped as a duplicate.
func RecordDuplicateListing() { globalManager.RecordDuplicateListing() }

// RecordHTTPRequest records an HTTP request and its duration.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// RunRuntimeSampler samples runtime gauges of the global manager until ctx is done.
func RunRuntimeSampler(ctx context.Context) { globalManager.RunRuntimeSampler(ctx) }

// SetRefreshInterval changes the sampling period of the global manager.
func SetRefreshInterval(interval time.Duration) { globalManager.SetRefreshInterval(interval) }

// RefreshInterval returns the sampling period of the global manager.
func RefreshInterval() time.Duration { return globalManager.RefreshInterval() }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
