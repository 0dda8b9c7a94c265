package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"likability/internal/structures"
)

type MetricsProviderInterface interface {
	IncDraws(outcome string)
	IncAlreadyDrawn()
	IncPermissionDenied(op string)
	IncPersistenceFailures(doc string)
	ObservePersistenceDuration(duration time.Duration)
	SetRecordsTotal(doc string, count int)
	IncCacheHits()
	IncCacheMisses()
	IncCommands(command string)
	ObserveCommandDuration(command string, duration time.Duration)
}

type MetricsProvider struct {
	drawsTotal          *prometheus.CounterVec
	alreadyDrawn        prometheus.Counter
	permissionDenied    *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	recordsTotal        *prometheus.GaugeVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	commandsTotal       *prometheus.CounterVec
	commandDuration     *prometheus.HistogramVec
}

func (m *MetricsProvider) IncDraws(outcome string) {
	m.drawsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncAlreadyDrawn() {
	m.alreadyDrawn.Inc()
}

func (m *MetricsProvider) IncPermissionDenied(op string) {
	m.permissionDenied.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncPersistenceFailures(doc string) {
	m.persistenceFailures.WithLabelValues(doc).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetRecordsTotal(doc string, count int) {
	m.recordsTotal.WithLabelValues(doc).Set(float64(count))
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncCommands(command string) {
	m.commandsTotal.WithLabelValues(command).Inc()
}

func (m *MetricsProvider) ObserveCommandDuration(command string, duration time.Duration) {
	m.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// DrawOutcome buckets a score delta for the draws counter label.
func DrawOutcome(delta int) string {
	switch {
	case delta > 0:
		return "gain"
	case delta < 0:
		return "loss"
	default:
		return "neutral"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		drawsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "likability_draws_total",
			Help: "Total number of successful daily draws",
		}, []string{"outcome"}),

		alreadyDrawn: promauto.NewCounter(prometheus.CounterOpts{
			Name: "likability_draws_rejected_total",
			Help: "Total number of draws rejected by the once-per-day gate",
		}),

		permissionDenied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "likability_permission_denied_total",
			Help: "Total number of privileged operations rejected",
		}, []string{"op"}),

		persistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "likability_persistence_failures_total",
			Help: "Total number of failed document writes or reads",
		}, []string{"doc"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "likability_persistence_duration_seconds",
			Help:    "Duration of document writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		recordsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "likability_records_total",
			Help: "Number of records per document",
		}, []string{"doc"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "likability_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "likability_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		commandsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "likability_commands_total",
			Help: "Total number of dispatched commands",
		}, []string{"command"}),

		commandDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "likability_command_duration_seconds",
			Help:    "Command handling duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncDraws(_ string)                               {}
func (n *noopMetrics) IncAlreadyDrawn()                                {}
func (n *noopMetrics) IncPermissionDenied(_ string)                    {}
func (n *noopMetrics) IncPersistenceFailures(_ string)                 {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)      {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)                 {}
func (n *noopMetrics) IncCacheHits()                                   {}
func (n *noopMetrics) IncCacheMisses()                                 {}
func (n *noopMetrics) IncCommands(_ string)                            {}
func (n *noopMetrics) ObserveCommandDuration(_ string, _ time.Duration) {}
