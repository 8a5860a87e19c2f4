package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConns  *prometheus.GaugeVec
	dbPoolIdleConns  *prometheus.GaugeVec
	dbPoolInUseConns *prometheus.GaugeVec

	sweepDeletedTotal prometheus.Counter
	sweepRunsTotal    *prometheus.CounterVec
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"kind", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"kind"}),

		dbPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: constLabels,
		}, []string{}),

		dbPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{}),

		dbPoolInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),

		sweepDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "sweep_deleted_schedules_total",
			Help:        "Total number of stale schedules deleted by the sweep",
			ConstLabels: constLabels,
		}),

		sweepRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "sweep_runs_total",
			Help:        "Total number of sweep runs",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}
}

// ObserveHTTPRequest records a completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records a completed database query.
func (m *Metrics) ObserveDBQuery(kind, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(kind, status).Inc()
	m.dbQueryDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// SetPoolStats records the current connection pool state.
func (m *Metrics) SetPoolStats(open, idle, inUse int) {
	m.dbPoolOpenConns.WithLabelValues().Set(float64(open))
	m.dbPoolIdleConns.WithLabelValues().Set(float64(idle))
	m.dbPoolInUseConns.WithLabelValues().Set(float64(inUse))
}

// ObserveSweep records a sweep run and the number of deleted records.
func (m *Metrics) ObserveSweep(deleted int64, err error) {
	if err != nil {
		m.sweepRunsTotal.WithLabelValues("error").Inc()
		return
	}
	m.sweepRunsTotal.WithLabelValues("ok").Inc()
	m.sweepDeletedTotal.Add(float64(deleted))
}
