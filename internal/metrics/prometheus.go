package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder exposes application metrics through a dedicated
// Prometheus registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	usersRegistered  prometheus.Counter
	exercisesAdded   prometheus.Counter
	logQueries       prometheus.Counter
	logCacheHits     prometheus.Counter
	logCacheMisses   prometheus.Counter
	logQueryDuration prometheus.Histogram
}

// NewPrometheus returns a Recorder backed by Prometheus collectors.
func NewPrometheus() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exertrack_users_registered_total",
			Help: "Total number of new users created.",
		}),
		exercisesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exertrack_exercises_added_total",
			Help: "Total number of exercises appended to user logs.",
		}),
		logQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exertrack_log_queries_total",
			Help: "Total number of exercise log queries served.",
		}),
		logCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exertrack_log_cache_hits_total",
			Help: "Log queries served from the Redis log view cache.",
		}),
		logCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exertrack_log_cache_misses_total",
			Help: "Log queries that fell through to PostgreSQL.",
		}),
		logQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "exertrack_log_query_duration_seconds",
			Help:    "End-to-end duration of exercise log queries.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}

	r.registry.MustRegister(
		r.usersRegistered,
		r.exercisesAdded,
		r.logQueries,
		r.logCacheHits,
		r.logCacheMisses,
		r.logQueryDuration,
	)

	return r
}

// Handler returns an HTTP handler serving the exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// IncUserRegistered increments the registered-user counter.
func (r *PrometheusRecorder) IncUserRegistered() {
	r.usersRegistered.Inc()
}

// IncExerciseAdded increments the appended-exercise counter.
func (r *PrometheusRecorder) IncExerciseAdded() {
	r.exercisesAdded.Inc()
}

// IncLogQuery increments the log query counter.
func (r *PrometheusRecorder) IncLogQuery() {
	r.logQueries.Inc()
}

// IncLogCacheHit increments the cache hit counter.
func (r *PrometheusRecorder) IncLogCacheHit() {
	r.logCacheHits.Inc()
}

// IncLogCacheMiss increments the cache miss counter.
func (r *PrometheusRecorder) IncLogCacheMiss() {
	r.logCacheMisses.Inc()
}

// ObserveLogQueryDuration records query duration.
func (r *PrometheusRecorder) ObserveLogQueryDuration(duration time.Duration) {
	r.logQueryDuration.Observe(duration.Seconds())
}
