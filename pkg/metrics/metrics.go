package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "medflow",
		Subsystem: "insights",
		Name:      "compute_duration_seconds",
		Help:      "Duration of a full analytics pass over one project.",
		Buckets:   prometheus.DefBuckets,
	})

	alertsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medflow",
		Subsystem: "insights",
		Name:      "alerts_emitted_total",
		Help:      "Alerts emitted after suppression, by type and severity.",
	}, []string{"type", "severity"})

	suppressionOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medflow",
		Subsystem: "insights",
		Name:      "suppression_ops_total",
		Help:      "Acknowledge, clear and snooze operations.",
	}, []string{"op"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medflow",
		Subsystem: "insights",
		Name:      "cache_requests_total",
		Help:      "Result cache lookups, by outcome.",
	}, []string{"outcome"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medflow",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// RecordCompute observes one analytics pass.
func RecordCompute(d time.Duration) {
	computeDuration.Observe(d.Seconds())
}

// RecordAlert counts one emitted alert.
func RecordAlert(alertType, severity string) {
	alertsEmitted.WithLabelValues(alertType, severity).Inc()
}

// RecordSuppressionOp counts one ack, clear or snooze.
func RecordSuppressionOp(op string) {
	suppressionOps.WithLabelValues(op).Inc()
}

// RecordCacheHit counts a result cache hit or miss.
func RecordCacheHit(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	cacheHits.WithLabelValues(outcome).Inc()
}

// RecordHTTP observes one handled request.
func RecordHTTP(method, route, status string, d time.Duration) {
	httpDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
