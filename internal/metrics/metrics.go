package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contentops_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	webhookDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentops_webhook_dispatch_total",
			Help: "Webhook triggers by path and outcome",
		},
		[]string{"path", "outcome"},
	)
	webhookEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentops_webhook_enqueued_total",
			Help: "Webhook triggers accepted from the API",
		},
		[]string{"path"},
	)
	activityWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentops_activity_log_total",
			Help: "Activity log rows written by entity and action",
		},
		[]string{"entity", "action"},
	)
)

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RecordDispatch counts a delivered webhook; err nil means success.
func RecordDispatch(path string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	webhookDispatches.WithLabelValues(path, outcome).Inc()
}

func RecordEnqueued(path string) {
	webhookEnqueued.WithLabelValues(path).Inc()
}

func RecordActivity(entity, action string) {
	activityWrites.WithLabelValues(entity, action).Inc()
}
