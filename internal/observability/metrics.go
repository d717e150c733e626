package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Store operation outcomes
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeConstraint = "constraint"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

var (
	storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Entity store operations by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})
	cascadeDeletes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "store",
		Name:      "cascade_deleted_rows_total",
		Help:      "WorkoutExercise rows removed while deleting their parent.",
	}, []string{"parent"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "liftlog",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(storeOperations, cascadeDeletes, httpRequests, httpLatency)
}

// RecordStoreOperation counts one entity store call
func RecordStoreOperation(entity, operation, outcome string) {
	storeOperations.WithLabelValues(entity, operation, outcome).Inc()
}

// RecordCascade counts association rows removed alongside a parent delete
func RecordCascade(parent string, removed int64) {
	if removed <= 0 {
		return
	}
	cascadeDeletes.WithLabelValues(parent).Add(float64(removed))
}

// RecordHTTPRequest observes one completed HTTP request
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
