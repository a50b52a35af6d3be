package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by route template, method and status code.",
	}, []string{"route", "method", "status"})
	httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route template and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "logged_total",
		Help:      "Exercises successfully stored.",
	})
	logEntriesServed = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "exercise_tracker",
		Subsystem: "logs",
		Name:      "entries_returned",
		Help:      "Number of entries returned per log query.",
		Buckets:   []float64{0, 1, 5, 10, 30, 100, 500},
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpLatency, exercisesLogged, logEntriesServed)
}

// ObserveHTTPRequest records one finished request. route is the matched
// template (e.g. /api/users/:id/logs), never the raw path.
func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordExerciseLogged counts a stored exercise.
func RecordExerciseLogged() {
	exercisesLogged.Inc()
}

// RecordLogQuery records the size of a served log.
func RecordLogQuery(entries int) {
	logEntriesServed.Observe(float64(entries))
}
