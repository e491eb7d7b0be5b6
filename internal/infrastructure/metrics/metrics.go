package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "repair_intake"

var (
	once sync.Once

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Count of repair request submissions by appointment outcome.",
		},
		[]string{"outcome"},
	)

	reservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_reservations_total",
			Help:      "Count of slot reservation attempts by result.",
		},
		[]string{"result"},
	)

	releases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_releases_total",
			Help:      "Count of slot releases by result.",
		},
		[]string{"result"},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Count of repair request status transitions by target status.",
		},
		[]string{"status"},
	)

	httpRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(submissions, reservations, releases, transitions, httpRequests)
	})
}

func IncSubmission(outcome string) {
	submissions.WithLabelValues(outcome).Inc()
}

func IncReservation(result string) {
	reservations.WithLabelValues(result).Inc()
}

func IncRelease(result string) {
	releases.WithLabelValues(result).Inc()
}

func IncTransition(status string) {
	transitions.WithLabelValues(status).Inc()
}

func ObserveHTTPRequest(method, route, code string, seconds float64) {
	httpRequests.WithLabelValues(method, route, code).Observe(seconds)
}
