package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roasguy_orders_created_total",
			Help: "Number of Razorpay orders created",
		},
	)

	PaymentsVerified = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roasguy_payments_verified_total",
			Help: "Number of payment confirmations that passed signature verification",
		},
	)

	SignatureFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roasguy_signature_failures_total",
			Help: "Number of payment confirmations rejected for a bad signature",
		},
	)

	EnrollmentJobsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roasguy_enrollment_jobs_dropped_total",
			Help: "Number of enrollment jobs dropped because the work queue was full",
		},
	)

	EnrollmentOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roasguy_enrollments_total",
			Help: "Enrollment flow outcomes by result",
		},
		[]string{"result"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roasguy_http_requests_total",
			Help: "HTTP requests by method, path and status class",
		},
		[]string{"method", "path", "status"},
	)

	HTTPLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "roasguy_http_request_duration_seconds",
			Help: "Time taken to serve HTTP requests",
		},
	)
)

func Register() {
	prometheus.MustRegister(
		OrdersCreated,
		PaymentsVerified,
		SignatureFailures,
		EnrollmentJobsDropped,
		EnrollmentOutcomes,
		HTTPRequests,
		HTTPLatency,
	)
}
