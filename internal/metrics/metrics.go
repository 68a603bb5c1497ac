package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "laboral"

// Booking outcomes
const (
	OutcomeCreated             = "created"
	OutcomeInvalidRange        = "invalid_range"
	OutcomeNoBusinessDays      = "no_business_days"
	OutcomeInsufficientBalance = "insufficient_balance"
	OutcomeOverlap             = "overlap"
	OutcomeStoreFailure        = "store_failure"
)

var (
	// Registry is the process registry served at /metrics
	Registry = prometheus.NewRegistry()

	VacationBookings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vacation",
		Name:      "booking_requests_total",
		Help:      "Vacation booking requests by outcome.",
	}, []string{"outcome"})

	VacationDaysBooked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vacation",
		Name:      "business_days_booked_total",
		Help:      "Business days reserved by successful bookings.",
	})

	HolidayLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "holiday",
		Name:      "lookups_total",
		Help:      "Holiday lookups by the origin that served them (remote, cache, fallback).",
	}, []string{"origin"})

	HolidaySourceErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "holiday",
		Name:      "source_errors_total",
		Help:      "Failed calls to the remote holiday source.",
	})

	AssistantRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "assistant",
		Name:      "requests_total",
		Help:      "Assistant completions by kind and result.",
	}, []string{"kind", "result"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		VacationBookings,
		VacationDaysBooked,
		HolidayLookups,
		HolidaySourceErrors,
		AssistantRequests,
	)
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
