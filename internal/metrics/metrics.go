package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PerformancesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePerformancesSubmitted,
			Help: HelpTextPerformancesSubmitted,
		},
		[]string{LabelGame},
	)

	OutcomesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutcomesComputed,
			Help: HelpTextOutcomesComputed,
		},
		[]string{LabelStatusUpdate, LabelTier},
	)

	ApplicationsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameApplicationsReceived,
			Help: HelpTextApplicationsReceived,
		},
		[]string{LabelGame},
	)

	AttendanceFlagged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAttendanceFlagged,
			Help: HelpTextAttendanceFlagged,
		},
	)

	SurplusDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSurplusDistributed,
			Help: HelpTextSurplusDistributed,
		},
	)
)
