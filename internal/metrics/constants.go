package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePerformancesSubmitted = "match_performances_submitted_total"
	MetricNameOutcomesComputed      = "monthly_outcomes_computed_total"
	MetricNameApplicationsReceived  = "recruitment_applications_received_total"
	MetricNameAttendanceFlagged     = "attendance_low_rate_flags_total"
	MetricNameSurplusDistributed    = "team_surplus_distributed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPerformancesSubmitted = "Total number of match performances submitted"
	HelpTextOutcomesComputed      = "Total number of monthly outcomes computed"
	HelpTextApplicationsReceived  = "Total number of recruitment applications received"
	HelpTextAttendanceFlagged     = "Total number of low attendance flags raised"
	HelpTextSurplusDistributed    = "Total surplus amount distributed to teams"
)

// Common label names used across metrics
const (
	LabelMethod       = "method"
	LabelPath         = "path"
	LabelStatus       = "status"
	LabelType         = "type"
	LabelGame         = "game"
	LabelStatusUpdate = "status_update"
	LabelTier         = "tier"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
