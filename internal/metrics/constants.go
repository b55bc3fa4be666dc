package metrics

// ============================================================================
// Metric Names
// ============================================================================

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
	MetricNamePlansIngested      = "plans_ingested_total"
	MetricNameQuestsIngested     = "quests_ingested_total"
	MetricNameQuestsCompleted    = "quests_completed_total"
	MetricNameQuestsRevealed     = "quests_revealed_total"
	MetricNameCompletionRejected = "quest_completions_rejected_total"
	MetricNameLevelUps           = "level_ups_total"
	MetricNameGoldEarned         = "gold_earned_total"
	MetricNameExpEarned          = "exp_earned_total"
	MetricNameRecoveries         = "recoveries_total"
	MetricNameUsersRegistered    = "users_registered_total"
	MetricNamePlannerRequests    = "planner_requests_total"
	MetricNamePlannerDuration    = "planner_request_duration_seconds"
	MetricNameSSEClients         = "sse_clients_connected"
)

// ============================================================================
// Metric Help Text
// ============================================================================

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
	HelpTextPlansIngested      = "Total number of goal plans turned into quest chains"
	HelpTextQuestsIngested     = "Total number of quests created from goal plans"
	HelpTextQuestsCompleted    = "Total number of quests completed"
	HelpTextQuestsRevealed     = "Total number of hidden quests revealed"
	HelpTextCompletionRejected = "Total number of rejected quest completions"
	HelpTextLevelUps           = "Total number of levels gained"
	HelpTextGoldEarned         = "Total gold earned from quests"
	HelpTextExpEarned          = "Total exp earned from quests"
	HelpTextRecoveries         = "Total number of recovery actions"
	HelpTextUsersRegistered    = "Total number of registered users"
	HelpTextPlannerRequests    = "Total number of planner requests"
	HelpTextPlannerDuration    = "Planner latency in seconds"
	HelpTextSSEClients         = "Current number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelDifficulty = "difficulty"
	LabelReason     = "reason"
	LabelAction     = "action"
	LabelPlanner    = "planner"
	LabelOutcome    = "outcome"
)

// Planner outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeFallback = "fallback"
)

// unmatchedRoute labels requests that no chi route matched
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PlannerLatencyBuckets covers remote model calls, which take seconds
var PlannerLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 20, 30, 60}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
