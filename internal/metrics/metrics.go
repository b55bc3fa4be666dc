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
	PlansIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlansIngested,
			Help: HelpTextPlansIngested,
		},
	)

	QuestsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsIngested,
			Help: HelpTextQuestsIngested,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelDifficulty},
	)

	QuestsRevealed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsRevealed,
			Help: HelpTextQuestsRevealed,
		},
	)

	CompletionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCompletionRejected,
			Help: HelpTextCompletionRejected,
		},
		[]string{LabelReason},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	ExpEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExpEarned,
			Help: HelpTextExpEarned,
		},
	)

	Recoveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecoveries,
			Help: HelpTextRecoveries,
		},
		[]string{LabelAction},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)
)

// Planner Metrics
var (
	PlannerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlannerRequests,
			Help: HelpTextPlannerRequests,
		},
		[]string{LabelPlanner, LabelOutcome},
	)

	PlannerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePlannerDuration,
			Help:    HelpTextPlannerDuration,
			Buckets: PlannerLatencyBuckets,
		},
		[]string{LabelPlanner},
	)
)

// SSEClients tracks connected streaming clients
var SSEClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: MetricNameSSEClients,
		Help: HelpTextSSEClients,
	},
)
