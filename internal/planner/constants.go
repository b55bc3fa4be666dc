package planner

import "time"

// Planner names used in logs and metric labels
const (
	NameGemini  = "gemini"
	NameOffline = "offline"
)

// Model defaults
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTimeout     = 30 * time.Second
	ResponseMIMEType   = "application/json"
)

// Plan shape requested from the model
const (
	MinSteps  = 3
	MaxSteps  = 5
	MaxSPCost = 50
)

// Goal limits
const (
	MaxGoalLength = 500
	// OfflineGoalPreview is how many runes of the goal the offline plan quotes
	OfflineGoalPreview = 10
	goalEllipsis       = "..."
)

// Log messages
const (
	LogMsgPlanGenerated = "Goal plan generated"
	LogMsgPlannerFailed = "Planner failed, using offline plan"
)
