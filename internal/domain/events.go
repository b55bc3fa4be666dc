package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "quest.completed")
const (
	// EventTypePlanIngested is published when a goal plan becomes a quest chain
	EventTypePlanIngested = "quest.plan_ingested"

	// EventTypeQuestCompleted is published after a quest completion is committed
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeQuestRevealed is published when the next step of a chain becomes visible
	EventTypeQuestRevealed = "quest.revealed"

	// EventTypeUserLevelUp is published when a reward pushes a user past one or more levels
	EventTypeUserLevelUp = "user.level_up"

	// EventTypeUserRecovered is published after rest, meditation or a senzu bean
	EventTypeUserRecovered = "user.recovered"

	// EventTypeUserRegistered is published when a new user is created
	EventTypeUserRegistered = "user.registered"
)
