package metrics

import (
	"context"

	"github.com/osse101/ProjectLife_Go/internal/event"
	"github.com/osse101/ProjectLife_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PlanIngested,
		event.QuestCompleted,
		event.QuestRevealed,
		event.UserLevelUp,
		event.UserRecovered,
		event.UserRegistered,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlanIngested:
		var p event.PlanIngestedPayloadV1
		if p, err = event.DecodePayload[event.PlanIngestedPayloadV1](evt.Payload); err == nil {
			PlansIngested.Inc()
			QuestsIngested.Add(float64(p.QuestCount))
		}

	case event.QuestCompleted:
		var p event.QuestCompletedPayloadV1
		if p, err = event.DecodePayload[event.QuestCompletedPayloadV1](evt.Payload); err == nil {
			QuestsCompleted.WithLabelValues(string(p.Difficulty)).Inc()
			GoldEarned.Add(float64(p.GoldEarned))
			ExpEarned.Add(float64(p.ExpEarned))
		}

	case event.QuestRevealed:
		QuestsRevealed.Inc()

	case event.UserLevelUp:
		var p event.UserLevelUpPayloadV1
		if p, err = event.DecodePayload[event.UserLevelUpPayloadV1](evt.Payload); err == nil {
			LevelUps.Add(float64(p.LevelsGained))
		}

	case event.UserRecovered:
		var p event.UserRecoveredPayloadV1
		if p, err = event.DecodePayload[event.UserRecoveredPayloadV1](evt.Payload); err == nil {
			Recoveries.WithLabelValues(p.Action).Inc()
		}

	case event.UserRegistered:
		UsersRegistered.Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
