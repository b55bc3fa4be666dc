package sse

import (
	"context"

	"github.com/osse101/ProjectLife_Go/internal/event"
	"github.com/osse101/ProjectLife_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers bus handlers for every event type that is streamed
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PlanIngested, relay(s.hub, EventTypePlanIngested,
		func(p event.PlanIngestedPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.QuestCompleted, relay(s.hub, EventTypeQuestCompleted,
		func(p event.QuestCompletedPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.QuestRevealed, relay(s.hub, EventTypeQuestRevealed,
		func(p event.QuestRevealedPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.UserLevelUp, relay(s.hub, EventTypeUserLevelUp,
		func(p event.UserLevelUpPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.UserRecovered, relay(s.hub, EventTypeUserRecovered,
		func(p event.UserRecoveredPayloadV1) string { return p.UserID }))

	logger.Info(LogMsgSubscribed, "types", []string{
		EventTypePlanIngested,
		EventTypeQuestCompleted,
		EventTypeQuestRevealed,
		EventTypeUserLevelUp,
		EventTypeUserRecovered,
	})
}

// relay decodes a bus payload as T and broadcasts it scoped to its user.
// Undecodable payloads are logged and skipped so the bus never retries them.
func relay[T any](hub *Hub, sseType string, userOf func(T) string) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[T](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
			return nil
		}

		userID := userOf(payload)
		hub.Broadcast(sseType, userID, payload)
		logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", sseType, "user_id", userID)
		return nil
	}
}
