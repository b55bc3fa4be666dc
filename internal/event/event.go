package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Progression event types
const (
	PlanIngested   Type = domain.EventTypePlanIngested
	QuestCompleted Type = domain.EventTypeQuestCompleted
	QuestRevealed  Type = domain.EventTypeQuestRevealed
	UserLevelUp    Type = domain.EventTypeUserLevelUp
	UserRecovered  Type = domain.EventTypeUserRecovered
	UserRegistered Type = domain.EventTypeUserRegistered
)

// Typed event payloads for type safety

// PlanIngestedPayloadV1 is published when a goal plan becomes a chain
type PlanIngestedPayloadV1 struct {
	UserID     string `json:"user_id"`
	ChainID    string `json:"chain_id"`
	QuestCount int    `json:"quest_count"`
	FirstQuest string `json:"first_quest_id"`
}

// QuestCompletedPayloadV1 is published after a completion is committed
type QuestCompletedPayloadV1 struct {
	UserID     string            `json:"user_id"`
	QuestID    string            `json:"quest_id"`
	ChainID    string            `json:"chain_id"`
	Title      string            `json:"title"`
	Difficulty domain.Difficulty `json:"difficulty"`
	GoldEarned int               `json:"gold_earned"`
	ExpEarned  int               `json:"exp_earned"`
	SPSpent    int               `json:"sp_spent"`
	Status     domain.Status     `json:"status"`
}

// QuestRevealedPayloadV1 is published when the next step of a chain becomes visible
type QuestRevealedPayloadV1 struct {
	UserID  string `json:"user_id"`
	QuestID string `json:"quest_id"`
	ChainID string `json:"chain_id"`
	Step    int    `json:"step"`
	Title   string `json:"title"`
}

// UserLevelUpPayloadV1 is published when a reward crosses one or more levels
type UserLevelUpPayloadV1 struct {
	UserID       string `json:"user_id"`
	OldLevel     int    `json:"old_level"`
	NewLevel     int    `json:"new_level"`
	LevelsGained int    `json:"levels_gained"`
	MaxExp       int    `json:"max_exp"`
}

// UserRecoveredPayloadV1 is published after rest, meditation or a senzu bean
type UserRecoveredPayloadV1 struct {
	UserID     string        `json:"user_id"`
	Action     string        `json:"action"`
	HPRestored int           `json:"hp_restored"`
	SPRestored int           `json:"sp_restored"`
	Status     domain.Status `json:"status"`
}

// UserRegisteredPayloadV1 is published when a user is created
type UserRegisteredPayloadV1 struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewPlanIngestedEvent creates a quest.plan_ingested event
func NewPlanIngestedEvent(userID, chainID string, quests []domain.Quest) Event {
	p := PlanIngestedPayloadV1{UserID: userID, ChainID: chainID, QuestCount: len(quests)}
	for _, q := range quests {
		if q.IsVisible {
			p.FirstQuest = q.ID
			break
		}
	}
	return newEvent(PlanIngested, p)
}

// NewQuestCompletedEvent creates a quest.completed event
func NewQuestCompletedEvent(user domain.User, quest domain.Quest, reward domain.RewardResult) Event {
	return newEvent(QuestCompleted, QuestCompletedPayloadV1{
		UserID:     user.ID,
		QuestID:    quest.ID,
		ChainID:    quest.ChainID,
		Title:      quest.Title,
		Difficulty: quest.Difficulty,
		GoldEarned: reward.GoldEarned,
		ExpEarned:  reward.ExpEarned,
		SPSpent:    reward.SPSpent,
		Status:     user.Status,
	})
}

// NewQuestRevealedEvent creates a quest.revealed event
func NewQuestRevealedEvent(quest domain.Quest) Event {
	return newEvent(QuestRevealed, QuestRevealedPayloadV1{
		UserID:  quest.UserID,
		QuestID: quest.ID,
		ChainID: quest.ChainID,
		Step:    quest.Step,
		Title:   quest.Title,
	})
}

// NewUserLevelUpEvent creates a user.level_up event
func NewUserLevelUpEvent(userID string, reward domain.RewardResult) Event {
	return newEvent(UserLevelUp, UserLevelUpPayloadV1{
		UserID:       userID,
		OldLevel:     reward.OldLevel,
		NewLevel:     reward.NewLevel,
		LevelsGained: reward.LevelsGained,
		MaxExp:       reward.MaxExp,
	})
}

// NewUserRecoveredEvent creates a user.recovered event
func NewUserRecoveredEvent(result domain.RecoveryResult) Event {
	return newEvent(UserRecovered, UserRecoveredPayloadV1{
		UserID:     result.User.ID,
		Action:     result.Action,
		HPRestored: result.HPRestored,
		SPRestored: result.SPRestored,
		Status:     result.StatusAfter,
	})
}

// NewUserRegisteredEvent creates a user.registered event
func NewUserRegisteredEvent(user domain.User) Event {
	return newEvent(UserRegistered, UserRegisteredPayloadV1{
		UserID:   user.ID,
		Username: user.Username,
		At:       user.CreatedAt,
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for publishing and subscribing to events
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event's type, synchronously and in
// subscription order. Handler errors are collected and returned together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
