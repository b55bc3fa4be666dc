package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ProjectLife_Go/internal/concurrency"
	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/event"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/metrics"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// Engine turns goal plans into quest chains and settles quest completions
type Engine interface {
	IngestGoalPlan(ctx context.Context, userID string, steps []domain.PlanStep) ([]domain.Quest, error)
	CompleteQuest(ctx context.Context, userID, questID string) (*domain.CompletionResult, error)
	DeriveStatus(hp, sp int) domain.Status

	// Views
	ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error)
	GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error)
}

// UserCacheInvalidator drops cached copies of a user after the engine changes it
type UserCacheInvalidator interface {
	InvalidateUser(userID string)
}

type engine struct {
	repo      repository.Progression
	locks     *concurrency.LockManager
	publisher *event.ResilientPublisher
	cache     UserCacheInvalidator

	newID func() string
	now   func() time.Time
}

// NewEngine creates a progression engine. locks must be shared with every other
// service that mutates users. publisher and cache may be nil.
func NewEngine(repo repository.Progression, locks *concurrency.LockManager, publisher *event.ResilientPublisher, cache UserCacheInvalidator) Engine {
	return &engine{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
		cache:     cache,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

func (e *engine) DeriveStatus(hp, sp int) domain.Status {
	return DeriveStatus(hp, sp)
}

// IngestGoalPlan appends the plan to the user's quests as a new chain.
// An empty plan is not an error and changes nothing.
func (e *engine) IngestGoalPlan(ctx context.Context, userID string, steps []domain.PlanStep) ([]domain.Quest, error) {
	ctx = logger.WithUser(ctx, userID)
	log := logger.FromContext(ctx)

	unlock := e.locks.Lock(userID)
	defer unlock()

	if _, err := e.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	chainID := e.newID()
	quests := BuildChain(userID, chainID, steps, e.newID, e.now())
	if len(quests) == 0 {
		log.Info(LogMsgPlanEmpty, "steps", len(steps))
		return quests, nil
	}

	if err := e.repo.InsertQuests(ctx, quests); err != nil {
		return nil, fmt.Errorf("failed to insert quests: %w", err)
	}

	log.Info(LogMsgPlanIngested, "chain_id", chainID, "quests", len(quests))
	e.publisher.PublishWithRetry(ctx, event.NewPlanIngestedEvent(userID, chainID, quests))

	return quests, nil
}

// CompleteQuest completes questID for userID, pays its reward and reveals the
// next step of its chain. All writes happen in one transaction.
func (e *engine) CompleteQuest(ctx context.Context, userID, questID string) (*domain.CompletionResult, error) {
	ctx = logger.WithUser(ctx, userID)
	log := logger.FromContext(ctx)

	unlock := e.locks.Lock(userID)
	defer unlock()

	completion, err := e.completeTx(ctx, userID, questID)
	if err != nil {
		reason := rejectReason(err)
		metrics.CompletionsRejected.WithLabelValues(reason).Inc()
		log.Info(LogMsgCompletionRejected, "quest_id", questID, "reason", reason, "error", err)
		return nil, err
	}

	if e.cache != nil {
		e.cache.InvalidateUser(userID)
	}

	log.Info(LogMsgQuestCompleted,
		"quest_id", questID,
		"gold", completion.Reward.GoldEarned,
		"exp", completion.Reward.ExpEarned,
		"sp_spent", completion.Reward.SPSpent)
	e.publisher.PublishWithRetry(ctx, event.NewQuestCompletedEvent(completion.User, completion.Quest, completion.Reward))

	if completion.Reward.LeveledUp() {
		log.Info(LogMsgLevelUp, "old_level", completion.Reward.OldLevel, "new_level", completion.Reward.NewLevel)
		e.publisher.PublishWithRetry(ctx, event.NewUserLevelUpEvent(userID, completion.Reward))
	}

	if completion.Revealed != nil {
		log.Info(LogMsgQuestRevealed, "quest_id", completion.Revealed.ID, "step", completion.Revealed.Step)
		e.publisher.PublishWithRetry(ctx, event.NewQuestRevealedEvent(*completion.Revealed))
	}

	return &domain.CompletionResult{
		Quest:         completion.Quest,
		User:          completion.User,
		LevelsGained:  completion.Reward.LevelsGained,
		GoldEarned:    completion.Reward.GoldEarned,
		ExpEarned:     completion.Reward.ExpEarned,
		RevealedQuest: completion.Revealed,
	}, nil
}

func (e *engine) completeTx(ctx context.Context, userID, questID string) (*Completion, error) {
	tx, err := e.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	quest, err := tx.GetQuestForUpdate(ctx, userID, questID)
	if err != nil && !errors.Is(err, domain.ErrQuestNotFound) {
		return nil, fmt.Errorf("failed to load quest: %w", err)
	}

	var successor *domain.Quest
	if quest != nil {
		successor, err = tx.GetHiddenQuestAtStep(ctx, userID, quest.ChainID, quest.Step+1)
		if err != nil {
			return nil, fmt.Errorf("failed to load next quest: %w", err)
		}
	}

	completion, err := CompleteInChain(*user, quest, successor, e.now())
	if err != nil {
		return nil, err
	}

	if err := tx.UpdateUser(ctx, completion.User); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := tx.UpdateQuest(ctx, completion.Quest); err != nil {
		return nil, fmt.Errorf("failed to update quest: %w", err)
	}
	if completion.Revealed != nil {
		if err := tx.UpdateQuest(ctx, *completion.Revealed); err != nil {
			return nil, fmt.Errorf("failed to reveal quest: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}
	return completion, nil
}

func (e *engine) ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error) {
	if _, err := e.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return e.repo.ListQuests(ctx, userID, includeHidden)
}

func (e *engine) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return e.repo.GetQuest(ctx, userID, questID)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrIncapacitated):
		return RejectReasonIncapacitated
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return RejectReasonInsufficientEnergy
	case errors.Is(err, domain.ErrQuestNotFound), errors.Is(err, domain.ErrUserNotFound):
		return RejectReasonNotFound
	case errors.Is(err, domain.ErrQuestAlreadyCompleted):
		return RejectReasonAlreadyCompleted
	default:
		return RejectReasonOther
	}
}
