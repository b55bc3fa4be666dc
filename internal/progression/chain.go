package progression

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// BuildChain turns a planner's steps into a new quest chain for userID.
//
// Rewards come from the difficulty table. Every step becomes a quest so the
// ordinals stay contiguous: steps without a positive ordinal take their 1-based
// position in the plan, and steps without a title are named after their ordinal.
// Only the step with the lowest ordinal starts visible; on ties the first one wins.
// An empty plan yields an empty chain.
func BuildChain(userID, chainID string, steps []domain.PlanStep, newID func() string, now time.Time) []domain.Quest {
	quests := make([]domain.Quest, 0, len(steps))
	for i, step := range steps {
		ordinal := step.Step
		if ordinal <= 0 {
			ordinal = i + 1
		}

		title := strings.TrimSpace(step.Title)
		if title == "" {
			title = fmt.Sprintf(DefaultStepTitleFormat, ordinal)
		}

		difficulty := ParseDifficulty(step.Difficulty)
		reward := RewardFor(difficulty)

		quests = append(quests, domain.Quest{
			ID:          newID(),
			UserID:      userID,
			ChainID:     chainID,
			Title:       title,
			Description: strings.TrimSpace(step.Description),
			Difficulty:  difficulty,
			Type:        ParseQuestType(step.Type),
			SPCost:      max(step.SPCost, 0),
			RewardGold:  reward.Gold,
			RewardExp:   reward.Exp,
			Step:        ordinal,
			CreatedAt:   now,
		})
	}

	if len(quests) == 0 {
		return quests
	}

	first := 0
	for i := range quests {
		if quests[i].Step < quests[first].Step {
			first = i
		}
	}
	quests[first].IsVisible = true

	return quests
}

// Completion is the outcome of completing one quest in a chain
type Completion struct {
	User     domain.User
	Quest    domain.Quest
	Revealed *domain.Quest
	Reward   domain.RewardResult
}

// CompleteInChain validates and applies the completion of quest by user.
//
// quest is nil when it could not be found for the user. successor is the hidden,
// uncompleted quest at the next ordinal of the same chain, or nil.
// Checks run in order: incapacitation, existence, prior completion, energy.
// On error nothing is returned, so the caller has nothing to persist.
func CompleteInChain(user domain.User, quest, successor *domain.Quest, now time.Time) (*Completion, error) {
	if user.IsIncapacitated() {
		return nil, fmt.Errorf("%w: hp=%d", domain.ErrIncapacitated, user.HP)
	}
	if quest == nil || quest.UserID != user.ID {
		return nil, domain.ErrQuestNotFound
	}
	if quest.IsCompleted {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestAlreadyCompleted, quest.ID)
	}
	if user.SP < quest.SPCost {
		return nil, domain.InsufficientEnergyError{Required: quest.SPCost, Available: user.SP}
	}

	updatedUser, reward, err := ApplyReward(user, quest.RewardExp, quest.RewardGold, quest.SPCost)
	if err != nil {
		return nil, err
	}
	updatedUser.UpdatedAt = now

	completed := *quest
	completed.IsCompleted = true
	completedAt := now
	completed.CompletedAt = &completedAt

	result := &Completion{
		User:   updatedUser,
		Quest:  completed,
		Reward: reward,
	}

	if IsSuccessor(quest, successor) {
		revealed := *successor
		revealed.IsVisible = true
		result.Revealed = &revealed
	}

	return result, nil
}

// IsSuccessor reports whether next is the hidden, uncompleted step that follows q in its chain
func IsSuccessor(q, next *domain.Quest) bool {
	if q == nil || next == nil {
		return false
	}
	return next.UserID == q.UserID &&
		next.ChainID == q.ChainID &&
		next.Step == q.Step+1 &&
		!next.IsVisible &&
		!next.IsCompleted
}
