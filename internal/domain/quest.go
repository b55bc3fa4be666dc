package domain

import "time"

// Difficulty is the reward tier of a quest
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyEpic   Difficulty = "EPIC"
)

// QuestType classifies a quest
type QuestType string

const (
	QuestTypeMain  QuestType = "MAIN"
	QuestTypeSide  QuestType = "SIDE"
	QuestTypeDaily QuestType = "DAILY"
)

// Quest is a single step of a goal chain owned by one user.
// Rewards are fixed when the quest is ingested.
type Quest struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	ChainID     string     `json:"chain_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Type        QuestType  `json:"quest_type"`
	SPCost      int        `json:"sp_cost"`
	RewardGold  int        `json:"reward_gold"`
	RewardExp   int        `json:"reward_exp"`
	IsCompleted bool       `json:"is_completed"`
	IsVisible   bool       `json:"is_visible"`
	Step        int        `json:"step"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PlanStep is one step of a goal plan as produced by a planner.
// Field names follow the planner's JSON contract.
type PlanStep struct {
	Step        int    `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"desc" yaml:"desc"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`
	Type        string `json:"type" yaml:"type"`
	SPCost      int    `json:"sp_cost" yaml:"sp_cost"`
}

// RewardResult is the outcome of applying a reward to a user
type RewardResult struct {
	LevelsGained int `json:"levels_gained"`
	OldLevel     int `json:"old_level"`
	NewLevel     int `json:"new_level"`
	GoldEarned   int `json:"gold_earned"`
	ExpEarned    int `json:"exp_earned"`
	SPSpent      int `json:"sp_spent"`
	CurrentExp   int `json:"current_exp"`
	MaxExp       int `json:"max_exp"`
	Gold         int `json:"gold"`
	SP           int `json:"sp"`
}

// LeveledUp reports whether at least one level was gained
func (r RewardResult) LeveledUp() bool {
	return r.LevelsGained > 0
}

// CompletionResult is returned after a quest is completed
type CompletionResult struct {
	Quest         Quest  `json:"quest"`
	User          User   `json:"user"`
	LevelsGained  int    `json:"levels_gained"`
	GoldEarned    int    `json:"gold_earned"`
	ExpEarned     int    `json:"exp_earned"`
	RevealedQuest *Quest `json:"revealed_quest,omitempty"`
}
