package progression

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// Reward is the gold and exp granted for completing a quest
type Reward struct {
	Gold int
	Exp  int
}

// DefaultDifficulty is the tier used for labels the table does not know
const DefaultDifficulty = domain.DifficultyEasy

// rewardTable maps each difficulty tier to its reward. New tiers are added here.
var rewardTable = map[domain.Difficulty]Reward{
	domain.DifficultyEasy:   {Gold: 10, Exp: 10},
	domain.DifficultyMedium: {Gold: 30, Exp: 30},
	domain.DifficultyHard:   {Gold: 80, Exp: 80},
	domain.DifficultyEpic:   {Gold: 200, Exp: 200},
}

// difficultyAliases maps planner labels onto difficulty tiers.
// Planners answer in English or Chinese.
var difficultyAliases = map[string]domain.Difficulty{
	"EASY":   domain.DifficultyEasy,
	"简单":     domain.DifficultyEasy,
	"MEDIUM": domain.DifficultyMedium,
	"NORMAL": domain.DifficultyMedium,
	"普通":     domain.DifficultyMedium,
	"HARD":   domain.DifficultyHard,
	"困难":     domain.DifficultyHard,
	"EPIC":   domain.DifficultyEpic,
	"史诗":     domain.DifficultyEpic,
}

var questTypeAliases = map[string]domain.QuestType{
	"MAIN":  domain.QuestTypeMain,
	"主线":    domain.QuestTypeMain,
	"SIDE":  domain.QuestTypeSide,
	"支线":    domain.QuestTypeSide,
	"DAILY": domain.QuestTypeDaily,
	"日常":    domain.QuestTypeDaily,
}

var upper = cases.Upper(language.Und)

// normalizeLabel folds full-width characters and case so that "ｈａｒｄ" and "Hard" match "HARD"
func normalizeLabel(s string) string {
	return upper.String(width.Fold.String(strings.TrimSpace(s)))
}

// ParseDifficulty maps a planner label onto a difficulty tier.
// Unknown labels fall back to DefaultDifficulty.
func ParseDifficulty(label string) domain.Difficulty {
	if d, ok := difficultyAliases[normalizeLabel(label)]; ok {
		return d
	}
	return DefaultDifficulty
}

// ParseQuestType maps a planner label onto a quest type. Unknown labels are MAIN.
func ParseQuestType(label string) domain.QuestType {
	if t, ok := questTypeAliases[normalizeLabel(label)]; ok {
		return t
	}
	return domain.QuestTypeMain
}

// RewardFor returns the reward of a difficulty tier, using the default tier when unmapped
func RewardFor(d domain.Difficulty) Reward {
	if r, ok := rewardTable[d]; ok {
		return r
	}
	return rewardTable[DefaultDifficulty]
}
