package progression

import (
	"fmt"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// ApplyReward spends SP and grants gold and exp to a copy of user, carrying
// exp over as many level-ups as it covers. The input user is never modified,
// so a rejected call leaves the caller's state untouched.
//
// Level-up does not restore HP or SP.
func ApplyReward(user domain.User, expGain, goldGain, spSpent int) (domain.User, domain.RewardResult, error) {
	if user.IsIncapacitated() {
		return user, domain.RewardResult{}, fmt.Errorf("%w: hp=%d", domain.ErrIncapacitated, user.HP)
	}

	expGain = max(expGain, 0)
	goldGain = max(goldGain, 0)
	spSpent = max(spSpent, 0)

	updated := user
	oldLevel := updated.Level

	updated.SP = max(updated.SP-spSpent, 0)
	updated.Gold += goldGain
	updated.CurrentExp += expGain

	if updated.MaxExp <= 0 {
		updated.MaxExp = domain.DefaultMaxExp
	}
	for updated.CurrentExp >= updated.MaxExp {
		updated.CurrentExp -= updated.MaxExp
		updated.Level++
		updated.MaxExp = NextMaxExp(updated.MaxExp)
	}

	RefreshStatus(&updated)

	return updated, domain.RewardResult{
		LevelsGained: updated.Level - oldLevel,
		OldLevel:     oldLevel,
		NewLevel:     updated.Level,
		GoldEarned:   goldGain,
		ExpEarned:    expGain,
		SPSpent:      user.SP - updated.SP,
		CurrentExp:   updated.CurrentExp,
		MaxExp:       updated.MaxExp,
		Gold:         updated.Gold,
		SP:           updated.SP,
	}, nil
}

// NextMaxExp returns floor(maxExp * 1.2) using integer arithmetic.
// The result always grows so the level-up loop terminates.
func NextMaxExp(maxExp int) int {
	next := maxExp * MaxExpGrowthNumerator / MaxExpGrowthDenominator
	if next <= maxExp {
		next = maxExp + 1
	}
	return next
}
