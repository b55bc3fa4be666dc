package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

func ledgerUser() domain.User {
	return domain.User{
		ID: "u1", Level: 1, CurrentExp: 0, MaxExp: 1000,
		HP: 100, MaxHP: 100, SP: 100, MaxSP: 100,
	}
}

func TestApplyReward_LevelUpWithCarry(t *testing.T) {
	user := ledgerUser()
	user.SP = 25
	user.CurrentExp = 980

	updated, result, err := ApplyReward(user, 30, 30, 5)
	require.NoError(t, err)

	assert.Equal(t, 20, updated.SP)
	assert.Equal(t, domain.StatusExhausted, updated.Status)
	assert.Equal(t, 10, updated.CurrentExp)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 1200, updated.MaxExp)
	assert.Equal(t, 30, updated.Gold)

	assert.Equal(t, 1, result.LevelsGained)
	assert.True(t, result.LeveledUp())
	assert.Equal(t, 1, result.OldLevel)
	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, 5, result.SPSpent)

	// input untouched
	assert.Equal(t, 980, user.CurrentExp)
	assert.Equal(t, 25, user.SP)
}

func TestApplyReward_MultipleLevelsInOneCall(t *testing.T) {
	// 1000 + 1200 + 1440 = 3640 exactly spans three levels
	updated, result, err := ApplyReward(ledgerUser(), 3640+7, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, result.LevelsGained)
	assert.Equal(t, 4, updated.Level)
	assert.Equal(t, 7, updated.CurrentExp)
	assert.Equal(t, 1728, updated.MaxExp)
}

func TestApplyReward_ExactBoundaryLeavesZeroRemainder(t *testing.T) {
	updated, result, err := ApplyReward(ledgerUser(), 2200, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, result.LevelsGained)
	assert.Equal(t, 0, updated.CurrentExp)
	assert.Less(t, updated.CurrentExp, updated.MaxExp)
}

func TestApplyReward_Incapacitated(t *testing.T) {
	user := ledgerUser()
	user.HP = 0

	updated, result, err := ApplyReward(user, 500, 500, 10)
	require.ErrorIs(t, err, domain.ErrIncapacitated)
	assert.Equal(t, user, updated)
	assert.Zero(t, result)
}

func TestApplyReward_SPClampsAtZero(t *testing.T) {
	user := ledgerUser()
	user.SP = 3

	updated, result, err := ApplyReward(user, 0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.SP)
	assert.Equal(t, 3, result.SPSpent)
}

func TestApplyReward_Monotonic(t *testing.T) {
	gains := []struct{ exp, gold int }{
		{0, 0}, {10, 10}, {-50, -50}, {999, 1}, {5000, 200}, {-1, 7},
	}

	user := ledgerUser()
	for _, g := range gains {
		updated, _, err := ApplyReward(user, g.exp, g.gold, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, updated.Gold, user.Gold)
		assert.GreaterOrEqual(t, updated.Level, user.Level)
		assert.GreaterOrEqual(t, updated.CurrentExp, 0)
		assert.Less(t, updated.CurrentExp, updated.MaxExp)
		user = updated
	}
}

func TestApplyReward_DegenerateMaxExpIsReset(t *testing.T) {
	user := ledgerUser()
	user.MaxExp = 0

	updated, result, err := ApplyReward(user, 10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxExp, updated.MaxExp)
	assert.Equal(t, 0, result.LevelsGained)
}

func TestNextMaxExp(t *testing.T) {
	assert.Equal(t, 1200, NextMaxExp(1000))
	assert.Equal(t, 1440, NextMaxExp(1200))
	assert.Equal(t, 1728, NextMaxExp(1440))
	assert.Equal(t, 2073, NextMaxExp(1728)) // floored
	assert.Equal(t, 2, NextMaxExp(1))       // always grows
}
