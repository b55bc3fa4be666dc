package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ProjectLife_Go/internal/concurrency"
	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/progression"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "progression.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func createTestUser(t *testing.T, s *Store, username string) domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	user := domain.NewUser(uuid.NewString(), username, now)
	user.Status = domain.StatusSSJ
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPathRequired)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	user := createTestUser(t, s, "goku")
	s.Close()

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "goku", got.Username)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_Users(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s, "vegeta")

	byName, err := s.GetUserByUsername(ctx, "vegeta")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, domain.StatusSSJ, byName.Status)
	assert.Equal(t, domain.DefaultMaxExp, byName.MaxExp)

	dup := domain.NewUser(uuid.NewString(), "vegeta", time.Now())
	assert.ErrorIs(t, s.CreateUser(ctx, dup), domain.ErrUsernameTaken)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStore_Quests(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s, "gohan")

	quests := progression.BuildChain(user.ID, uuid.NewString(), []domain.PlanStep{
		{Step: 2, Title: "second", Difficulty: "HARD"},
		{Step: 1, Title: "first", Difficulty: "EASY"},
	}, uuid.NewString, time.Now())
	require.NoError(t, s.InsertQuests(ctx, quests))

	visible, err := s.ListQuests(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "first", visible[0].Title)

	all, err := s.ListQuests(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].Step)
	assert.Equal(t, 2, all[1].Step)
	assert.Equal(t, domain.DifficultyHard, all[1].Difficulty)
	assert.False(t, all[1].IsVisible)

	_, err = s.GetQuest(ctx, "someone-else", quests[0].ID)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)
}

func TestStore_InsertQuestsIsAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s, "piccolo")

	now := time.Now()
	quests := []domain.Quest{
		{ID: uuid.NewString(), UserID: user.ID, ChainID: "c", Title: "ok", Step: 1, CreatedAt: now},
		{ID: uuid.NewString(), UserID: "ghost", ChainID: "c", Title: "orphan", Step: 2, CreatedAt: now},
	}
	assert.ErrorIs(t, s.InsertQuests(ctx, quests), domain.ErrUserNotFound)

	all, err := s.ListQuests(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_TxCommitAndRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s, "krillin")

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetUserForUpdate(ctx, user.ID)
	require.NoError(t, err)
	locked.Gold = 42
	require.NoError(t, tx.UpdateUser(ctx, *locked))
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)

	tx, err = s.BeginTx(ctx)
	require.NoError(t, err)
	locked, err = tx.GetUserForUpdate(ctx, user.ID)
	require.NoError(t, err)
	locked.Gold = 1000
	require.NoError(t, tx.UpdateUser(ctx, *locked))
	require.NoError(t, tx.Rollback(ctx))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Gold)
}

func TestStore_EngineRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, s, "trunks")
	engine := progression.NewEngine(s, concurrency.NewLockManager(), nil, nil)

	quests, err := engine.IngestGoalPlan(ctx, user.ID, []domain.PlanStep{
		{Step: 1, Title: "a", Difficulty: "EPIC", SPCost: 10},
		{Step: 2, Title: "b", SPCost: 10},
	})
	require.NoError(t, err)

	res, err := engine.CompleteQuest(ctx, user.ID, quests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 200, res.GoldEarned)
	require.NotNil(t, res.RevealedQuest)

	visible, err := engine.ListQuests(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	stored, err := s.GetQuest(ctx, user.ID, quests[0].ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)
	require.NotNil(t, stored.CompletedAt)
}

func TestStore_ConcurrentUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	engine := progression.NewEngine(s, concurrency.NewLockManager(), nil, nil)

	var users []domain.User
	var questIDs []string
	for _, name := range []string{"u1", "u2", "u3", "u4"} {
		u := createTestUser(t, s, name)
		q, err := engine.IngestGoalPlan(ctx, u.ID, []domain.PlanStep{{Step: 1, Title: "x", SPCost: 5}})
		require.NoError(t, err)
		users = append(users, u)
		questIDs = append(questIDs, q[0].ID)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(users))
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.CompleteQuest(ctx, users[i].ID, questIDs[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "user %d", i)
		got, err := s.GetUserByID(ctx, users[i].ID)
		require.NoError(t, err)
		assert.Equal(t, 95, got.SP)
	}
}
