package progression

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ProjectLife_Go/internal/concurrency"
	"github.com/osse101/ProjectLife_Go/internal/database/memory"
	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/event"
)

type recordingInvalidator struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingInvalidator) InvalidateUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, userID)
}

type engineFixture struct {
	engine *engine
	store  *memory.Store
	cache  *recordingInvalidator

	mu     sync.Mutex
	events []event.Event
}

func (f *engineFixture) eventTypes() []event.Type {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]event.Type, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type)
	}
	return types
}

func newEngineFixture(t *testing.T, user domain.User) *engineFixture {
	t.Helper()

	f := &engineFixture{
		store: memory.NewStore(),
		cache: &recordingInvalidator{},
	}
	require.NoError(t, f.store.CreateUser(context.Background(), user))

	bus := event.NewMemoryBus()
	for _, typ := range []event.Type{event.PlanIngested, event.QuestCompleted, event.QuestRevealed, event.UserLevelUp} {
		bus.Subscribe(typ, func(ctx context.Context, evt event.Event) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, evt)
			return nil
		})
	}
	publisher, err := event.NewResilientPublisher(bus, 1, 10*time.Millisecond, t.TempDir()+"/deadletter.jsonl")
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	f.engine = NewEngine(f.store, concurrency.NewLockManager(), publisher, f.cache).(*engine)
	f.engine.now = func() time.Time { return chainNow }
	return f
}

func freshUser() domain.User {
	u := domain.NewUser("u1", "goku", chainNow)
	RefreshStatus(&u)
	return u
}

func threeSteps() []domain.PlanStep {
	return []domain.PlanStep{
		{Step: 1, Title: "侦察", Difficulty: "EASY", Type: "MAIN", SPCost: 10},
		{Step: 2, Title: "训练", Difficulty: "NORMAL", Type: "MAIN", SPCost: 20},
		{Step: 3, Title: "突破", Difficulty: "HARD", Type: "MAIN", SPCost: 30},
	}
}

func TestEngine_IngestGoalPlan(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	ctx := context.Background()

	quests, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
	require.NoError(t, err)
	require.Len(t, quests, 3)

	listed, err := f.engine.ListQuests(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 1, listed[0].Step)
	assert.Equal(t, 10, listed[0].RewardGold)
	assert.Equal(t, 10, listed[0].RewardExp)

	all, err := f.engine.ListQuests(ctx, "u1", true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.Equal(t, []event.Type{event.PlanIngested}, f.eventTypes())
}

func TestEngine_IngestEmptyPlanIsNoop(t *testing.T) {
	f := newEngineFixture(t, freshUser())

	quests, err := f.engine.IngestGoalPlan(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, quests)

	all, err := f.engine.ListQuests(context.Background(), "u1", true)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.eventTypes())
}

func TestEngine_UntitledStepDoesNotStallChain(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	ctx := context.Background()

	quests, err := f.engine.IngestGoalPlan(ctx, "u1", []domain.PlanStep{
		{Step: 1, Title: "a"},
		{Step: 2, Title: ""},
		{Step: 3, Title: "c"},
	})
	require.NoError(t, err)
	require.Len(t, quests, 3)
	assert.Equal(t, "Step 2", quests[1].Title)

	for i := range quests {
		result, err := f.engine.CompleteQuest(ctx, "u1", quests[i].ID)
		require.NoError(t, err, "step %d", i+1)
		if i+1 < len(quests) {
			require.NotNil(t, result.RevealedQuest, "step %d", i+1)
			assert.Equal(t, quests[i+1].ID, result.RevealedQuest.ID)
		} else {
			assert.Nil(t, result.RevealedQuest)
		}
	}

	shown, err := f.engine.ListQuests(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, shown, 3)
}

func TestEngine_IngestUnknownUser(t *testing.T) {
	f := newEngineFixture(t, freshUser())

	_, err := f.engine.IngestGoalPlan(context.Background(), "ghost", threeSteps())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEngine_CompleteQuest_RevealsNextStep(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	ctx := context.Background()

	quests, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
	require.NoError(t, err)

	result, err := f.engine.CompleteQuest(ctx, "u1", quests[0].ID)
	require.NoError(t, err)

	assert.True(t, result.Quest.IsCompleted)
	assert.Equal(t, 10, result.GoldEarned)
	assert.Equal(t, 10, result.ExpEarned)
	assert.Equal(t, 90, result.User.SP)
	assert.Equal(t, domain.StatusSSJ, result.User.Status)
	require.NotNil(t, result.RevealedQuest)
	assert.Equal(t, quests[1].ID, result.RevealedQuest.ID)

	visibleNow, err := f.engine.ListQuests(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, visibleNow, 2)

	stored, err := f.store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 90, stored.SP)
	assert.Equal(t, 10, stored.Gold)

	assert.Equal(t, []string{"u1"}, f.cache.ids)
	assert.Equal(t, []event.Type{event.PlanIngested, event.QuestCompleted, event.QuestRevealed}, f.eventTypes())
}

func TestEngine_CompleteQuest_LevelUpScenario(t *testing.T) {
	user := freshUser()
	user.SP = 25
	user.CurrentExp = 980
	f := newEngineFixture(t, user)
	ctx := context.Background()

	quests, err := f.engine.IngestGoalPlan(ctx, "u1", []domain.PlanStep{
		{Step: 1, Title: "练功", Difficulty: "NORMAL", SPCost: 5},
	})
	require.NoError(t, err)

	result, err := f.engine.CompleteQuest(ctx, "u1", quests[0].ID)
	require.NoError(t, err)

	assert.Equal(t, 20, result.User.SP)
	assert.Equal(t, domain.StatusExhausted, result.User.Status)
	assert.Equal(t, 10, result.User.CurrentExp)
	assert.Equal(t, 2, result.User.Level)
	assert.Equal(t, 1200, result.User.MaxExp)
	assert.Equal(t, 30, result.User.Gold)
	assert.Equal(t, 1, result.LevelsGained)
	assert.Nil(t, result.RevealedQuest)

	assert.Contains(t, f.eventTypes(), event.UserLevelUp)
}

func TestEngine_CompleteQuest_RejectionsLeaveStateUntouched(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *domain.User)
		wantErr error
	}{
		{"incapacitated", func(u *domain.User) { u.HP = 0 }, domain.ErrIncapacitated},
		{"insufficient energy", func(u *domain.User) { u.SP = 5 }, domain.ErrInsufficientEnergy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := freshUser()
			tt.mutate(&user)
			f := newEngineFixture(t, user)
			ctx := context.Background()

			quests, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
			require.NoError(t, err)

			before, err := f.store.GetUserByID(ctx, "u1")
			require.NoError(t, err)
			questsBefore, err := f.engine.ListQuests(ctx, "u1", true)
			require.NoError(t, err)

			_, err = f.engine.CompleteQuest(ctx, "u1", quests[0].ID)
			require.ErrorIs(t, err, tt.wantErr)

			after, err := f.store.GetUserByID(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, before, after)

			questsAfter, err := f.engine.ListQuests(ctx, "u1", true)
			require.NoError(t, err)
			assert.Equal(t, questsBefore, questsAfter)
			assert.Empty(t, f.cache.ids)
		})
	}
}

func TestEngine_CompleteQuest_Twice(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	ctx := context.Background()

	quests, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
	require.NoError(t, err)

	_, err = f.engine.CompleteQuest(ctx, "u1", quests[0].ID)
	require.NoError(t, err)
	before, err := f.store.GetUserByID(ctx, "u1")
	require.NoError(t, err)

	_, err = f.engine.CompleteQuest(ctx, "u1", quests[0].ID)
	require.ErrorIs(t, err, domain.ErrQuestAlreadyCompleted)

	after, err := f.store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEngine_CompleteQuest_NotFound(t *testing.T) {
	f := newEngineFixture(t, freshUser())

	_, err := f.engine.CompleteQuest(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	_, err = f.engine.CompleteQuest(context.Background(), "ghost", "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEngine_RevealIsScopedToChain(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	ctx := context.Background()

	first, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
	require.NoError(t, err)
	second, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
	require.NoError(t, err)
	require.NotEqual(t, first[0].ChainID, second[0].ChainID)

	result, err := f.engine.CompleteQuest(ctx, "u1", first[0].ID)
	require.NoError(t, err)
	require.NotNil(t, result.RevealedQuest)
	assert.Equal(t, first[1].ID, result.RevealedQuest.ID)

	q, err := f.engine.GetQuest(ctx, "u1", second[1].ID)
	require.NoError(t, err)
	assert.False(t, q.IsVisible, "a step-2 quest of another chain must stay hidden")
}

func TestEngine_HiddenQuestCanBeCompleted(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	ctx := context.Background()

	quests, err := f.engine.IngestGoalPlan(ctx, "u1", threeSteps())
	require.NoError(t, err)

	result, err := f.engine.CompleteQuest(ctx, "u1", quests[1].ID)
	require.NoError(t, err)
	require.NotNil(t, result.RevealedQuest)
	assert.Equal(t, quests[2].ID, result.RevealedQuest.ID)
}

func TestEngine_ConcurrentCompletionsNeverOverspend(t *testing.T) {
	user := freshUser()
	user.SP = 50
	f := newEngineFixture(t, user)
	ctx := context.Background()

	steps := make([]domain.PlanStep, 0, 10)
	for i := 1; i <= 10; i++ {
		steps = append(steps, domain.PlanStep{Step: i, Title: "step", SPCost: 20})
	}
	quests, err := f.engine.IngestGoalPlan(ctx, "u1", steps)
	require.NoError(t, err)

	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for _, q := range quests {
		for range 3 {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				if _, err := f.engine.CompleteQuest(ctx, "u1", id); err == nil {
					succeeded.Add(1)
				}
			}(q.ID)
		}
	}
	wg.Wait()

	stored, err := f.store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), succeeded.Load())
	assert.Equal(t, 10, stored.SP)
	assert.Equal(t, 20, stored.Gold)
}

func TestEngine_DeriveStatus(t *testing.T) {
	f := newEngineFixture(t, freshUser())
	assert.Equal(t, domain.StatusNormal, f.engine.DeriveStatus(50, 50))
}
