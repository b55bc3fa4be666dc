package memory

import (
	"context"
	"sort"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// tx stages writes and applies them to the store on Commit
type tx struct {
	store  *Store
	closed bool

	users  map[string]domain.User
	quests map[string]domain.Quest
}

func (t *tx) user(userID string) (domain.User, bool) {
	if u, ok := t.users[userID]; ok {
		return u, true
	}
	u, ok := t.store.users[userID]
	return u, ok
}

func (t *tx) quest(questID string) (domain.Quest, bool) {
	if q, ok := t.quests[questID]; ok {
		return q, true
	}
	q, ok := t.store.quests[questID]
	return q, ok
}

func (t *tx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}
	u, ok := t.user(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (t *tx) UpdateUser(ctx context.Context, user domain.User) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	if _, ok := t.user(user.ID); !ok {
		return domain.ErrUserNotFound
	}
	t.users[user.ID] = user
	return nil
}

func (t *tx) GetQuestForUpdate(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}
	q, ok := t.quest(questID)
	if !ok || q.UserID != userID {
		return nil, domain.ErrQuestNotFound
	}
	q = cloneQuest(q)
	return &q, nil
}

func (t *tx) GetHiddenQuestAtStep(ctx context.Context, userID, chainID string, step int) (*domain.Quest, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}

	var candidates []domain.Quest
	for _, id := range t.store.chains[chainID] {
		q, _ := t.quest(id)
		if q.UserID == userID && q.ChainID == chainID && q.Step == step && !q.IsVisible && !q.IsCompleted {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	q := cloneQuest(candidates[0])
	return &q, nil
}

func (t *tx) UpdateQuest(ctx context.Context, quest domain.Quest) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	if _, ok := t.quest(quest.ID); !ok {
		return domain.ErrQuestNotFound
	}
	t.quests[quest.ID] = cloneQuest(quest)
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	for id, u := range t.users {
		t.store.users[id] = u
	}
	for id, q := range t.quests {
		t.store.quests[id] = q
	}
	t.close()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.close()
	return nil
}

func (t *tx) close() {
	t.closed = true
	t.store.mu.Unlock()
}
