// Package memory is a process-local implementation of repository.Progression.
// Data does not survive a restart. It backs tests and the default dev setup.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// Store keeps users and quests in maps. Transactions hold the store mutex
// from BeginTx until Commit or Rollback, so they are serializable.
type Store struct {
	mu sync.Mutex

	users     map[string]domain.User
	usernames map[string]string // username -> user id
	quests    map[string]domain.Quest
	order     []string            // quest ids in insertion order
	chains    map[string][]string // chain id -> quest ids in insertion order
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		usernames: make(map[string]string),
		quests:    make(map[string]domain.Quest),
		chains:    make(map[string][]string),
	}
}

var _ repository.Progression = (*Store)(nil)

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernames[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("%w: duplicate user id %s", domain.ErrInvalidInput, user.ID)
	}

	s.users[user.ID] = user
	s.usernames[user.Username] = user.ID
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := s.users[id]
	return &u, nil
}

// InsertQuests stores a batch atomically; it fails without changes if any owner is missing
func (s *Store) InsertQuests(ctx context.Context, quests []domain.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range quests {
		if _, ok := s.users[q.UserID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, q.UserID)
		}
		if _, ok := s.quests[q.ID]; ok {
			return fmt.Errorf("%w: duplicate quest id %s", domain.ErrInvalidInput, q.ID)
		}
	}

	for _, q := range quests {
		s.quests[q.ID] = cloneQuest(q)
		s.order = append(s.order, q.ID)
		s.chains[q.ChainID] = append(s.chains[q.ChainID], q.ID)
	}
	return nil
}

func (s *Store) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quests[questID]
	if !ok || q.UserID != userID {
		return nil, domain.ErrQuestNotFound
	}
	q = cloneQuest(q)
	return &q, nil
}

// ListQuests returns the user's quests ordered by creation time then step
func (s *Store) ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Quest, 0)
	for _, id := range s.order {
		q := s.quests[id]
		if q.UserID != userID || (!includeHidden && !q.IsVisible) {
			continue
		}
		result = append(result, cloneQuest(q))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].Step < result[j].Step
	})
	return result, nil
}

// BeginTx locks the store until the returned transaction is closed
func (s *Store) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &tx{
		store:  s,
		users:  make(map[string]domain.User),
		quests: make(map[string]domain.Quest),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() {}

func cloneQuest(q domain.Quest) domain.Quest {
	if q.CompletedAt != nil {
		t := *q.CompletedAt
		q.CompletedAt = &t
	}
	return q
}
