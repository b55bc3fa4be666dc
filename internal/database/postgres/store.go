// Package postgres implements repository.Progression on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// querier is the subset of pgx shared by pools and transactions
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the PostgreSQL progression repository
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a store on an open pool. The schema must already be migrated.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ repository.Progression = (*Store)(nil)

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.db.Exec(ctx, queryInsertUser,
		user.ID, user.Username, user.Level, user.CurrentExp, user.MaxExp,
		user.HP, user.MaxHP, user.SP, user.MaxSP, user.Gold, string(user.Status),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, s.db, queryGetUserByID, userID)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, queryGetUserByUsername, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByUsername, err)
	}
	return u, nil
}

// InsertQuests writes the batch in one transaction
func (s *Store) InsertQuests(ctx context.Context, quests []domain.Quest) error {
	if len(quests) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, q := range quests {
		batch.Queue(queryInsertQuest,
			q.ID, q.UserID, q.ChainID, q.Title, q.Description, string(q.Difficulty), string(q.Type),
			q.SPCost, q.RewardGold, q.RewardExp, q.IsCompleted, q.IsVisible, q.Step,
			q.CreatedAt, q.CompletedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if pgErrorCode(err) == PgErrorCodeForeignKeyViolation {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, quests[0].UserID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertQuests, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (s *Store) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return getQuest(ctx, s.db, queryGetQuest, userID, questID)
}

// ListQuests returns the user's quests ordered by creation time then step
func (s *Store) ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error) {
	rows, err := s.db.Query(ctx, queryListQuests, userID, includeHidden)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuests, err)
	}
	defer rows.Close()

	quests := make([]domain.Quest, 0)
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuests, err)
		}
		quests = append(quests, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuests, err)
	}
	return quests, nil
}

func (s *Store) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &progressionTx{tx: tx}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}

func getUser(ctx context.Context, q querier, query, userID string) (*domain.User, error) {
	u, err := scanUser(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return u, nil
}

func getQuest(ctx context.Context, q querier, query, userID, questID string) (*domain.Quest, error) {
	quest, err := scanQuest(q.QueryRow(ctx, query, questID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuest, err)
	}
	return quest, nil
}
