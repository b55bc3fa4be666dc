// Package sqlite implements repository.Progression on an embedded SQLite file.
// Transactions start with BEGIN IMMEDIATE, so read-modify-write cycles are
// serialized across connections without row locks.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/ProjectLife_Go/internal/database"
	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Store persists users and quests in SQLite
type Store struct {
	sqlDB *sql.DB
}

var _ repository.Progression = (*Store)(nil)

// Open opens the database at path and applies embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	sqlDB, err := sql.Open("sqlite", filepath.Clean(path)+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPing, err)
	}
	if err := database.MigrateSQLite(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func isConstraint(err error, codes ...int) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	for _, c := range codes {
		if sqliteErr.Code() == c {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.sqlDB.ExecContext(ctx, queryInsertUser,
		user.ID, user.Username, user.Level, user.CurrentExp, user.MaxExp,
		user.HP, user.MaxHP, user.SP, user.MaxSP, user.Gold, string(user.Status),
		toMillis(user.CreatedAt), toMillis(user.UpdatedAt),
	)
	if err != nil {
		if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, s.sqlDB, queryGetUserByID, userID)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return getUser(ctx, s.sqlDB, queryGetUserByUsername, username)
}

// InsertQuests writes the batch in one transaction
func (s *Store) InsertQuests(ctx context.Context, quests []domain.Quest) error {
	if len(quests) == 0 {
		return nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range quests {
		_, err := tx.ExecContext(ctx, queryInsertQuest,
			q.ID, q.UserID, q.ChainID, q.Title, q.Description, string(q.Difficulty), string(q.Type),
			q.SPCost, q.RewardGold, q.RewardExp, q.IsCompleted, q.IsVisible, q.Step,
			toMillis(q.CreatedAt), nullMillis(q.CompletedAt),
		)
		if err != nil {
			if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) {
				return fmt.Errorf("%w: %s", domain.ErrUserNotFound, q.UserID)
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertQuests, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (s *Store) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return getQuest(ctx, s.sqlDB, userID, questID)
}

// ListQuests returns the user's quests ordered by creation time then step
func (s *Store) ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error) {
	rows, err := s.sqlDB.QueryContext(ctx, queryListQuests, userID, includeHidden)
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
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &progressionTx{tx: tx}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() {
	_ = s.sqlDB.Close()
}

func getUser(ctx context.Context, q querier, query, arg string) (*domain.User, error) {
	u, err := scanUser(q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return u, nil
}

func getQuest(ctx context.Context, q querier, userID, questID string) (*domain.Quest, error) {
	quest, err := scanQuest(q.QueryRowContext(ctx, queryGetQuest, questID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuest, err)
	}
	return quest, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var status string
	var createdAt, updatedAt int64
	err := row.Scan(
		&u.ID, &u.Username, &u.Level, &u.CurrentExp, &u.MaxExp,
		&u.HP, &u.MaxHP, &u.SP, &u.MaxSP, &u.Gold, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Status = domain.Status(status)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}

func scanQuest(row rowScanner) (*domain.Quest, error) {
	var q domain.Quest
	var difficulty, questType string
	var createdAt int64
	var completedAt sql.NullInt64
	err := row.Scan(
		&q.ID, &q.UserID, &q.ChainID, &q.Title, &q.Description, &difficulty, &questType,
		&q.SPCost, &q.RewardGold, &q.RewardExp, &q.IsCompleted, &q.IsVisible, &q.Step,
		&createdAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	q.Difficulty = domain.Difficulty(difficulty)
	q.Type = domain.QuestType(questType)
	q.CreatedAt = fromMillis(createdAt)
	if completedAt.Valid {
		t := fromMillis(completedAt.Int64)
		q.CompletedAt = &t
	}
	return &q, nil
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}
