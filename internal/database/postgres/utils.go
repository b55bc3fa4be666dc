package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// pgErrorCode returns the SQLSTATE of err, or "" if it isn't a server error
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var status string
	err := row.Scan(
		&u.ID, &u.Username, &u.Level, &u.CurrentExp, &u.MaxExp,
		&u.HP, &u.MaxHP, &u.SP, &u.MaxSP, &u.Gold, &status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Status = domain.Status(status)
	return &u, nil
}

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var q domain.Quest
	var difficulty, questType string
	err := row.Scan(
		&q.ID, &q.UserID, &q.ChainID, &q.Title, &q.Description, &difficulty, &questType,
		&q.SPCost, &q.RewardGold, &q.RewardExp, &q.IsCompleted, &q.IsVisible, &q.Step,
		&q.CreatedAt, &q.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	q.Difficulty = domain.Difficulty(difficulty)
	q.Type = domain.QuestType(questType)
	return &q, nil
}
