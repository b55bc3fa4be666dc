package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// progressionTx runs repository.ProgressionTx operations on one pgx transaction.
// The *ForUpdate reads take row locks held until Commit or Rollback.
type progressionTx struct {
	tx pgx.Tx
}

func (t *progressionTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, t.tx, queryGetUserByIDForUpdate, userID)
}

func (t *progressionTx) UpdateUser(ctx context.Context, user domain.User) error {
	tag, err := t.tx.Exec(ctx, queryUpdateUser,
		user.ID, user.Level, user.CurrentExp, user.MaxExp, user.HP, user.MaxHP,
		user.SP, user.MaxSP, user.Gold, string(user.Status), user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *progressionTx) GetQuestForUpdate(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return getQuest(ctx, t.tx, queryGetQuestForUpdate, userID, questID)
}

func (t *progressionTx) GetHiddenQuestAtStep(ctx context.Context, userID, chainID string, step int) (*domain.Quest, error) {
	q, err := scanQuest(t.tx.QueryRow(ctx, queryGetHiddenQuestAtStep, userID, chainID, step))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHiddenQuest, err)
	}
	return q, nil
}

func (t *progressionTx) UpdateQuest(ctx context.Context, quest domain.Quest) error {
	tag, err := t.tx.Exec(ctx, queryUpdateQuest,
		quest.ID, quest.UserID, quest.IsCompleted, quest.IsVisible, quest.CompletedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateQuest, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func (t *progressionTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *progressionTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}
