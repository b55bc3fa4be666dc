package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

type progressionTx struct {
	tx *sql.Tx
}

// GetUserForUpdate needs no lock clause: the immediate transaction already
// holds the database write lock.
func (t *progressionTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, t.tx, queryGetUserByID, userID)
}

func (t *progressionTx) UpdateUser(ctx context.Context, user domain.User) error {
	res, err := t.tx.ExecContext(ctx, queryUpdateUser,
		user.Level, user.CurrentExp, user.MaxExp, user.HP, user.MaxHP,
		user.SP, user.MaxSP, user.Gold, string(user.Status), toMillis(user.UpdatedAt),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *progressionTx) GetQuestForUpdate(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return getQuest(ctx, t.tx, userID, questID)
}

func (t *progressionTx) GetHiddenQuestAtStep(ctx context.Context, userID, chainID string, step int) (*domain.Quest, error) {
	q, err := scanQuest(t.tx.QueryRowContext(ctx, queryGetHiddenQuestAtStep, userID, chainID, step))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHiddenQuest, err)
	}
	return q, nil
}

func (t *progressionTx) UpdateQuest(ctx context.Context, quest domain.Quest) error {
	res, err := t.tx.ExecContext(ctx, queryUpdateQuest,
		quest.IsCompleted, quest.IsVisible, nullMillis(quest.CompletedAt),
		quest.ID, quest.UserID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateQuest, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func (t *progressionTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *progressionTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}
