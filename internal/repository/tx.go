package repository

import (
	"context"
	"errors"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// ErrTxClosed is returned by Rollback after the transaction was committed or rolled back
var ErrTxClosed = errors.New("transaction already closed")

// ProgressionTx defines the interface for transactional operations.
// Rows read "for update" stay locked until Commit or Rollback.
type ProgressionTx interface {
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	GetQuestForUpdate(ctx context.Context, userID, questID string) (*domain.Quest, error)
	// GetHiddenQuestAtStep returns the first hidden, uncompleted quest of the chain
	// with the given ordinal, or nil when there is none.
	GetHiddenQuestAtStep(ctx context.Context, userID, chainID string, step int) (*domain.Quest, error)
	UpdateQuest(ctx context.Context, quest domain.Quest) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
