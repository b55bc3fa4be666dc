package repository

import (
	"context"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// Progression stores users and their quest chains.
//
// Lookups return domain.ErrUserNotFound or domain.ErrQuestNotFound (possibly wrapped)
// when a record does not exist.
type Progression interface {
	// Users
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// Quests
	InsertQuests(ctx context.Context, quests []domain.Quest) error
	GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error)
	ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error)

	// BeginTx starts a transaction for read-modify-write operations on one user
	BeginTx(ctx context.Context) (ProgressionTx, error)

	Ping(ctx context.Context) error
	Close()
}
