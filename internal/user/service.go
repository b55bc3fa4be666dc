package user

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/ProjectLife_Go/internal/concurrency"
	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/event"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/progression"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	RegisterUser(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// Recovery actions
	Rest(ctx context.Context, userID string) (*domain.RecoveryResult, error)
	Meditate(ctx context.Context, userID string) (*domain.RecoveryResult, error)
	ConsumeSenzu(ctx context.Context, userID string) (*domain.RecoveryResult, error)

	// CheckShopAccess returns a domain.GateError while the shop is locked
	CheckShopAccess(ctx context.Context, userID string) error

	InvalidateUser(userID string)
	GetCacheStats() CacheStats
}

type service struct {
	repo      repository.Progression
	locks     *concurrency.LockManager
	publisher *event.ResilientPublisher
	userCache *userCache
	loads     singleflight.Group

	newID func() string
	now   func() time.Time
}

// NewService creates a user service. locks must be the manager shared with the
// progression engine so recoveries and completions of one user never interleave.
func NewService(repo repository.Progression, locks *concurrency.LockManager, publisher *event.ResilientPublisher, cacheCfg CacheConfig) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
		userCache: newUserCache(cacheCfg),
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// RegisterUser creates a level 1 user with full resources
func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: username must be 1-%d characters", domain.ErrInvalidInput, MaxUsernameLength)
	}

	user := domain.NewUser(s.newID(), username, s.now())
	progression.RefreshStatus(&user)

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username)
	s.publisher.PublishWithRetry(ctx, event.NewUserRegisteredEvent(user))

	s.userCache.Set(user)
	return &user, nil
}

// GetUser returns the user with a freshly derived status.
// Concurrent misses for the same id share one store read. The read and the
// cache fill hold the user lock, so a write committed in between cannot be
// overwritten by the older record.
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := s.userCache.Get(userID); ok {
		progression.RefreshStatus(u)
		return u, nil
	}

	v, err, _ := s.loads.Do(userID, func() (interface{}, error) {
		unlock := s.locks.Lock(userID)
		defer unlock()

		u, err := s.repo.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		s.userCache.Set(*u)
		return *u, nil
	})
	if err != nil {
		return nil, err
	}

	u := v.(domain.User)
	progression.RefreshStatus(&u)
	return &u, nil
}

// Rest restores HP and SP, clamped to their maximums
func (s *service) Rest(ctx context.Context, userID string) (*domain.RecoveryResult, error) {
	return s.applyRecovery(ctx, userID, domain.RecoveryActionRest, func(u *domain.User) {
		u.HP = min(u.HP+progression.RestHPAmount, u.MaxHP)
		u.SP = min(u.SP+progression.RestSPAmount, u.MaxSP)
	})
}

// Meditate restores a little SP
func (s *service) Meditate(ctx context.Context, userID string) (*domain.RecoveryResult, error) {
	return s.applyRecovery(ctx, userID, domain.RecoveryActionMeditate, func(u *domain.User) {
		u.SP = min(u.SP+progression.MeditateSPAmount, u.MaxSP)
	})
}

// ConsumeSenzu fully restores HP and SP
func (s *service) ConsumeSenzu(ctx context.Context, userID string) (*domain.RecoveryResult, error) {
	return s.applyRecovery(ctx, userID, domain.RecoveryActionSenzu, func(u *domain.User) {
		u.HP = u.MaxHP
		u.SP = u.MaxSP
	})
}

func (s *service) applyRecovery(ctx context.Context, userID, action string, apply func(u *domain.User)) (*domain.RecoveryResult, error) {
	ctx = logger.WithUser(ctx, userID)

	unlock := s.locks.Lock(userID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	hpBefore, spBefore := user.HP, user.SP
	apply(user)
	progression.RefreshStatus(user)
	user.UpdatedAt = s.now()

	if err := tx.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit recovery: %w", err)
	}
	s.userCache.Invalidate(userID)

	result := &domain.RecoveryResult{
		User:        *user,
		Action:      action,
		HPRestored:  user.HP - hpBefore,
		SPRestored:  user.SP - spBefore,
		StatusAfter: user.Status,
	}

	logger.FromContext(ctx).Info(LogMsgUserRecovered,
		"action", action,
		"hp_restored", result.HPRestored,
		"sp_restored", result.SPRestored,
		"status", result.StatusAfter)
	s.publisher.PublishWithRetry(ctx, event.NewUserRecoveredEvent(*result))

	return result, nil
}

func (s *service) CheckShopAccess(ctx context.Context, userID string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if u.Level < progression.ShopUnlockLevel {
		logger.FromContext(ctx).Debug(LogMsgShopLocked, "user_id", userID, "level", u.Level)
		return domain.GateError{
			Feature:       domain.FeatureShop,
			RequiredLevel: progression.ShopUnlockLevel,
			CurrentLevel:  u.Level,
		}
	}
	return nil
}

// InvalidateUser satisfies progression.UserCacheInvalidator
func (s *service) InvalidateUser(userID string) {
	s.userCache.Invalidate(userID)
}

func (s *service) GetCacheStats() CacheStats {
	return s.userCache.GetStats()
}
