package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/user"
)

// MockUserService is a testify mock of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Rest(ctx context.Context, userID string) (*domain.RecoveryResult, error) {
	return m.recovery(m.Called(ctx, userID))
}

func (m *MockUserService) Meditate(ctx context.Context, userID string) (*domain.RecoveryResult, error) {
	return m.recovery(m.Called(ctx, userID))
}

func (m *MockUserService) ConsumeSenzu(ctx context.Context, userID string) (*domain.RecoveryResult, error) {
	return m.recovery(m.Called(ctx, userID))
}

func (m *MockUserService) recovery(args mock.Arguments) (*domain.RecoveryResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecoveryResult), args.Error(1)
}

func (m *MockUserService) CheckShopAccess(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserService) InvalidateUser(userID string) {
	m.Called(userID)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	return m.Called().Get(0).(user.CacheStats)
}

// MockEngine is a testify mock of progression.Engine
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) IngestGoalPlan(ctx context.Context, userID string, steps []domain.PlanStep) ([]domain.Quest, error) {
	args := m.Called(ctx, userID, steps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockEngine) CompleteQuest(ctx context.Context, userID, questID string) (*domain.CompletionResult, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

func (m *MockEngine) DeriveStatus(hp, sp int) domain.Status {
	return m.Called(hp, sp).Get(0).(domain.Status)
}

func (m *MockEngine) ListQuests(ctx context.Context, userID string, includeHidden bool) ([]domain.Quest, error) {
	args := m.Called(ctx, userID, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockEngine) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

// MockPlanner is a testify mock of planner.Planner
type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) GeneratePlan(ctx context.Context, goal string) ([]domain.PlanStep, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanStep), args.Error(1)
}

// MockPool is a testify mock of database.Pool
type MockPool struct {
	mock.Mock
}

func (m *MockPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPool) Close() {
	m.Called()
}

// withURLParams attaches chi route parameters to a request
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
