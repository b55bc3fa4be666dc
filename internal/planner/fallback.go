package planner

import (
	"context"
	"errors"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/metrics"
)

// FallbackPlanner uses the primary planner and falls back to the secondary when
// the primary fails. Invalid goals are returned as-is without trying the fallback.
type FallbackPlanner struct {
	primary   Planner
	secondary Planner
}

// NewFallbackPlanner creates a FallbackPlanner. A nil primary always uses the secondary.
func NewFallbackPlanner(primary, secondary Planner) *FallbackPlanner {
	return &FallbackPlanner{primary: primary, secondary: secondary}
}

func (f *FallbackPlanner) GeneratePlan(ctx context.Context, goal string) ([]domain.PlanStep, error) {
	if f.primary == nil {
		return f.secondary.GeneratePlan(ctx, goal)
	}

	steps, err := f.primary.GeneratePlan(ctx, goal)
	if err == nil {
		return steps, nil
	}
	if errors.Is(err, domain.ErrInvalidInput) || ctx.Err() != nil {
		return nil, err
	}

	logger.FromContext(ctx).Warn(LogMsgPlannerFailed, "error", err)
	metrics.PlannerRequests.WithLabelValues(NameGemini, metrics.OutcomeFallback).Inc()
	return f.secondary.GeneratePlan(ctx, goal)
}
