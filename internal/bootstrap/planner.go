package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/ProjectLife_Go/internal/config"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/planner"
)

// Planner is the goal planner plus whatever must be released on shutdown
type Planner struct {
	planner.Planner
	gemini *planner.GeminiPlanner
}

// Close releases the model client, if any
func (p *Planner) Close() error {
	if p == nil || p.gemini == nil {
		return nil
	}
	return p.gemini.Close()
}

// InitializePlanner builds the goal planner. With a Gemini key the model is
// tried first and the offline plan covers its failures; without one only the
// offline plan is used.
func InitializePlanner(ctx context.Context, cfg *config.Config) (*Planner, error) {
	offline, err := planner.NewOfflinePlanner()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitPlanner, err)
	}

	if cfg.GeminiAPIKey == "" {
		logger.Info(LogMsgPlannerInitialized, "primary", planner.NameOffline)
		return &Planner{Planner: planner.NewFallbackPlanner(nil, offline)}, nil
	}

	gemini, err := planner.NewGeminiPlanner(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.PlannerTimeout)
	if err != nil {
		logger.Warn(LogMsgGeminiUnavailable, "error", err)
		return &Planner{Planner: planner.NewFallbackPlanner(nil, offline)}, nil
	}

	logger.Info(LogMsgPlannerInitialized,
		"primary", planner.NameGemini,
		"model", cfg.GeminiModel,
		"fallback", planner.NameOffline)
	return &Planner{Planner: planner.NewFallbackPlanner(gemini, offline), gemini: gemini}, nil
}
