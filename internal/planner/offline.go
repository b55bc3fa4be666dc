package planner

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/metrics"
)

//go:embed plans/offline.yaml
var offlinePlanYAML []byte

// OfflinePlanner returns a fixed training plan that quotes the goal.
// It needs no network and never fails for a valid goal.
type OfflinePlanner struct {
	template []domain.PlanStep
}

// NewOfflinePlanner loads the embedded plan template
func NewOfflinePlanner() (*OfflinePlanner, error) {
	var steps []domain.PlanStep
	if err := yaml.Unmarshal(offlinePlanYAML, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse offline plan: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: offline plan is empty", domain.ErrInvalidPlan)
	}
	return &OfflinePlanner{template: steps}, nil
}

func (o *OfflinePlanner) GeneratePlan(ctx context.Context, goal string) ([]domain.PlanStep, error) {
	goal, err := normalizeGoal(goal)
	if err != nil {
		return nil, err
	}
	data := struct{ Goal string }{previewGoal(goal)}

	steps := make([]domain.PlanStep, len(o.template))
	for i, step := range o.template {
		if step.Title, err = render("title", step.Title, data); err != nil {
			return nil, err
		}
		if step.Description, err = render("desc", step.Description, data); err != nil {
			return nil, err
		}
		steps[i] = step
	}

	metrics.PlannerRequests.WithLabelValues(NameOffline, metrics.OutcomeSuccess).Inc()
	return steps, nil
}

// previewGoal keeps the first OfflineGoalPreview runes of goal
func previewGoal(goal string) string {
	runes := []rune(goal)
	if len(runes) <= OfflineGoalPreview {
		return goal
	}
	return string(runes[:OfflineGoalPreview]) + goalEllipsis
}
