// Package planner turns free-form goal text into plan steps for the progression engine.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/validation"
)

// Planner decomposes a goal into ordered plan steps
type Planner interface {
	GeneratePlan(ctx context.Context, goal string) ([]domain.PlanStep, error)
}

// normalizeGoal trims the goal and rejects empty or oversized input
func normalizeGoal(goal string) (string, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return "", fmt.Errorf("%w: goal is empty", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(goal) > MaxGoalLength {
		return "", fmt.Errorf("%w: goal exceeds %d characters", domain.ErrInvalidInput, MaxGoalLength)
	}
	return goal, nil
}

// ParsePlan decodes a model response into plan steps. Markdown code fences
// around the JSON are tolerated; the JSON itself must match the plan schema.
func ParsePlan(text string) ([]domain.PlanStep, error) {
	clean := stripFences(text)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrInvalidPlan)
	}
	if err := validation.ValidatePlan([]byte(clean)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPlan, err)
	}

	var steps []domain.PlanStep
	if err := json.Unmarshal([]byte(clean), &steps); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPlan, err)
	}
	return steps, nil
}

func stripFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
