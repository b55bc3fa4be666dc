package planner

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/metrics"
)

//go:embed prompts/system.txt
var systemPromptTemplate string

//go:embed prompts/goal.txt
var goalPromptTemplate string

// GeminiPlanner asks a Gemini model for a plan
type GeminiPlanner struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiPlanner creates a client for modelName. An empty modelName uses DefaultGeminiModel.
func NewGeminiPlanner(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiPlanner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", domain.ErrPlannerUnavailable)
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	systemPrompt, err := render("system", systemPromptTemplate, struct {
		MinSteps, MaxSteps, MaxSPCost int
	}{MinSteps, MaxSteps, MaxSPCost})
	if err != nil {
		return nil, fmt.Errorf("failed to render system prompt: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlannerUnavailable, err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.ResponseMIMEType = ResponseMIMEType

	return &GeminiPlanner{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Close releases the underlying client
func (g *GeminiPlanner) Close() error {
	return g.client.Close()
}

func (g *GeminiPlanner) GeneratePlan(ctx context.Context, goal string) ([]domain.PlanStep, error) {
	goal, err := normalizeGoal(goal)
	if err != nil {
		return nil, err
	}

	prompt, err := render("goal", goalPromptTemplate, struct{ Goal string }{goal})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	steps, err := g.generate(ctx, prompt)
	metrics.PlannerDuration.WithLabelValues(NameGemini).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PlannerRequests.WithLabelValues(NameGemini, metrics.OutcomeError).Inc()
		return nil, err
	}
	metrics.PlannerRequests.WithLabelValues(NameGemini, metrics.OutcomeSuccess).Inc()

	logger.FromContext(ctx).Info(LogMsgPlanGenerated, "planner", NameGemini, "steps", len(steps))
	return steps, nil
}

func (g *GeminiPlanner) generate(ctx context.Context, prompt string) ([]domain.PlanStep, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlannerUnavailable, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return ParsePlan(text)
}

var errNoContent = errors.New("no content returned from Gemini")

// responseText extracts the first text part of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPlan, errNoContent)
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: unexpected response part %T", domain.ErrInvalidPlan, part)
	}
	return string(text), nil
}
