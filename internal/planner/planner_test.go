package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

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

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSteps int
		wantErr   bool
	}{
		{
			name:      "plain json",
			input:     `[{"step":1,"title":"侦察地形","desc":"先感知气","difficulty":"简单","type":"主线","sp_cost":5}]`,
			wantSteps: 1,
		},
		{
			name:      "fenced json",
			input:     "```json\n[{\"step\":1,\"title\":\"a\"},{\"step\":2,\"title\":\"b\"}]\n```",
			wantSteps: 2,
		},
		{
			name:      "bare fence",
			input:     "```\n[{\"step\":1,\"title\":\"a\"}]\n```",
			wantSteps: 1,
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "not json", input: "大界王 is thinking", wantErr: true},
		{name: "empty array", input: "[]", wantErr: true},
		{name: "object instead of array", input: `{"step":1}`, wantErr: true},
		{name: "negative sp cost", input: `[{"step":1,"title":"a","sp_cost":-5}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := ParsePlan(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPlan)
				return
			}
			require.NoError(t, err)
			assert.Len(t, steps, tt.wantSteps)
		})
	}
}

func TestParsePlan_FieldMapping(t *testing.T) {
	steps, err := ParsePlan(`[{"step":2,"title":"初次切磋","desc":"热身运动","difficulty":"普通","type":"主线","sp_cost":15}]`)
	require.NoError(t, err)

	assert.Equal(t, domain.PlanStep{
		Step: 2, Title: "初次切磋", Description: "热身运动", Difficulty: "普通", Type: "主线", SPCost: 15,
	}, steps[0])
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`[{"step":1}]`)}}},
		},
	}
	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, `[{"step":1}]`, text)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	_, err = responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestNewGeminiPlanner_RequiresKey(t *testing.T) {
	_, err := NewGeminiPlanner(context.Background(), "", "", 0)
	assert.ErrorIs(t, err, domain.ErrPlannerUnavailable)
}

func TestOfflinePlanner(t *testing.T) {
	p, err := NewOfflinePlanner()
	require.NoError(t, err)

	steps, err := p.GeneratePlan(context.Background(), "学习Go语言并发编程模式")
	require.NoError(t, err)
	require.Len(t, steps, 5)

	assert.Equal(t, "准备阶段：了解学习Go语言并发编程...", steps[0].Title)
	assert.Equal(t, "修行的第一步，先了解敌人的实力！", steps[0].Description)
	assert.Equal(t, "EASY", steps[0].Difficulty)
	assert.Equal(t, 10, steps[0].SPCost)
	assert.Equal(t, "EPIC", steps[4].Difficulty)
	assert.Equal(t, 40, steps[4].SPCost)

	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, "MAIN", s.Type)
	}
}

func TestOfflinePlanner_ShortGoalNotTruncated(t *testing.T) {
	p, err := NewOfflinePlanner()
	require.NoError(t, err)

	steps, err := p.GeneratePlan(context.Background(), "  跑步  ")
	require.NoError(t, err)
	assert.Equal(t, "准备阶段：了解跑步", steps[0].Title)
}

func TestOfflinePlanner_GoalWithTemplateSyntaxIsLiteral(t *testing.T) {
	p, err := NewOfflinePlanner()
	require.NoError(t, err)

	steps, err := p.GeneratePlan(context.Background(), "{{.Goal}}")
	require.NoError(t, err)
	assert.Equal(t, "准备阶段：了解{{.Goal}}", steps[0].Title)
}

func TestOfflinePlanner_InvalidGoal(t *testing.T) {
	p, err := NewOfflinePlanner()
	require.NoError(t, err)

	_, err = p.GeneratePlan(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = p.GeneratePlan(context.Background(), strings.Repeat("a", MaxGoalLength+1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFallbackPlanner(t *testing.T) {
	ctx := context.Background()
	planA := []domain.PlanStep{{Step: 1, Title: "primary"}}
	planB := []domain.PlanStep{{Step: 1, Title: "secondary"}}

	t.Run("primary succeeds", func(t *testing.T) {
		primary, secondary := &MockPlanner{}, &MockPlanner{}
		primary.On("GeneratePlan", ctx, "goal").Return(planA, nil)

		steps, err := NewFallbackPlanner(primary, secondary).GeneratePlan(ctx, "goal")
		require.NoError(t, err)
		assert.Equal(t, planA, steps)
		primary.AssertExpectations(t)
		secondary.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything)
	})

	t.Run("primary fails", func(t *testing.T) {
		primary, secondary := &MockPlanner{}, &MockPlanner{}
		primary.On("GeneratePlan", ctx, "goal").Return(nil, domain.ErrPlannerUnavailable)
		secondary.On("GeneratePlan", ctx, "goal").Return(planB, nil)

		steps, err := NewFallbackPlanner(primary, secondary).GeneratePlan(ctx, "goal")
		require.NoError(t, err)
		assert.Equal(t, planB, steps)
		secondary.AssertExpectations(t)
	})

	t.Run("invalid goal is not retried", func(t *testing.T) {
		primary, secondary := &MockPlanner{}, &MockPlanner{}
		primary.On("GeneratePlan", ctx, "").Return(nil, domain.ErrInvalidInput)

		_, err := NewFallbackPlanner(primary, secondary).GeneratePlan(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		secondary.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything)
	})

	t.Run("no primary", func(t *testing.T) {
		secondary := &MockPlanner{}
		secondary.On("GeneratePlan", ctx, "goal").Return(nil, errors.New("boom"))

		_, err := NewFallbackPlanner(nil, secondary).GeneratePlan(ctx, "goal")
		assert.EqualError(t, err, "boom")
	})
}
