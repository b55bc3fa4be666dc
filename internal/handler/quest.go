package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/planner"
	"github.com/osse101/ProjectLife_Go/internal/progression"
)

// IngestPlanRequest is the body of POST /api/v1/users/{userID}/quests/plan
type IngestPlanRequest struct {
	Steps []domain.PlanStep `json:"steps" validate:"max=50"`
}

// GoalRequest is the body of POST /api/v1/users/{userID}/goals
type GoalRequest struct {
	GoalText string `json:"goal_text" validate:"required,notblank,max=500"`
}

// QuestListResponse lists a user's quests
type QuestListResponse struct {
	Quests []domain.Quest `json:"quests"`
}

// PlanResponse is returned after a plan is ingested
type PlanResponse struct {
	Quests  []domain.Quest `json:"quests"`
	Message string         `json:"message"`
}

// CompleteQuestResponse is returned after a quest is completed
type CompleteQuestResponse struct {
	domain.CompletionResult
	LevelUp  bool   `json:"level_up"`
	NewLevel int    `json:"new_level"`
	Message  string `json:"message"`
}

// HandleListQuests lists a user's quests, visible ones only unless all=true
// @Summary List quests
// @Tags quests
// @Produce json
// @Param userID path string true "User ID"
// @Param all query bool false "Include hidden quests"
// @Success 200 {object} QuestListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/quests [get]
func HandleListQuests(engine progression.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeHidden, ok := GetBoolQueryParam(r, w, "all", false)
		if !ok {
			return
		}

		quests, err := engine.ListQuests(r.Context(), userIDParam(r), includeHidden)
		if err != nil {
			respondServiceError(w, r, "List quests", err)
			return
		}
		if quests == nil {
			quests = []domain.Quest{}
		}
		respondJSON(w, http.StatusOK, QuestListResponse{Quests: quests})
	}
}

// HandleIngestPlan appends an explicit plan to the user's quests as a new chain
// @Summary Ingest goal plan
// @Tags quests
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body IngestPlanRequest true "Plan steps"
// @Success 201 {object} PlanResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/quests/plan [post]
func HandleIngestPlan(engine progression.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IngestPlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Ingest plan"); err != nil {
			return
		}
		ingestAndRespond(w, r, engine, req.Steps)
	}
}

// HandleSubmitGoal asks the planner to decompose a goal and ingests the result
// @Summary Submit goal
// @Tags quests
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body GoalRequest true "Goal"
// @Success 201 {object} PlanResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/users/{userID}/goals [post]
func HandleSubmitGoal(p planner.Planner, engine progression.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoalRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit goal"); err != nil {
			return
		}

		steps, err := p.GeneratePlan(r.Context(), req.GoalText)
		if err != nil {
			respondServiceError(w, r, "Generate plan", err)
			return
		}
		ingestAndRespond(w, r, engine, steps)
	}
}

func ingestAndRespond(w http.ResponseWriter, r *http.Request, engine progression.Engine, steps []domain.PlanStep) {
	quests, err := engine.IngestGoalPlan(r.Context(), userIDParam(r), steps)
	if err != nil {
		respondServiceError(w, r, "Ingest plan", err)
		return
	}
	if quests == nil {
		quests = []domain.Quest{}
	}

	logger.FromContext(r.Context()).Info("Plan ingested", "quests", len(quests))
	respondJSON(w, http.StatusCreated, PlanResponse{Quests: quests, Message: MsgPlanIngested})
}

// HandleCompleteQuest completes a quest and pays its reward
// @Summary Complete quest
// @Tags quests
// @Produce json
// @Param userID path string true "User ID"
// @Param questID path string true "Quest ID"
// @Success 200 {object} CompleteQuestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users/{userID}/quests/{questID}/complete [post]
func HandleCompleteQuest(engine progression.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questID := chi.URLParam(r, "questID")

		result, err := engine.CompleteQuest(r.Context(), userIDParam(r), questID)
		if err != nil {
			respondServiceError(w, r, "Complete quest", err)
			return
		}

		resp := CompleteQuestResponse{
			CompletionResult: *result,
			LevelUp:          result.LevelsGained > 0,
			NewLevel:         result.User.Level,
			Message:          MsgQuestCompleted,
		}
		if resp.LevelUp {
			resp.Message = fmt.Sprintf(MsgLevelUp, resp.NewLevel)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
