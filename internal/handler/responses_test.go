package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"incapacitated", domain.ErrIncapacitated, http.StatusConflict, ErrMsgRestRequired},
		{"wrapped incapacitated", fmt.Errorf("complete: %w", domain.ErrIncapacitated), http.StatusConflict, ErrMsgRestRequired},
		{"energy", domain.InsufficientEnergyError{Required: 10, Available: 5}, http.StatusConflict, ErrMsgNotEnoughEnergy},
		{"already completed", domain.ErrQuestAlreadyCompleted, http.StatusConflict, ErrMsgQuestAlreadyCompleted},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, ErrMsgUsernameTaken},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFound},
		{"quest not found", domain.ErrQuestNotFound, http.StatusNotFound, ErrMsgQuestNotFound},
		{"feature locked", domain.ErrFeatureLocked, http.StatusForbidden, ErrMsgFeatureLocked},
		{"gate", domain.GateError{Feature: "shop", RequiredLevel: 5, CurrentLevel: 1}, http.StatusForbidden, "feature 'shop' unlocks at level 5 (currently 1)"},
		{"invalid input", fmt.Errorf("%w: goal is empty", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"planner unavailable", domain.ErrPlannerUnavailable, http.StatusBadGateway, ErrMsgPlannerUnavailable},
		{"invalid plan", domain.ErrInvalidPlan, http.StatusBadGateway, ErrMsgPlannerUnavailable},
		{"unexpected", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
}

func TestRespondJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusAccepted, SuccessResponse{Message: "ok"})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}
