package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/progression"
)

func TestHandleDeriveStatus(t *testing.T) {
	engine := progression.NewEngine(nil, nil, nil, nil)

	tests := []struct {
		query          string
		expectedStatus int
		expectedBody   string
	}{
		{"?hp=100&sp=90", http.StatusOK, string(domain.StatusSSJ)},
		{"?hp=0&sp=90", http.StatusOK, string(domain.StatusExhausted)},
		{"?hp=50&sp=20", http.StatusOK, string(domain.StatusExhausted)},
		{"?hp=50&sp=50", http.StatusOK, string(domain.StatusNormal)},
		{"?hp=50", http.StatusBadRequest, "Missing sp query parameter"},
		{"?hp=lots&sp=1", http.StatusBadRequest, "Invalid hp query parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/status"+tt.query, nil)
			rec := httptest.NewRecorder()
			HandleDeriveStatus(engine).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
