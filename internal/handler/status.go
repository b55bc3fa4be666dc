package handler

import (
	"net/http"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/progression"
)

// StatusResponse is the status derived from a pair of HP/SP values
type StatusResponse struct {
	HP     int           `json:"hp"`
	SP     int           `json:"sp"`
	Status domain.Status `json:"status"`
}

// HandleDeriveStatus classifies arbitrary hp and sp values
// @Summary Derive status
// @Tags status
// @Produce json
// @Param hp query int true "Health points"
// @Param sp query int true "Energy points"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/status [get]
func HandleDeriveStatus(engine progression.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hp, ok := GetIntQueryParam(r, w, "hp")
		if !ok {
			return
		}
		sp, ok := GetIntQueryParam(r, w, "sp")
		if !ok {
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{HP: hp, SP: sp, Status: engine.DeriveStatus(hp, sp)})
	}
}
