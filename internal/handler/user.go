package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/user"
)

// RegisterUserRequest is the body of POST /api/v1/users
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,notblank,nocontrol,max=50"`
}

// UserResponse wraps a user with its derived status
type UserResponse struct {
	User domain.User `json:"user"`
}

// RecoveryResponse is returned by the rest, meditate and senzu endpoints
type RecoveryResponse struct {
	domain.RecoveryResult
	Message string `json:"message"`
}

// HandleRegisterUser creates a new level 1 user
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Username"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := svc.RegisterUser(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", u.ID)
		respondJSON(w, http.StatusCreated, UserResponse{User: *u})
	}
}

// HandleGetUser returns a user's current stats
// @Summary Get user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetUser(r.Context(), userIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}
		respondJSON(w, http.StatusOK, UserResponse{User: *u})
	}
}

// HandleRest restores HP
// @Summary Rest
// @Tags recovery
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} RecoveryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/rest [post]
func HandleRest(svc user.Service) http.HandlerFunc {
	return handleRecovery("Rest", svc.Rest)
}

// HandleMeditate restores SP
// @Summary Meditate
// @Tags recovery
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} RecoveryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/meditate [post]
func HandleMeditate(svc user.Service) http.HandlerFunc {
	return handleRecovery("Meditate", svc.Meditate)
}

// HandleSenzu fully restores HP and SP
// @Summary Eat a senzu bean
// @Tags recovery
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} RecoveryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/senzu [post]
func HandleSenzu(svc user.Service) http.HandlerFunc {
	return handleRecovery("Senzu", svc.ConsumeSenzu)
}

type recoveryFunc func(ctx context.Context, userID string) (*domain.RecoveryResult, error)

func handleRecovery(opName string, apply recoveryFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := apply(r.Context(), userIDParam(r))
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, RecoveryResponse{
			RecoveryResult: *result,
			Message:        recoveryMessage(result),
		})
	}
}

func recoveryMessage(result *domain.RecoveryResult) string {
	switch result.Action {
	case domain.RecoveryActionRest:
		return MsgRested
	case domain.RecoveryActionMeditate:
		return MsgMeditated
	default:
		return MsgSenzuEaten
	}
}

// HandleShop checks the level gate on the shop
// @Summary Shop access
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/shop [get]
func HandleShop(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckShopAccess(r.Context(), userIDParam(r)); err != nil {
			respondServiceError(w, r, "Shop access", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShopUnlocked})
	}
}
