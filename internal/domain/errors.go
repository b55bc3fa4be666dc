package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound   = "user not found"
	ErrMsgUsernameTaken  = "username already taken"
	ErrMsgIncapacitated  = "user is incapacitated, rest required"
	ErrMsgInsufficientSP = "insufficient energy"

	// Quest errors
	ErrMsgQuestNotFound         = "quest not found"
	ErrMsgQuestAlreadyCompleted = "quest already completed"

	// Feature errors
	ErrMsgFeatureLocked = "feature is locked"

	// Planner errors
	ErrMsgPlannerUnavailable = "planner unavailable"
	ErrMsgInvalidPlan        = "invalid plan"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrIncapacitated      = errors.New(ErrMsgIncapacitated)
	ErrInsufficientEnergy = errors.New(ErrMsgInsufficientSP)

	// Quest errors
	ErrQuestNotFound         = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyCompleted = errors.New(ErrMsgQuestAlreadyCompleted)

	// Feature errors
	ErrFeatureLocked = errors.New(ErrMsgFeatureLocked)

	// Planner errors
	ErrPlannerUnavailable = errors.New(ErrMsgPlannerUnavailable)
	ErrInvalidPlan        = errors.New(ErrMsgInvalidPlan)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// GateError indicates a feature is locked behind a required user level.
// It matches ErrFeatureLocked with errors.Is.
type GateError struct {
	Feature       string
	RequiredLevel int
	CurrentLevel  int
}

func (e GateError) Error() string {
	if e.RequiredLevel <= 0 {
		return fmt.Sprintf("feature '%s' is locked", e.Feature)
	}
	return fmt.Sprintf("feature '%s' unlocks at level %d (currently %d)", e.Feature, e.RequiredLevel, e.CurrentLevel)
}

// Is lets errors.Is(err, ErrFeatureLocked) succeed for gate errors
func (e GateError) Is(target error) bool {
	return target == ErrFeatureLocked
}

// InsufficientEnergyError carries the shortfall of a rejected completion
type InsufficientEnergyError struct {
	Required  int
	Available int
}

func (e InsufficientEnergyError) Error() string {
	return fmt.Sprintf("%s: need %d SP, have %d", ErrMsgInsufficientSP, e.Required, e.Available)
}

func (e InsufficientEnergyError) Is(target error) bool {
	return target == ErrInsufficientEnergy
}
