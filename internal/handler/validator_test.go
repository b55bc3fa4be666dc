package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationError(t *testing.T) {
	t.Run("Uses JSON field names", func(t *testing.T) {
		err := GetValidator().ValidateStruct(&GoalRequest{})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["goal_text"])
	})

	t.Run("Rejects control characters in usernames", func(t *testing.T) {
		err := GetValidator().ValidateStruct(&RegisterUserRequest{Username: "bad\nname"})
		require.Error(t, err)
		assert.Equal(t, "Contains invalid characters", FormatValidationError(err)["username"])
	})

	t.Run("Non validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestValidateNotBlank(t *testing.T) {
	assert.NoError(t, GetValidator().ValidateStruct(&RegisterUserRequest{Username: "vegeta"}))
	assert.Error(t, GetValidator().ValidateStruct(&RegisterUserRequest{Username: "  "}))
}
