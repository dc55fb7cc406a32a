package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessage(t *testing.T) {
	err := NewCustomError(ErrActivityNotFound, `activity "Chess Club" not found`)
	assert.Equal(t, `activity "Chess Club" not found`, err.Error())
}

func TestCustomErrorFallsBackToWrapped(t *testing.T) {
	err := NewCustomError(ErrActivityNotFound, "")
	assert.Equal(t, "activity not found", err.Error())
}

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewCustomError(ErrActivityNotFound, `activity "Chess Club" not found`)
	assert.True(t, errors.Is(err, ErrActivityNotFound))
	assert.False(t, errors.Is(err, ErrActivityFull))
}

func TestCustomErrorWithDetails(t *testing.T) {
	err := NewCustomError(ErrActivityFull, "roster full").
		WithDetails(map[string]interface{}{"capacity": 12})
	assert.Equal(t, 12, err.Details["capacity"])
}

func TestIsMatchesAnyTarget(t *testing.T) {
	wrapped := fmt.Errorf("signup failed: %w", ErrAlreadySignedUp)

	assert.True(t, Is(wrapped, ErrAlreadySignedUp))
	assert.True(t, Is(wrapped, ErrActivityFull, ErrAlreadySignedUp, ErrNotEnrolled))
	assert.False(t, Is(wrapped, ErrActivityFull, ErrNotEnrolled))
}
