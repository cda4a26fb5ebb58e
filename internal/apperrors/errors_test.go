package apperrors_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	err := apperrors.NewValidationError("date", "is required")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "validation error: date is required", err.Error())
}

func TestFieldOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to add expense: %w", apperrors.NewValidationError("amount", "must be greater than zero"))

	field, ok := apperrors.FieldOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "amount", field)

	_, ok = apperrors.FieldOf(apperrors.ErrNotFound)
	assert.False(t, ok)
}
