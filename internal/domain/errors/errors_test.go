package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("User not found")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	conflict := Conflict("Account number '1' already exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)
	assert.Equal(t, "internal server error", internal.Message)
	assert.Equal(t, "db down", internal.Error())

	badReq := BadRequest("invalid user ID")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeInvalidInput, badReq.Code)

	unauth := Unauthorized("Invalid token")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("Insufficient permissions")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)
}

func TestValidation(t *testing.T) {
	details := []string{"name is required"}
	err := Validation(details)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, details, err.Details)
}

func TestInternal_NilCause(t *testing.T) {
	err := Internal("Error to create card", nil)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "Error to create card", err.Message)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", NotFound("Card not found"))
	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Card not found", appErr.Message)

	_, ok = As(stderrors.New("plain"))
	assert.False(t, ok)
}
