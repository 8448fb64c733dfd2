package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessageFormat(t *testing.T) {
	err := NewValidation("limit must be positive")
	assert.Equal(t, "VALIDATION_ERROR: limit must be positive", err.Error())

	cause := errors.New("connection refused")
	err = NewStorage("counter update failed", cause)
	assert.Equal(t, "STORAGE_ERROR: counter update failed (caused by: connection refused)", err.Error())
}

func TestUnwrap_PreservesCauseChain(t *testing.T) {
	cause := errors.New("row lock timeout")
	err := NewStorage("allocation failed", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWithDetailAndCause_Chainable(t *testing.T) {
	cause := errors.New("parse failure")
	err := NewValidation("malformed cursor").
		WithDetail("cursor", "xyz").
		WithCause(cause)

	assert.Equal(t, "xyz", err.Details["cursor"])
	assert.True(t, errors.Is(err, cause))
}

func TestFactories_CodesAndStatuses(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NewValidation("bad"), CodeValidation, http.StatusBadRequest},
		{NewNotFound("consulta", 42), CodeNotFound, http.StatusNotFound},
		{NewBusinessRule(CodeInvalidStateTransition, "illegal"), CodeInvalidStateTransition, http.StatusUnprocessableEntity},
		{NewConcurrentModification("consulta", 42), CodeConcurrentModification, http.StatusConflict},
		{NewStorage("broke", nil), CodeStorage, http.StatusInternalServerError},
		{NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{NewUnauthorized("invalid credentials"), CodeUnauthorized, http.StatusUnauthorized},
		{NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{NewConflict("stale"), CodeConflict, http.StatusConflict},
		{NewDuplicate("usuario", "codigo", "U-100"), CodeDuplicate, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.HTTPStatus)
		})
	}
}

func TestNewNotFound_CarriesEntityDetails(t *testing.T) {
	err := NewNotFound("solicitante", int64(7))

	assert.Equal(t, "solicitante not found", err.Message)
	assert.Equal(t, "solicitante", err.Details["entity"])
	assert.Equal(t, int64(7), err.Details["id"])
}

func TestAsAppError_SeesThroughWrapping(t *testing.T) {
	inner := NewNotFound("archivo", 3)
	wrapped := fmt.Errorf("loading attachment: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestPredicates_RejectForeignErrors(t *testing.T) {
	plain := errors.New("plain")

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsValidation(plain))
	assert.False(t, IsDuplicate(plain))
	assert.False(t, IsStorage(plain))
	assert.False(t, IsAppError(plain))
	assert.False(t, IsNotFound(nil))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(NewNotFound("consulta", 1)))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}
