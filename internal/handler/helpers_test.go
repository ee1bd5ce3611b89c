package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"team-service/internal/dto"
	"team-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{my_errors.ErrInvalidInput, http.StatusBadRequest, dto.ErrCodeValidation},
		{my_errors.ErrEmptyField, http.StatusBadRequest, dto.ErrCodeValidation},
		{my_errors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrCodeUnauthorized},
		{my_errors.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden},
		{my_errors.ErrOwnerCannotLeave, http.StatusForbidden, dto.ErrCodeForbidden},
		{my_errors.ErrOwnerImmutable, http.StatusForbidden, dto.ErrCodeForbidden},
		{my_errors.ErrTeamNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{my_errors.ErrMemberNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{my_errors.ErrInviteNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{my_errors.ErrMembershipExists, http.StatusConflict, dto.ErrCodeConflict},
		{my_errors.ErrInviteAlreadyAccepted, http.StatusConflict, dto.ErrCodeConflict},
		{my_errors.ErrEmailTaken, http.StatusConflict, dto.ErrCodeConflict},
		{my_errors.ErrInviteExpired, http.StatusGone, dto.ErrCodeGone},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			// handlers always see sentinels wrapped with context
			respondServiceError(rec, fmt.Errorf("doing the thing: %w", tt.err))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondServiceError_UnknownErrorIsOpaque500(t *testing.T) {
	rec := httptest.NewRecorder()
	respondServiceError(rec, fmt.Errorf("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrCodeInternal, body.Code)
	// infrastructure detail never reaches the client
	assert.Equal(t, "internal server error", body.Message)
}
