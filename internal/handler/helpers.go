package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"team-service/internal/dto"
	"team-service/internal/middleware"
	"team-service/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// respondServiceError maps sentinel business my_errors onto the HTTP
// taxonomy: Validation 400, Forbidden 403, NotFound 404, Conflict 409,
// Gone 410. Anything unmatched is an infrastructure failure and
// surfaces as an opaque 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrInvalidInput),
		errors.Is(err, my_errors.ErrEmptyField):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	case errors.Is(err, my_errors.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, my_errors.ErrForbidden),
		errors.Is(err, my_errors.ErrOwnerCannotLeave),
		errors.Is(err, my_errors.ErrOwnerImmutable):
		respondError(w, http.StatusForbidden, dto.ErrCodeForbidden, err.Error())
	case errors.Is(err, my_errors.ErrTeamNotFound),
		errors.Is(err, my_errors.ErrMemberNotFound),
		errors.Is(err, my_errors.ErrInviteNotFound),
		errors.Is(err, my_errors.ErrUserNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrMembershipExists),
		errors.Is(err, my_errors.ErrInviteAlreadyAccepted),
		errors.Is(err, my_errors.ErrEmailTaken):
		respondError(w, http.StatusConflict, dto.ErrCodeConflict, err.Error())
	case errors.Is(err, my_errors.ErrInviteExpired):
		respondError(w, http.StatusGone, dto.ErrCodeGone, err.Error())
	default:
		slog.Error("unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, "internal server error")
	}
}

// callerID pulls the authenticated user set by the auth middleware.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing authentication")
		return "", false
	}
	return userID, true
}
