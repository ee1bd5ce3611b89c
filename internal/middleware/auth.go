package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"team-service/internal/dto"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware checks the JWT bearer token in Authorization and puts
// the caller's user id into the request context. Core operations never
// read ambient identity; handlers pass it down explicitly.
func AuthMiddleware(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Code:    dto.ErrCodeUnauthorized,
					Message: "missing authorization header",
				})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Code:    dto.ErrCodeUnauthorized,
					Message: "invalid authorization header format",
				})
				return
			}

			token := parts[1]
			userID, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Code:    dto.ErrCodeUnauthorized,
					Message: "invalid or expired token",
				})
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated caller set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

func respondError(w http.ResponseWriter, status int, errResp dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
