package dto

// ErrorResponse is flat so clients can always read a top-level message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeValidation   = "VALIDATION"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeGone         = "GONE"
	ErrCodeInternal     = "INTERNAL"
)
