package request

// NewRole is validated in the service, not with oneof: an OWNER grant
// must come back as a 403, not a 400.
type ChangeRoleRequest struct {
	UserID  string `json:"userId" validate:"required"`
	NewRole string `json:"newRole" validate:"required"`
}
