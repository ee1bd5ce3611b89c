package request

// Role defaults to MEMBER; OWNER is rejected here by construction
// since ownership is only assigned at team creation.
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}
