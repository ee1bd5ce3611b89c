package my_errors

import "errors"

// Sentinel my_errors for the business layer, matched with errors.Is in handlers
var (
	// User my_errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Team my_errors
	ErrTeamNotFound = errors.New("team not found")

	// Membership my_errors
	ErrMemberNotFound   = errors.New("member not found")
	ErrMembershipExists = errors.New("user is already a member of this team")
	ErrOwnerCannotLeave = errors.New("owner cannot leave the team, delete it instead")
	ErrOwnerImmutable   = errors.New("the team owner cannot be targeted")
	ErrForbidden        = errors.New("insufficient role for this action")

	// Invitation my_errors
	ErrInviteNotFound        = errors.New("invitation not found")
	ErrInviteExpired         = errors.New("invitation has expired")
	ErrInviteAlreadyAccepted = errors.New("invitation has already been accepted")

	// Auth my_errors
	ErrInvalidToken = errors.New("invalid token")

	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
