package domain

import "time"

// InviteTTL bounds how long an issued invitation can be accepted.
const InviteTTL = 7 * 24 * time.Hour

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteExpired  InviteStatus = "EXPIRED"
	InviteRevoked  InviteStatus = "REVOKED"
)

type Invitation struct {
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ID         string     `json:"id"`
	TeamID     string     `json:"team_id"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Token      string     `json:"-"`
	InvitedBy  string     `json:"invited_by"`
	AcceptedBy *string    `json:"accepted_by,omitempty"`
}

// Status derives the invitation state from timestamps; nothing stores
// the state itself, so expiry never needs a background sweep.
// Acceptance is terminal and wins over wall-clock expiry.
func (i *Invitation) Status(now time.Time) InviteStatus {
	switch {
	case i.AcceptedAt != nil:
		return InviteAccepted
	case i.RevokedAt != nil:
		return InviteRevoked
	case now.After(i.ExpiresAt):
		return InviteExpired
	default:
		return InvitePending
	}
}
