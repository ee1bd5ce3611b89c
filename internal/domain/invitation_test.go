package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newInvitation(issuedAt time.Time) Invitation {
	return Invitation{
		ID:        "inv-1",
		TeamID:    "team-1",
		Email:     "new@example.com",
		Role:      RoleMember,
		Token:     "deadbeefdeadbeefdeadbeefdeadbeef",
		InvitedBy: "user-1",
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(InviteTTL),
	}
}

func TestInvitationStatus_Pending(t *testing.T) {
	now := time.Now().UTC()
	inv := newInvitation(now)

	assert.Equal(t, InvitePending, inv.Status(now))
	assert.Equal(t, InvitePending, inv.Status(now.Add(InviteTTL-time.Second)))
}

func TestInvitationStatus_Expired(t *testing.T) {
	now := time.Now().UTC()
	inv := newInvitation(now)

	// the boundary instant itself is still acceptable
	assert.Equal(t, InvitePending, inv.Status(inv.ExpiresAt))
	assert.Equal(t, InviteExpired, inv.Status(inv.ExpiresAt.Add(time.Nanosecond)))
}

func TestInvitationStatus_AcceptedIsTerminal(t *testing.T) {
	now := time.Now().UTC()
	inv := newInvitation(now)
	acceptedAt := now.Add(time.Hour)
	inv.AcceptedAt = &acceptedAt

	// acceptance wins even after the expiry instant has passed
	assert.Equal(t, InviteAccepted, inv.Status(now.Add(30*24*time.Hour)))
}

func TestInvitationStatus_Revoked(t *testing.T) {
	now := time.Now().UTC()
	inv := newInvitation(now)
	revokedAt := now.Add(time.Minute)
	inv.RevokedAt = &revokedAt

	assert.Equal(t, InviteRevoked, inv.Status(now.Add(time.Hour)))
	assert.Equal(t, InviteRevoked, inv.Status(now.Add(InviteTTL+time.Hour)))
}

func TestInviteTTL(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, InviteTTL)
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"OWNER", "ADMIN", "MEMBER"} {
		role, err := ParseRole(s)
		assert.NoError(t, err)
		assert.Equal(t, Role(s), role)
	}

	for _, s := range []string{"", "owner", "SUPERUSER"} {
		_, err := ParseRole(s)
		assert.Error(t, err)
	}
}
