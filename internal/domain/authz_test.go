package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_TeamManagement(t *testing.T) {
	assert.True(t, Authorize(RoleOwner, ActionRenameTeam, ""))
	assert.True(t, Authorize(RoleOwner, ActionDeleteTeam, ""))

	assert.False(t, Authorize(RoleAdmin, ActionRenameTeam, ""))
	assert.False(t, Authorize(RoleAdmin, ActionDeleteTeam, ""))
	assert.False(t, Authorize(RoleMember, ActionRenameTeam, ""))
	assert.False(t, Authorize(RoleMember, ActionDeleteTeam, ""))
}

func TestAuthorize_Invite(t *testing.T) {
	assert.True(t, Authorize(RoleOwner, ActionInvite, ""))
	assert.True(t, Authorize(RoleAdmin, ActionInvite, ""))
	assert.False(t, Authorize(RoleMember, ActionInvite, ""))
}

func TestAuthorize_Kick(t *testing.T) {
	tests := []struct {
		name    string
		actor   Role
		target  Role
		allowed bool
	}{
		{"owner kicks admin", RoleOwner, RoleAdmin, true},
		{"owner kicks member", RoleOwner, RoleMember, true},
		{"admin kicks member", RoleAdmin, RoleMember, true},
		{"admin kicks admin", RoleAdmin, RoleAdmin, false},
		{"admin kicks owner", RoleAdmin, RoleOwner, false},
		{"member kicks member", RoleMember, RoleMember, false},
		{"member kicks admin", RoleMember, RoleAdmin, false},
		{"nobody kicks the owner", RoleOwner, RoleOwner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Authorize(tt.actor, ActionKick, tt.target))
		})
	}
}

func TestAuthorize_ChangeRole(t *testing.T) {
	assert.True(t, Authorize(RoleOwner, ActionChangeRole, RoleAdmin))
	assert.True(t, Authorize(RoleOwner, ActionChangeRole, RoleMember))

	// the owner's own role is immutable
	assert.False(t, Authorize(RoleOwner, ActionChangeRole, RoleOwner))

	assert.False(t, Authorize(RoleAdmin, ActionChangeRole, RoleMember))
	assert.False(t, Authorize(RoleMember, ActionChangeRole, RoleMember))
}

func TestAuthorize_Leave(t *testing.T) {
	assert.True(t, Authorize(RoleAdmin, ActionLeave, ""))
	assert.True(t, Authorize(RoleMember, ActionLeave, ""))
	assert.False(t, Authorize(RoleOwner, ActionLeave, ""))
}

func TestAuthorize_Read(t *testing.T) {
	assert.True(t, Authorize(RoleOwner, ActionRead, ""))
	assert.True(t, Authorize(RoleAdmin, ActionRead, ""))
	assert.True(t, Authorize(RoleMember, ActionRead, ""))
	assert.False(t, Authorize(Role(""), ActionRead, ""))
}

func TestAuthorize_UnknownActionDenied(t *testing.T) {
	assert.False(t, Authorize(RoleOwner, Action("DROP_TABLES"), ""))
}
