package service

import (
	"context"
	"testing"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMembers_NonMemberGetsNotFound(t *testing.T) {
	memberRepo := &fakeMemberRepo{
		memberships: map[string]*domain.Membership{
			"team-1/user-1": {TeamID: "team-1", UserID: "user-1", Role: domain.RoleOwner},
		},
		members: []domain.Member{
			{Membership: domain.Membership{UserID: "user-1", Role: domain.RoleOwner}},
		},
	}
	svc := NewMemberService(memberRepo)

	members, err := svc.ListMembers(context.Background(), "team-1", "user-1")
	require.NoError(t, err)
	assert.Len(t, members, 1)

	_, err = svc.ListMembers(context.Background(), "team-1", "stranger")
	assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
}

func TestKickMember(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{})

	err := svc.KickMember(context.Background(), "team-1", "user-1", "")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)

	err = svc.KickMember(context.Background(), "team-1", "user-1", "user-2")
	assert.NoError(t, err)
}

func TestKickMember_OwnerIsUntouchable(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{kickErr: my_errors.ErrOwnerImmutable})

	err := svc.KickMember(context.Background(), "team-1", "admin-1", "owner-1")
	assert.ErrorIs(t, err, my_errors.ErrOwnerImmutable)
}

func TestLeaveTeam_OwnerCannotLeave(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{leaveErr: my_errors.ErrOwnerCannotLeave})

	err := svc.LeaveTeam(context.Background(), "team-1", "owner-1")
	assert.ErrorIs(t, err, my_errors.ErrOwnerCannotLeave)
}

func TestChangeRole(t *testing.T) {
	memberRepo := &fakeMemberRepo{}
	svc := NewMemberService(memberRepo)

	err := svc.ChangeRole(context.Background(), "team-1", "owner-1", "user-2", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, memberRepo.changedRole)
}

func TestChangeRole_OwnerGrantIsForbiddenNotInvalid(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{})

	// OWNER is a real role, so granting it is a permission problem
	err := svc.ChangeRole(context.Background(), "team-1", "owner-1", "user-2", "OWNER")
	assert.ErrorIs(t, err, my_errors.ErrOwnerImmutable)
	assert.NotErrorIs(t, err, my_errors.ErrInvalidInput)
}

func TestChangeRole_UnknownRole(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{})

	err := svc.ChangeRole(context.Background(), "team-1", "owner-1", "user-2", "GODMODE")
	assert.ErrorIs(t, err, my_errors.ErrInvalidInput)

	err = svc.ChangeRole(context.Background(), "team-1", "owner-1", "", "ADMIN")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)
}
