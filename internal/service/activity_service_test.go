package service

import (
	"context"
	"testing"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberOf(teamID, userID string) *fakeMemberRepo {
	return &fakeMemberRepo{memberships: map[string]*domain.Membership{
		teamID + "/" + userID: {TeamID: teamID, UserID: userID, Role: domain.RoleMember},
	}}
}

func TestListActivities_Defaults(t *testing.T) {
	activityRepo := &fakeActivityRepo{total: 42}
	svc := NewActivityService(activityRepo, memberOf("team-1", "user-1"))

	_, total, err := svc.ListByTeam(context.Background(), "team-1", "user-1", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 42, total)
	assert.Equal(t, 1, activityRepo.gotPage)
	assert.Equal(t, domain.DefaultActivityLimit, activityRepo.gotLimit)
}

func TestListActivities_LimitCap(t *testing.T) {
	activityRepo := &fakeActivityRepo{}
	svc := NewActivityService(activityRepo, memberOf("team-1", "user-1"))

	_, _, err := svc.ListByTeam(context.Background(), "team-1", "user-1", 3, 500)
	require.NoError(t, err)

	assert.Equal(t, 3, activityRepo.gotPage)
	assert.Equal(t, 100, activityRepo.gotLimit)
}

func TestListActivities_NonMemberGetsNotFound(t *testing.T) {
	svc := NewActivityService(&fakeActivityRepo{}, memberOf("team-1", "user-1"))

	_, _, err := svc.ListByTeam(context.Background(), "team-1", "stranger", 1, 20)
	assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
}
