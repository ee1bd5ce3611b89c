package service

import (
	"context"
	"time"

	"team-service/internal/domain"
	"team-service/internal/my_errors"
)

type fakeTeamRepo struct {
	createdTeam  *domain.Team
	createdOwner *domain.Membership
	createErr    error

	teams map[string]*domain.Team

	listed  []domain.TeamMembership
	listErr error

	renamed   *domain.Team
	renameErr error

	deletedID string
	deleteErr error
}

func (f *fakeTeamRepo) CreateTeamWithOwner(_ context.Context, team *domain.Team, owner *domain.Membership) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdTeam = team
	f.createdOwner = owner
	return nil
}

func (f *fakeTeamRepo) GetTeamByID(_ context.Context, teamID string) (*domain.Team, error) {
	team, ok := f.teams[teamID]
	if !ok {
		return nil, my_errors.ErrTeamNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) ListTeamsForUser(_ context.Context, _ string) ([]domain.TeamMembership, error) {
	return f.listed, f.listErr
}

func (f *fakeTeamRepo) Rename(_ context.Context, teamID, _, newName string) (*domain.Team, error) {
	if f.renameErr != nil {
		return nil, f.renameErr
	}
	f.renamed = &domain.Team{ID: teamID, Name: newName}
	return f.renamed, nil
}

func (f *fakeTeamRepo) SoftDelete(_ context.Context, teamID, _ string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = teamID
	return nil
}

type fakeMemberRepo struct {
	memberships map[string]*domain.Membership // teamID + "/" + userID

	members []domain.Member

	kickErr  error
	leaveErr error

	changedRole domain.Role
	changeErr   error
}

func (f *fakeMemberRepo) GetMembership(_ context.Context, teamID, userID string) (*domain.Membership, error) {
	m, ok := f.memberships[teamID+"/"+userID]
	if !ok {
		return nil, my_errors.ErrMemberNotFound
	}
	return m, nil
}

func (f *fakeMemberRepo) ListMembers(_ context.Context, _ string) ([]domain.Member, error) {
	return f.members, nil
}

func (f *fakeMemberRepo) Kick(_ context.Context, _, _, _ string) error {
	return f.kickErr
}

func (f *fakeMemberRepo) Leave(_ context.Context, _, _ string) error {
	return f.leaveErr
}

func (f *fakeMemberRepo) ChangeRole(_ context.Context, _, _, _ string, newRole domain.Role) error {
	if f.changeErr != nil {
		return f.changeErr
	}
	f.changedRole = newRole
	return nil
}

type fakeInviteRepo struct {
	issued   *domain.Invitation
	issueErr error
	team     *domain.Team

	acceptedToken string
	acceptedAt    time.Time
	acceptErr     error
}

func (f *fakeInviteRepo) Issue(_ context.Context, inv *domain.Invitation) (*domain.Team, error) {
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	f.issued = inv
	return f.team, nil
}

func (f *fakeInviteRepo) Accept(_ context.Context, token, _ string, now time.Time) (*domain.Team, error) {
	if f.acceptErr != nil {
		return nil, f.acceptErr
	}
	f.acceptedToken = token
	f.acceptedAt = now
	return f.team, nil
}

type fakeActivityRepo struct {
	entries []domain.ActivityEntry
	total   int

	gotPage  int
	gotLimit int
}

func (f *fakeActivityRepo) ListByTeam(_ context.Context, _ string, page, limit int) ([]domain.ActivityEntry, int, error) {
	f.gotPage = page
	f.gotLimit = limit
	return f.entries, f.total, nil
}

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User

	created   *domain.User
	createErr error
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = user
	if f.byID == nil {
		f.byID = map[string]*domain.User{}
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, my_errors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, my_errors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, userID, name string, profileImage *string) (*domain.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, my_errors.ErrUserNotFound
	}
	u.Name = name
	u.ProfileImage = profileImage
	return u, nil
}

type recordingNotifier struct {
	teamName string
	inv      *domain.Invitation
}

func (n *recordingNotifier) InvitationIssued(_ context.Context, teamName string, inv *domain.Invitation) {
	n.teamName = teamName
	n.inv = inv
}
