package service

import (
	"context"
	"time"

	"team-service/internal/domain"
)

type TeamRepository interface {
	CreateTeamWithOwner(ctx context.Context, team *domain.Team, owner *domain.Membership) error
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeamsForUser(ctx context.Context, userID string) ([]domain.TeamMembership, error)
	Rename(ctx context.Context, teamID, actorID, newName string) (*domain.Team, error)
	SoftDelete(ctx context.Context, teamID, actorID string) error
}

type MembershipRepository interface {
	GetMembership(ctx context.Context, teamID, userID string) (*domain.Membership, error)
	ListMembers(ctx context.Context, teamID string) ([]domain.Member, error)
	Kick(ctx context.Context, teamID, actorID, targetID string) error
	Leave(ctx context.Context, teamID, userID string) error
	ChangeRole(ctx context.Context, teamID, actorID, targetID string, newRole domain.Role) error
}

type InvitationRepository interface {
	Issue(ctx context.Context, inv *domain.Invitation) (*domain.Team, error)
	Accept(ctx context.Context, token, userID string, now time.Time) (*domain.Team, error)
}

type ActivityRepository interface {
	ListByTeam(ctx context.Context, teamID string, page, limit int) ([]domain.ActivityEntry, int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name string, profileImage *string) (*domain.User, error)
}
