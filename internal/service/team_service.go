package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/google/uuid"
)

type TeamService struct {
	teamRepo   TeamRepository
	memberRepo MembershipRepository
}

func NewTeamService(teamRepo TeamRepository, memberRepo MembershipRepository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

func validateTeamName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < domain.MinTeamNameLen || strings.TrimSpace(name) == "" {
		return fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}
	if length > domain.MaxTeamNameLen {
		return fmt.Errorf("name must be at most %d characters: %w", domain.MaxTeamNameLen, my_errors.ErrInvalidInput)
	}
	return nil
}

func (s *TeamService) CreateTeam(ctx context.Context, ownerID, name string) (*domain.Team, error) {
	if err := validateTeamName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team := &domain.Team{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &domain.Membership{
		ID:       uuid.NewString(),
		TeamID:   team.ID,
		UserID:   ownerID,
		Role:     domain.RoleOwner,
		JoinedAt: now,
	}

	if err := s.teamRepo.CreateTeamWithOwner(ctx, team, owner); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// GetTeam returns the team to one of its members. Non-members get
// NotFound, so team ids cannot be probed for existence.
func (s *TeamService) GetTeam(ctx context.Context, teamID, callerID string) (*domain.Team, error) {
	if _, err := s.memberRepo.GetMembership(ctx, teamID, callerID); err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) MyTeams(ctx context.Context, userID string) ([]domain.TeamMembership, error) {
	teams, err := s.teamRepo.ListTeamsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) RenameTeam(ctx context.Context, teamID, actorID, newName string) (*domain.Team, error) {
	if err := validateTeamName(newName); err != nil {
		return nil, err
	}
	return s.teamRepo.Rename(ctx, teamID, actorID, newName)
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID, actorID string) error {
	return s.teamRepo.SoftDelete(ctx, teamID, actorID)
}
