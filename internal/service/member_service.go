package service

import (
	"context"
	"fmt"

	"team-service/internal/domain"
	"team-service/internal/my_errors"
)

type MemberService struct {
	memberRepo MembershipRepository
}

func NewMemberService(memberRepo MembershipRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

func (s *MemberService) ListMembers(ctx context.Context, teamID, callerID string) ([]domain.Member, error) {
	if _, err := s.memberRepo.GetMembership(ctx, teamID, callerID); err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	members, err := s.memberRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *MemberService) KickMember(ctx context.Context, teamID, actorID, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("user id: %w", my_errors.ErrEmptyField)
	}
	return s.memberRepo.Kick(ctx, teamID, actorID, targetID)
}

func (s *MemberService) LeaveTeam(ctx context.Context, teamID, userID string) error {
	return s.memberRepo.Leave(ctx, teamID, userID)
}

func (s *MemberService) ChangeRole(ctx context.Context, teamID, actorID, targetID, newRole string) error {
	if targetID == "" {
		return fmt.Errorf("user id: %w", my_errors.ErrEmptyField)
	}

	role, err := domain.ParseRole(newRole)
	if err != nil {
		return fmt.Errorf("new_role: %w", my_errors.ErrInvalidInput)
	}
	// OWNER is granted at team creation only.
	if role == domain.RoleOwner {
		return fmt.Errorf("%w", my_errors.ErrOwnerImmutable)
	}

	return s.memberRepo.ChangeRole(ctx, teamID, actorID, targetID, role)
}
