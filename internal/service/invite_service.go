package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/google/uuid"
)

type InviteService struct {
	inviteRepo InvitationRepository
	notifier   Notifier
}

func NewInviteService(inviteRepo InvitationRepository, notifier Notifier) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		notifier:   notifier,
	}
}

// generateInviteToken returns 128 bits from crypto/rand, hex-encoded.
func generateInviteToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue creates a 7-day invitation and hands it to the notifier. An
// empty role defaults to MEMBER; OWNER is not a grantable role.
func (s *InviteService) Issue(ctx context.Context, teamID, actorID, email, roleStr string) error {
	if email == "" {
		return fmt.Errorf("email: %w", my_errors.ErrEmptyField)
	}

	role := domain.RoleMember
	if roleStr != "" {
		parsed, err := domain.ParseRole(roleStr)
		if err != nil || parsed == domain.RoleOwner {
			return fmt.Errorf("role: %w", my_errors.ErrInvalidInput)
		}
		role = parsed
	}

	token, err := generateInviteToken()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	inv := &domain.Invitation{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Email:     email,
		Role:      role,
		Token:     token,
		InvitedBy: actorID,
		IssuedAt:  now,
		ExpiresAt: now.Add(domain.InviteTTL),
	}

	team, err := s.inviteRepo.Issue(ctx, inv)
	if err != nil {
		return err
	}

	s.notifier.InvitationIssued(ctx, team.Name, inv)
	return nil
}

func (s *InviteService) Accept(ctx context.Context, token, userID string) (*domain.Team, error) {
	if token == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrInviteNotFound)
	}
	return s.inviteRepo.Accept(ctx, token, userID, time.Now().UTC())
}
