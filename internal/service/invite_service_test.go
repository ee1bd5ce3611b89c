package service

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueInvite(t *testing.T) {
	repo := &fakeInviteRepo{team: &domain.Team{ID: "team-1", Name: "Backend"}}
	notifier := &recordingNotifier{}
	svc := NewInviteService(repo, notifier)

	err := svc.Issue(context.Background(), "team-1", "user-1", "new@example.com", "ADMIN")
	require.NoError(t, err)

	inv := repo.issued
	require.NotNil(t, inv)
	assert.Equal(t, "team-1", inv.TeamID)
	assert.Equal(t, "new@example.com", inv.Email)
	assert.Equal(t, domain.RoleAdmin, inv.Role)
	assert.Equal(t, "user-1", inv.InvitedBy)
	assert.Equal(t, domain.InviteTTL, inv.ExpiresAt.Sub(inv.IssuedAt))

	// 128 bits of entropy, hex encoded
	raw, err := hex.DecodeString(inv.Token)
	require.NoError(t, err)
	assert.Len(t, raw, 16)

	assert.Equal(t, "Backend", notifier.teamName)
	assert.Equal(t, inv, notifier.inv)
}

func TestIssueInvite_RoleDefaultsToMember(t *testing.T) {
	repo := &fakeInviteRepo{team: &domain.Team{ID: "team-1", Name: "Backend"}}
	svc := NewInviteService(repo, &recordingNotifier{})

	err := svc.Issue(context.Background(), "team-1", "user-1", "new@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, repo.issued.Role)
}

func TestIssueInvite_RejectsOwnerAndUnknownRoles(t *testing.T) {
	repo := &fakeInviteRepo{team: &domain.Team{ID: "team-1", Name: "Backend"}}
	svc := NewInviteService(repo, &recordingNotifier{})

	err := svc.Issue(context.Background(), "team-1", "user-1", "new@example.com", "OWNER")
	assert.ErrorIs(t, err, my_errors.ErrInvalidInput)

	err = svc.Issue(context.Background(), "team-1", "user-1", "new@example.com", "SUPERUSER")
	assert.ErrorIs(t, err, my_errors.ErrInvalidInput)

	assert.Nil(t, repo.issued)
}

func TestIssueInvite_EmptyEmail(t *testing.T) {
	svc := NewInviteService(&fakeInviteRepo{}, &recordingNotifier{})

	err := svc.Issue(context.Background(), "team-1", "user-1", "", "MEMBER")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)
}

func TestIssueInvite_TokensAreUnique(t *testing.T) {
	repo := &fakeInviteRepo{team: &domain.Team{ID: "team-1", Name: "Backend"}}
	svc := NewInviteService(repo, &recordingNotifier{})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		require.NoError(t, svc.Issue(context.Background(), "team-1", "user-1", "new@example.com", ""))
		token := repo.issued.Token
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestAcceptInvite(t *testing.T) {
	repo := &fakeInviteRepo{team: &domain.Team{ID: "team-1", Name: "Backend"}}
	svc := NewInviteService(repo, &recordingNotifier{})

	before := time.Now().UTC()
	team, err := svc.Accept(context.Background(), "sometoken", "user-2")
	require.NoError(t, err)

	assert.Equal(t, "team-1", team.ID)
	assert.Equal(t, "sometoken", repo.acceptedToken)
	assert.False(t, repo.acceptedAt.Before(before))
}

func TestAcceptInvite_EmptyToken(t *testing.T) {
	svc := NewInviteService(&fakeInviteRepo{}, &recordingNotifier{})

	_, err := svc.Accept(context.Background(), "", "user-2")
	assert.ErrorIs(t, err, my_errors.ErrInviteNotFound)
}

func TestAcceptInvite_PropagatesExpiry(t *testing.T) {
	repo := &fakeInviteRepo{acceptErr: my_errors.ErrInviteExpired}
	svc := NewInviteService(repo, &recordingNotifier{})

	_, err := svc.Accept(context.Background(), "sometoken", "user-2")
	assert.ErrorIs(t, err, my_errors.ErrInviteExpired)
}
