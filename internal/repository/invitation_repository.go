package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvitationRepository struct {
	pool *pgxpool.Pool
}

func NewInvitationRepository(pool *pgxpool.Pool) *InvitationRepository {
	return &InvitationRepository{pool: pool}
}

// Issue authorizes the inviter, supersedes any pending invitation for
// the same email and stores the new one, all under the team lock.
// Returns the team so the caller can notify with its name.
func (r *InvitationRepository) Issue(ctx context.Context, inv *domain.Invitation) (*domain.Team, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	team, err := lockTeam(ctx, tx, inv.TeamID)
	if err != nil {
		return nil, err
	}

	role, err := actorRole(ctx, tx, inv.TeamID, inv.InvitedBy)
	if err != nil {
		return nil, err
	}
	if !domain.Authorize(role, domain.ActionInvite, "") {
		return nil, fmt.Errorf("%w", my_errors.ErrForbidden)
	}

	// Supersede: the earlier token becomes unusable the moment a new
	// invitation for the same address is issued.
	revokeQuery := `
        UPDATE invitations
        SET revoked_at = NOW()
        WHERE team_id = $1 AND lower(email) = lower($2)
          AND accepted_at IS NULL AND revoked_at IS NULL
    `
	if _, err := tx.Exec(ctx, revokeQuery, inv.TeamID, inv.Email); err != nil {
		return nil, fmt.Errorf("failed to supersede pending invitations: %w", err)
	}

	insertQuery := `
        INSERT INTO invitations (id, team_id, email, role, token, invited_by, issued_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err = tx.Exec(ctx, insertQuery,
		inv.ID, inv.TeamID, inv.Email, inv.Role, inv.Token, inv.InvitedBy, inv.IssuedAt, inv.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to store invitation: %w", err)
	}

	metadata := map[string]any{"email": inv.Email, "role": string(inv.Role)}
	if err := insertActivity(ctx, tx, inv.TeamID, domain.ActivityMemberInvited, inv.InvitedBy, nil, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return team, nil
}

// Accept consumes the token at most once. Lock order is the same as in
// Issue: team row first, then the invitation row. Concurrent
// acceptances queue on the team lock; the first to commit wins and
// every later attempt observes accepted_at and fails with Conflict.
func (r *InvitationRepository) Accept(ctx context.Context, token, userID string, now time.Time) (*domain.Team, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Unlocked read to learn which team to lock. The row is re-read
	// under the lock below; team_id never changes after issue.
	var teamID string
	err = tx.QueryRow(ctx, `SELECT team_id FROM invitations WHERE token = $1`, token).Scan(&teamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrInviteNotFound)
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	team, err := lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	invQuery := `
        SELECT id, team_id, email, role, invited_by, issued_at, expires_at,
               accepted_by, accepted_at, revoked_at
        FROM invitations
        WHERE token = $1
        FOR UPDATE
    `
	var inv domain.Invitation
	err = tx.QueryRow(ctx, invQuery, token).Scan(
		&inv.ID, &inv.TeamID, &inv.Email, &inv.Role, &inv.InvitedBy,
		&inv.IssuedAt, &inv.ExpiresAt, &inv.AcceptedBy, &inv.AcceptedAt, &inv.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrInviteNotFound)
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	// Status is derived under the lock, so a supersede that committed
	// while we waited for the team row is visible here.
	switch inv.Status(now) {
	case domain.InviteRevoked:
		// A superseded token is indistinguishable from an unknown one.
		return nil, fmt.Errorf("%w", my_errors.ErrInviteNotFound)
	case domain.InviteAccepted:
		return nil, fmt.Errorf("%w", my_errors.ErrInviteAlreadyAccepted)
	case domain.InviteExpired:
		return nil, fmt.Errorf("%w", my_errors.ErrInviteExpired)
	}

	var exists bool
	existsQuery := `SELECT EXISTS(SELECT 1 FROM memberships WHERE team_id = $1 AND user_id = $2)`
	if err := tx.QueryRow(ctx, existsQuery, inv.TeamID, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w", my_errors.ErrMembershipExists)
	}

	consumeQuery := `UPDATE invitations SET accepted_by = $1, accepted_at = $2 WHERE id = $3`
	if _, err := tx.Exec(ctx, consumeQuery, userID, now, inv.ID); err != nil {
		return nil, fmt.Errorf("failed to consume invitation: %w", err)
	}

	memberQuery := `
        INSERT INTO memberships (id, team_id, user_id, role, joined_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := tx.Exec(ctx, memberQuery, uuid.NewString(), inv.TeamID, userID, inv.Role, now); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w", my_errors.ErrMembershipExists)
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	metadata := map[string]any{"role": string(inv.Role)}
	if err := insertActivity(ctx, tx, inv.TeamID, domain.ActivityMemberJoined, userID, nil, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return team, nil
}
