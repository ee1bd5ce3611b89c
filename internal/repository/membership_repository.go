package repository

import (
	"context"
	"fmt"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MembershipRepository struct {
	pool *pgxpool.Pool
}

func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{pool: pool}
}

// GetMembership resolves the caller's membership in a live team. Used
// by the services as the "caller must be a member" read gate.
func (r *MembershipRepository) GetMembership(ctx context.Context, teamID, userID string) (*domain.Membership, error) {
	query := `
        SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at
        FROM memberships m
        JOIN teams t ON t.id = m.team_id AND t.is_deleted = false
        WHERE m.team_id = $1 AND m.user_id = $2
    `
	var m domain.Membership
	err := r.pool.QueryRow(ctx, query, teamID, userID).Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrMemberNotFound)
	}
	return &m, nil
}

func (r *MembershipRepository) ListMembers(ctx context.Context, teamID string) ([]domain.Member, error) {
	query := `
        SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at,
               u.id, u.name, u.email, u.profile_image, u.created_at, u.updated_at
        FROM memberships m
        JOIN users u ON u.id = m.user_id
        WHERE m.team_id = $1
        ORDER BY m.joined_at ASC
    `
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(
			&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt,
			&m.User.ID, &m.User.Name, &m.User.Email, &m.User.ProfileImage,
			&m.User.CreatedAt, &m.User.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

func (r *MembershipRepository) Kick(ctx context.Context, teamID, actorID, targetID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := lockTeam(ctx, tx, teamID); err != nil {
		return err
	}

	role, err := actorRole(ctx, tx, teamID, actorID)
	if err != nil {
		return err
	}

	target, err := getMembership(ctx, tx, teamID, targetID)
	if err != nil {
		return err
	}

	if !domain.Authorize(role, domain.ActionKick, target.Role) {
		if target.Role == domain.RoleOwner {
			return fmt.Errorf("%w", my_errors.ErrOwnerImmutable)
		}
		return fmt.Errorf("%w", my_errors.ErrForbidden)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, target.ID); err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	metadata := map[string]any{"role": string(target.Role)}
	if err := insertActivity(ctx, tx, teamID, domain.ActivityMemberKicked, actorID, &targetID, metadata); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Leave(ctx context.Context, teamID, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := lockTeam(ctx, tx, teamID); err != nil {
		return err
	}

	m, err := getMembership(ctx, tx, teamID, userID)
	if err != nil {
		return err
	}

	// The owner resolves ownership first (deletes the team); otherwise
	// the team would be left without its single OWNER.
	if !domain.Authorize(m.Role, domain.ActionLeave, "") {
		return fmt.Errorf("%w", my_errors.ErrOwnerCannotLeave)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, m.ID); err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	if err := insertActivity(ctx, tx, teamID, domain.ActivityMemberLeft, userID, nil, nil); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *MembershipRepository) ChangeRole(ctx context.Context, teamID, actorID, targetID string, newRole domain.Role) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := lockTeam(ctx, tx, teamID); err != nil {
		return err
	}

	role, err := actorRole(ctx, tx, teamID, actorID)
	if err != nil {
		return err
	}

	target, err := getMembership(ctx, tx, teamID, targetID)
	if err != nil {
		return err
	}

	if !domain.Authorize(role, domain.ActionChangeRole, target.Role) {
		if target.Role == domain.RoleOwner {
			return fmt.Errorf("%w", my_errors.ErrOwnerImmutable)
		}
		return fmt.Errorf("%w", my_errors.ErrForbidden)
	}

	if _, err := tx.Exec(ctx, `UPDATE memberships SET role = $1 WHERE id = $2`, newRole, target.ID); err != nil {
		return fmt.Errorf("failed to change role: %w", err)
	}

	metadata := map[string]any{"oldRole": string(target.Role), "newRole": string(newRole)}
	if err := insertActivity(ctx, tx, teamID, domain.ActivityRoleChanged, actorID, &targetID, metadata); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
