package repository

import (
	"context"
	"errors"
	"fmt"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// CreateTeamWithOwner persists the team, its OWNER membership and the
// TEAM_CREATED record as one atomic unit. A team without an owner (or
// the reverse) is never observable.
func (r *TeamRepository) CreateTeamWithOwner(ctx context.Context, team *domain.Team, owner *domain.Membership) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	teamQuery := `
        INSERT INTO teams (id, name, owner_id, is_deleted, created_at, updated_at)
        VALUES ($1, $2, $3, false, $4, $4)
    `
	if _, err := tx.Exec(ctx, teamQuery, team.ID, team.Name, team.OwnerID, team.CreatedAt); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	memberQuery := `
        INSERT INTO memberships (id, team_id, user_id, role, joined_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := tx.Exec(ctx, memberQuery, owner.ID, owner.TeamID, owner.UserID, owner.Role, owner.JoinedAt); err != nil {
		return fmt.Errorf("failed to create owner membership: %w", err)
	}

	if err := insertActivity(ctx, tx, team.ID, domain.ActivityTeamCreated, owner.UserID, nil, map[string]any{"name": team.Name}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query := `
        SELECT id, name, owner_id, is_deleted, deleted_at, created_at, updated_at
        FROM teams
        WHERE id = $1 AND is_deleted = false
    `
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, teamID).Scan(
		&team.ID,
		&team.Name,
		&team.OwnerID,
		&team.IsDeleted,
		&team.DeletedAt,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) ListTeamsForUser(ctx context.Context, userID string) ([]domain.TeamMembership, error) {
	query := `
        SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at,
               t.id, t.name, t.owner_id, t.is_deleted, t.deleted_at, t.created_at, t.updated_at
        FROM memberships m
        JOIN teams t ON t.id = m.team_id
        WHERE m.user_id = $1 AND t.is_deleted = false
        ORDER BY m.joined_at DESC
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var result []domain.TeamMembership
	for rows.Next() {
		var tm domain.TeamMembership
		if err := rows.Scan(
			&tm.ID, &tm.TeamID, &tm.UserID, &tm.Role, &tm.JoinedAt,
			&tm.Team.ID, &tm.Team.Name, &tm.Team.OwnerID, &tm.Team.IsDeleted,
			&tm.Team.DeletedAt, &tm.Team.CreatedAt, &tm.Team.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team membership: %w", err)
		}
		result = append(result, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team memberships: %w", err)
	}
	return result, nil
}

func (r *TeamRepository) Rename(ctx context.Context, teamID, actorID, newName string) (*domain.Team, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	team, err := lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	role, err := actorRole(ctx, tx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if !domain.Authorize(role, domain.ActionRenameTeam, "") {
		return nil, fmt.Errorf("%w", my_errors.ErrForbidden)
	}

	query := `UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`
	if err := tx.QueryRow(ctx, query, newName, teamID).Scan(&team.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}

	metadata := map[string]any{"oldName": team.Name, "newName": newName}
	if err := insertActivity(ctx, tx, teamID, domain.ActivityTeamRenamed, actorID, nil, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	team.Name = newName
	return team, nil
}

// SoftDelete marks the team inert. The TEAM_DELETED record lands in the
// same transaction, so history exists even though the team is no longer
// reachable through normal queries.
func (r *TeamRepository) SoftDelete(ctx context.Context, teamID, actorID string) error {
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
	if !domain.Authorize(role, domain.ActionDeleteTeam, "") {
		return fmt.Errorf("%w", my_errors.ErrForbidden)
	}

	if err := insertActivity(ctx, tx, teamID, domain.ActivityTeamDeleted, actorID, nil, nil); err != nil {
		return err
	}

	query := `UPDATE teams SET is_deleted = true, deleted_at = NOW(), updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(ctx, query, teamID); err != nil {
		return fmt.Errorf("failed to soft delete team: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
