package repository

import (
	"context"
	"errors"
	"fmt"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// lockTeam serializes all mutations against one team: every mutating
// transaction takes the team row lock first, so concurrent operations
// on the same team queue up while different teams never contend.
// Soft-deleted teams are invisible here, which makes their memberships
// and invitations inert.
func lockTeam(ctx context.Context, tx pgx.Tx, teamID string) (*domain.Team, error) {
	query := `
        SELECT id, name, owner_id, is_deleted, deleted_at, created_at, updated_at
        FROM teams
        WHERE id = $1 AND is_deleted = false
        FOR UPDATE
    `
	var team domain.Team
	err := tx.QueryRow(ctx, query, teamID).Scan(
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
		return nil, fmt.Errorf("failed to lock team: %w", err)
	}
	return &team, nil
}

// actorRole resolves the caller's role inside the current transaction,
// after the team lock, so authorization always sees committed state.
func actorRole(ctx context.Context, q querier, teamID, userID string) (domain.Role, error) {
	role, _, err := membershipRole(ctx, q, teamID, userID)
	if err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			return "", fmt.Errorf("%w", my_errors.ErrForbidden)
		}
		return "", err
	}
	return role, nil
}

func membershipRole(ctx context.Context, q querier, teamID, userID string) (domain.Role, string, error) {
	query := `SELECT id, role FROM memberships WHERE team_id = $1 AND user_id = $2`
	var (
		id   string
		role domain.Role
	)
	err := q.QueryRow(ctx, query, teamID, userID).Scan(&id, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", fmt.Errorf("%w", my_errors.ErrMemberNotFound)
		}
		return "", "", fmt.Errorf("failed to get membership: %w", err)
	}
	return role, id, nil
}

func getMembership(ctx context.Context, q querier, teamID, userID string) (*domain.Membership, error) {
	query := `
        SELECT id, team_id, user_id, role, joined_at
        FROM memberships
        WHERE team_id = $1 AND user_id = $2
    `
	var m domain.Membership
	err := q.QueryRow(ctx, query, teamID, userID).Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrMemberNotFound)
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return &m, nil
}

// insertActivity appends to the team's audit trail inside the same
// transaction as the mutation it records.
func insertActivity(ctx context.Context, q querier, teamID string, action domain.ActivityAction, actorID string, targetID *string, metadata map[string]any) error {
	query := `
        INSERT INTO activities (activity_id, team_id, action, actor_id, target_id, metadata)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := q.Exec(ctx, query, uuid.NewString(), teamID, action, actorID, targetID, metadata)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
