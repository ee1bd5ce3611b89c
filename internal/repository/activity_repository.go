package repository

import (
	"context"
	"fmt"

	"team-service/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// ListByTeam pages the audit trail newest-first. The bigserial primary
// key breaks created_at ties, so pagination is stable across reads.
func (r *ActivityRepository) ListByTeam(ctx context.Context, teamID string, page, limit int) ([]domain.ActivityEntry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM activities WHERE team_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, teamID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	offset := (page - 1) * limit
	query := `
        SELECT a.activity_id, a.team_id, a.action, a.actor_id, a.target_id, a.metadata, a.created_at,
               u.id, u.name, u.email, u.profile_image
        FROM activities a
        JOIN users u ON u.id = a.actor_id
        WHERE a.team_id = $1
        ORDER BY a.created_at DESC, a.id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.pool.Query(ctx, query, teamID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(
			&e.ID, &e.TeamID, &e.Action, &e.ActorID, &e.TargetID, &e.Metadata, &e.CreatedAt,
			&e.Actor.ID, &e.Actor.Name, &e.Actor.Email, &e.Actor.ProfileImage,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return entries, total, nil
}
