package tests

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"team-service/internal/domain"
	"team-service/internal/repository"
	"team-service/internal/service"
	"team-service/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func BenchmarkActivityFeed(b *testing.B) {
	ctx := context.Background()

	cfg, err := config.Load(".env.tests")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := config.MustInitDB(ctx, *cfg)
	require.NoError(b, err)
	defer func() {
		cleanupDB(b, pool)
		pool.Close()
	}()

	testCases := []struct {
		name       string
		activities int
		limit      int
	}{
		{"Small_100activities_page20", 100, 20},
		{"Medium_1000activities_page20", 1000, 20},
		{"Large_10000activities_page100", 10000, 100},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			cleanupDB(b, pool)
			ownerID, teamID := seedTeamWithActivities(b, pool, tc.activities)

			activityRepo := repository.NewActivityRepository(pool)
			memberRepo := repository.NewMembershipRepository(pool)
			activityService := service.NewActivityService(activityRepo, memberRepo)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				entries, total, err := activityService.ListByTeam(ctx, teamID, ownerID, 1, tc.limit)
				require.NoError(b, err)

				if i == 0 {
					b.Logf("feed of %d entries, first page %d", total, len(entries))
				}
			}
		})
	}
}

func BenchmarkInviteIssue(b *testing.B) {
	ctx := context.Background()

	cfg, err := config.Load(".env.tests")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := config.MustInitDB(ctx, *cfg)
	require.NoError(b, err)
	defer func() {
		cleanupDB(b, pool)
		pool.Close()
	}()

	cleanupDB(b, pool)
	ownerID, teamID := seedTeamWithActivities(b, pool, 0)

	inviteRepo := repository.NewInvitationRepository(pool)
	inviteService := service.NewInviteService(inviteRepo, service.LogNotifier{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := inviteService.Issue(ctx, teamID, ownerID, fmt.Sprintf("user%d@example.com", i), "MEMBER")
		require.NoError(b, err)
	}
}

// seedTeamWithActivities creates an owner, a team, and n synthetic
// rename activities directly in the database.
func seedTeamWithActivities(b testing.TB, pool *pgxpool.Pool, n int) (ownerID, teamID string) {
	ctx := context.Background()

	ownerID = uuid.NewString()
	_, err := pool.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash)
        VALUES ($1, 'Bench Owner', 'bench-owner@example.com', 'x')
    `, ownerID)
	require.NoError(b, err)

	teamRepo := repository.NewTeamRepository(pool)
	memberRepo := repository.NewMembershipRepository(pool)
	teamService := service.NewTeamService(teamRepo, memberRepo)

	team, err := teamService.CreateTeam(ctx, ownerID, "bench")
	require.NoError(b, err)
	teamID = team.ID

	for i := 0; i < n; i++ {
		_, err = pool.Exec(ctx, `
            INSERT INTO activities (activity_id, team_id, action, actor_id, metadata)
            VALUES ($1, $2, $3, $4, $5)
        `, uuid.NewString(), teamID, domain.ActivityTeamRenamed, ownerID,
			map[string]any{"oldName": "bench", "newName": fmt.Sprintf("bench-%d", i)})
		require.NoError(b, err)
	}

	return ownerID, teamID
}
