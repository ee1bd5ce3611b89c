package service

import (
	"context"
	"fmt"

	"team-service/internal/domain"
	"team-service/internal/my_errors"
)

const maxActivityLimit = 100

type ActivityService struct {
	activityRepo ActivityRepository
	memberRepo   MembershipRepository
}

func NewActivityService(activityRepo ActivityRepository, memberRepo MembershipRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		memberRepo:   memberRepo,
	}
}

// ListByTeam pages the feed for a member. Pages are 1-indexed; the
// limit defaults to 20 and is capped at 100.
func (s *ActivityService) ListByTeam(ctx context.Context, teamID, callerID string, page, limit int) ([]domain.ActivityEntry, int, error) {
	if _, err := s.memberRepo.GetMembership(ctx, teamID, callerID); err != nil {
		return nil, 0, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = domain.DefaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	return s.activityRepo.ListByTeam(ctx, teamID, page, limit)
}
