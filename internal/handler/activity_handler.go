package handler

import (
	"context"
	"net/http"
	"strconv"

	"team-service/internal/domain"
	"team-service/internal/dto"
	"team-service/internal/mapper"
	"team-service/internal/response"

	"github.com/go-chi/chi/v5"
)

type ActivityService interface {
	ListByTeam(ctx context.Context, teamID, callerID string, page, limit int) ([]domain.ActivityEntry, int, error)
}

type ActivityHandler struct {
	service ActivityService
}

func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListActivities godoc
// @Summary Page the team's activity feed
// @Description Newest first with stable ordering; pages are 1-indexed
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} response.ActivitiesResponse "Activity page"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/activities [get]
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	teamID := chi.URLParam(r, "id")
	entries, total, err := h.service.ListByTeam(r.Context(), teamID, userID, page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	activities := mapper.MapDomainActivitiesToDTO(entries)
	if activities == nil {
		activities = []dto.ActivityDTO{}
	}
	respondJSON(w, http.StatusOK, response.ActivitiesResponse{
		Activities: activities,
		Page:       page,
		Total:      total,
	})
}
