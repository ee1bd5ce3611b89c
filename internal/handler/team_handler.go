package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"team-service/internal/domain"
	"team-service/internal/dto"
	"team-service/internal/mapper"
	"team-service/internal/request"
	"team-service/internal/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TeamService interface {
	CreateTeam(ctx context.Context, ownerID, name string) (*domain.Team, error)
	GetTeam(ctx context.Context, teamID, callerID string) (*domain.Team, error)
	MyTeams(ctx context.Context, userID string) ([]domain.TeamMembership, error)
	RenameTeam(ctx context.Context, teamID, actorID, newName string) (*domain.Team, error)
	DeleteTeam(ctx context.Context, teamID, actorID string) error
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Create a team
// @Description Create a team; the caller becomes its OWNER
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} dto.TeamDTO "Team created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.CreateTeam(r.Context(), userID, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapper.MapDomainTeamToDTO(team))
}

// GetMyTeams godoc
// @Summary List the caller's teams
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MyTeamDTO "Memberships with teams"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /teams/my-teams [get]
func (h *TeamHandler) GetMyTeams(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	teams, err := h.service.MyTeams(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	result := mapper.MapDomainTeamMembershipsToDTO(teams)
	if result == nil {
		result = []dto.MyTeamDTO{}
	}
	respondJSON(w, http.StatusOK, result)
}

// GetTeam godoc
// @Summary Get a team by id
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Success 200 {object} dto.TeamDTO "Team"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	teamID := chi.URLParam(r, "id")
	team, err := h.service.GetTeam(r.Context(), teamID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainTeamToDTO(team))
}

// RenameTeam godoc
// @Summary Rename a team (owner only)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Param request body request.RenameTeamRequest true "New name"
// @Success 200 {object} dto.TeamDTO "Renamed team"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [put]
func (h *TeamHandler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.RenameTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	teamID := chi.URLParam(r, "id")
	team, err := h.service.RenameTeam(r.Context(), teamID, userID, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainTeamToDTO(team))
}

// DeleteTeam godoc
// @Summary Soft-delete a team (owner only)
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Success 200 {object} response.MessageResponse "Team deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	teamID := chi.URLParam(r, "id")
	if err := h.service.DeleteTeam(r.Context(), teamID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: "team deleted"})
}
