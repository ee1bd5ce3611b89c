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

type InviteService interface {
	Issue(ctx context.Context, teamID, actorID, email, role string) error
	Accept(ctx context.Context, token, userID string) (*domain.Team, error)
}

type InviteHandler struct {
	service   InviteService
	validator *validator.Validate
}

func NewInviteHandler(service InviteService, validator *validator.Validate) *InviteHandler {
	return &InviteHandler{
		service:   service,
		validator: validator,
	}
}

// InviteMember godoc
// @Summary Invite a user by email
// @Description Issues a single-use invitation token valid for 7 days; a pending invitation for the same email is superseded
// @Tags Invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Param request body request.InviteMemberRequest true "Invitation request"
// @Success 201 {object} response.MessageResponse "Invitation sent"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/invite [post]
func (h *InviteHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	teamID := chi.URLParam(r, "id")
	if err := h.service.Issue(r.Context(), teamID, userID, req.Email, req.Role); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.MessageResponse{Message: "invitation sent"})
}

// AcceptInvite godoc
// @Summary Accept an invitation token
// @Description At-most-once: the first successful acceptance wins
// @Tags Invitations
// @Produce json
// @Security BearerAuth
// @Param token query string true "Invitation token"
// @Success 200 {object} response.AcceptInviteResponse "Joined the team"
// @Failure 404 {object} dto.ErrorResponse "Unknown or superseded token"
// @Failure 409 {object} dto.ErrorResponse "Already accepted or already a member"
// @Failure 410 {object} dto.ErrorResponse "Invitation expired"
// @Router /teams/invite/accept [post]
func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	token := r.URL.Query().Get("token")
	team, err := h.service.Accept(r.Context(), token, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.AcceptInviteResponse{
		Message: "invitation accepted",
		Team:    mapper.MapDomainTeamToDTO(team),
	})
}
