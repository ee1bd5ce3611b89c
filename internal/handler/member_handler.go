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

type MemberService interface {
	ListMembers(ctx context.Context, teamID, callerID string) ([]domain.Member, error)
	KickMember(ctx context.Context, teamID, actorID, targetID string) error
	LeaveTeam(ctx context.Context, teamID, userID string) error
	ChangeRole(ctx context.Context, teamID, actorID, targetID, newRole string) error
}

type MemberHandler struct {
	service   MemberService
	validator *validator.Validate
}

func NewMemberHandler(service MemberService, validator *validator.Validate) *MemberHandler {
	return &MemberHandler{
		service:   service,
		validator: validator,
	}
}

// ListMembers godoc
// @Summary List team members
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Success 200 {array} dto.MemberDTO "Members with resolved users"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/members [get]
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	teamID := chi.URLParam(r, "id")
	members, err := h.service.ListMembers(r.Context(), teamID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	result := mapper.MapDomainMembersToDTO(members)
	if result == nil {
		result = []dto.MemberDTO{}
	}
	respondJSON(w, http.StatusOK, result)
}

// KickMember godoc
// @Summary Remove a member from the team
// @Description Owners kick admins and members; admins kick members only
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Param userId path string true "Target user id"
// @Success 200 {object} response.MessageResponse "Member removed"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Team or member not found"
// @Router /teams/{id}/members/{userId} [delete]
func (h *MemberHandler) KickMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	teamID := chi.URLParam(r, "id")
	targetID := chi.URLParam(r, "userId")
	if err := h.service.KickMember(r.Context(), teamID, userID, targetID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: "member removed"})
}

// LeaveTeam godoc
// @Summary Leave a team
// @Description The owner cannot leave; the team must be deleted instead
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Success 200 {object} response.MessageResponse "Left the team"
// @Failure 403 {object} dto.ErrorResponse "Owner cannot leave"
// @Failure 404 {object} dto.ErrorResponse "Team or membership not found"
// @Router /teams/{id}/leave [post]
func (h *MemberHandler) LeaveTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	teamID := chi.URLParam(r, "id")
	if err := h.service.LeaveTeam(r.Context(), teamID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: "left the team"})
}

// ChangeRole godoc
// @Summary Change a member's role (owner only)
// @Description OWNER cannot be granted or targeted
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team id"
// @Param request body request.ChangeRoleRequest true "Role change"
// @Success 200 {object} response.MessageResponse "Role changed"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Team or member not found"
// @Router /teams/{id}/role [put]
func (h *MemberHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	teamID := chi.URLParam(r, "id")
	if err := h.service.ChangeRole(r.Context(), teamID, userID, req.UserID, req.NewRole); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: "role changed"})
}
