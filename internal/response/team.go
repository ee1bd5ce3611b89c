package response

import "team-service/internal/dto"

type MessageResponse struct {
	Message string `json:"message"`
}

type AcceptInviteResponse struct {
	Message string      `json:"message"`
	Team    dto.TeamDTO `json:"team"`
}
