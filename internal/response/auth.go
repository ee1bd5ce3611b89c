package response

import "team-service/internal/dto"

type AuthResponse struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}
