package response

import "team-service/internal/dto"

type ActivitiesResponse struct {
	Activities []dto.ActivityDTO `json:"activities"`
	Page       int               `json:"page"`
	Total      int               `json:"total"`
}
