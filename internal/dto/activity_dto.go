package dto

import "time"

type ActivityDTO struct {
	ID        string         `json:"_id"`
	Action    string         `json:"action"`
	Actor     UserDTO        `json:"performedBy"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
