package dto

// Field names mirror the original API, including the Mongo-style _id.
type UserDTO struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage,omitempty"`
}
