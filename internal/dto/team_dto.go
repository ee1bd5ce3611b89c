package dto

import "time"

type TeamDTO struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"ownerId"`
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MemberDTO carries the resolved user under userId, the shape the
// client's member list expects.
type MemberDTO struct {
	ID       string    `json:"_id"`
	User     UserDTO   `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// MyTeamDTO is one entry of the caller's team listing: the membership
// with the team resolved under teamId.
type MyTeamDTO struct {
	ID       string    `json:"_id"`
	Team     TeamDTO   `json:"teamId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
