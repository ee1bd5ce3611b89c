package domain

import "time"

const (
	MinTeamNameLen = 1
	MaxTeamNameLen = 50
)

type Team struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"owner_id"`
	IsDeleted bool       `json:"is_deleted"`
}

type Membership struct {
	JoinedAt time.Time `json:"joined_at"`
	ID       string    `json:"id"`
	TeamID   string    `json:"team_id"`
	UserID   string    `json:"user_id"`
	Role     Role      `json:"role"`
}

// Member is a membership with the user record resolved.
type Member struct {
	Membership
	User User `json:"user"`
}

// TeamMembership is a membership with the team record resolved,
// backing the caller's team listing.
type TeamMembership struct {
	Membership
	Team Team `json:"team"`
}
