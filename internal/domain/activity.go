package domain

import "time"

type ActivityAction string

const (
	ActivityTeamCreated   ActivityAction = "TEAM_CREATED"
	ActivityTeamRenamed   ActivityAction = "TEAM_RENAMED"
	ActivityTeamDeleted   ActivityAction = "TEAM_DELETED"
	ActivityMemberInvited ActivityAction = "MEMBER_INVITED"
	ActivityMemberJoined  ActivityAction = "MEMBER_JOINED"
	ActivityMemberKicked  ActivityAction = "MEMBER_KICKED"
	ActivityMemberLeft    ActivityAction = "MEMBER_LEFT"
	ActivityRoleChanged   ActivityAction = "ROLE_CHANGED"
)

// DefaultActivityLimit matches the client's default page size.
const DefaultActivityLimit = 20

type ActivityRecord struct {
	CreatedAt time.Time      `json:"created_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	ID        string         `json:"id"`
	TeamID    string         `json:"team_id"`
	Action    ActivityAction `json:"action"`
	ActorID   string         `json:"actor_id"`
	TargetID  *string        `json:"target_id,omitempty"`
}

// ActivityEntry is a record with the acting user resolved.
type ActivityEntry struct {
	ActivityRecord
	Actor User `json:"actor"`
}
