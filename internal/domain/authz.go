package domain

// Action is a request against a team that must pass the role guard.
type Action string

const (
	ActionRenameTeam Action = "RENAME_TEAM"
	ActionDeleteTeam Action = "DELETE_TEAM"
	ActionInvite     Action = "INVITE_MEMBER"
	ActionKick       Action = "KICK_MEMBER"
	ActionChangeRole Action = "CHANGE_ROLE"
	ActionLeave      Action = "LEAVE_TEAM"
	ActionRead       Action = "READ_TEAM"
)

// Authorize is the pure permission decision. For actions without a
// target (rename, invite, leave, read) pass an empty target role.
// The owner can never be a target, and equal-or-higher roles never act
// on each other.
func Authorize(actor Role, action Action, target Role) bool {
	switch action {
	case ActionRenameTeam, ActionDeleteTeam:
		return actor == RoleOwner
	case ActionInvite:
		return actor == RoleOwner || actor == RoleAdmin
	case ActionKick:
		if target == RoleOwner {
			return false
		}
		return (actor == RoleOwner || actor == RoleAdmin) && target.rank() < actor.rank()
	case ActionChangeRole:
		return actor == RoleOwner && target != RoleOwner
	case ActionLeave:
		return actor == RoleAdmin || actor == RoleMember
	case ActionRead:
		return actor.rank() > 0
	default:
		return false
	}
}
