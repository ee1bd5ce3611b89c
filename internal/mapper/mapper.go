package mapper

import (
	"team-service/internal/domain"
	"team-service/internal/dto"
)

// User mappers
func MapDomainUserToDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
}

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	return dto.TeamDTO{
		ID:        team.ID,
		Name:      team.Name,
		OwnerID:   team.OwnerID,
		IsDeleted: team.IsDeleted,
		DeletedAt: team.DeletedAt,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}

func MapDomainMemberToDTO(member *domain.Member) dto.MemberDTO {
	return dto.MemberDTO{
		ID:       member.ID,
		User:     MapDomainUserToDTO(&member.User),
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
}

func MapDomainMembersToDTO(members []domain.Member) []dto.MemberDTO {
	result := make([]dto.MemberDTO, len(members))
	for i, m := range members {
		result[i] = MapDomainMemberToDTO(&m)
	}
	return result
}

func MapDomainTeamMembershipToDTO(tm *domain.TeamMembership) dto.MyTeamDTO {
	return dto.MyTeamDTO{
		ID:       tm.ID,
		Team:     MapDomainTeamToDTO(&tm.Team),
		Role:     string(tm.Role),
		JoinedAt: tm.JoinedAt,
	}
}

func MapDomainTeamMembershipsToDTO(tms []domain.TeamMembership) []dto.MyTeamDTO {
	result := make([]dto.MyTeamDTO, len(tms))
	for i, tm := range tms {
		result[i] = MapDomainTeamMembershipToDTO(&tm)
	}
	return result
}

// Activity mappers
func MapDomainActivityToDTO(entry *domain.ActivityEntry) dto.ActivityDTO {
	return dto.ActivityDTO{
		ID:        entry.ID,
		Action:    string(entry.Action),
		Actor:     MapDomainUserToDTO(&entry.Actor),
		Metadata:  entry.Metadata,
		CreatedAt: entry.CreatedAt,
	}
}

func MapDomainActivitiesToDTO(entries []domain.ActivityEntry) []dto.ActivityDTO {
	result := make([]dto.ActivityDTO, len(entries))
	for i, e := range entries {
		result[i] = MapDomainActivityToDTO(&e)
	}
	return result
}
