package request

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type RenameTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}
