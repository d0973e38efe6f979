package baby

import "nestlog/internal/domain/baby"

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Babies []baby.Baby `json:"babies"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name      string `json:"name" doc:"Baby name" minLength:"1"`
	BirthDate string `json:"birth_date,omitempty" doc:"Birth date, YYYY-MM-DD"`
}

type createOutput struct {
	Body baby.Baby
}

type getInput struct {
	BabyID int `path:"babyId" example:"1"`
}

type getOutput struct {
	Body baby.Baby
}
