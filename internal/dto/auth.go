package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"player@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"player@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
