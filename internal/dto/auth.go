package dto

type RegisterRequestDTO struct {
	Login     string `json:"login" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required" example:"client"`
	OABNumber string `json:"oab_number,omitempty" example:"123456/SP"`
	PixKey    string `json:"pix_key,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty" example:"SP"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UserResponseDTO struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Role      string `json:"role" example:"correspondent"`
	Status    string `json:"status" example:"active"`
	OABNumber string `json:"oab_number,omitempty"`
	PixKey    string `json:"pix_key,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	CreatedAt string `json:"created_at" example:"2024-11-02T10:00:00Z"`
}

type UpdateUserStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"active"`
	Reason string `json:"reason,omitempty"`
}
