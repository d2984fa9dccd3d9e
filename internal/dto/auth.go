package dto

import "time"

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Jane Doe" validate:"required,min=2,max=100"`
	Email    string `json:"email" example:"jane@example.com" validate:"required,email"`
	Password string `json:"password" example:"secret123" validate:"required,min=8"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"jane@example.com" validate:"required,email"`
	Password string `json:"password" example:"secret123" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Token  string    `json:"token"`
	Member MemberDTO `json:"member"`
}

type MemberDTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	Role      string    `json:"role" example:"member"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2024-06-01T10:00:00Z"`
}
