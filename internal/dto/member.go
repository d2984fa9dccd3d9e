package dto

type MemberStatusRequestDTO struct {
	MemberID int64  `json:"memberId" example:"1" validate:"required"`
	Status   string `json:"status" example:"approved" validate:"required,oneof=approved rejected"`
}
