package dto

import "time"

type SubmitRequestDTO struct {
	MemberID int64   `json:"memberId" example:"1" validate:"required"`
	Amount   float64 `json:"amount" example:"500" validate:"required,gt=0"`
}

type SavingStatusRequestDTO struct {
	SavingID int64  `json:"savingId" example:"1" validate:"required"`
	Status   string `json:"status" example:"approved" validate:"required,oneof=approved rejected"`
}

type CreditStatusRequestDTO struct {
	CreditID int64  `json:"creditId" example:"1" validate:"required"`
	Status   string `json:"status" example:"approved" validate:"required,oneof=approved rejected"`
}

type PaymentStatusRequestDTO struct {
	PaymentID int64  `json:"paymentId" example:"1" validate:"required"`
	Status    string `json:"status" example:"approved" validate:"required,oneof=approved rejected"`
}

type SavingDTO struct {
	ID        int64     `json:"id" example:"1"`
	MemberID  int64     `json:"member_id" example:"1"`
	Amount    float64   `json:"amount" example:"500"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2024-06-01T10:00:00Z"`
}

type CreditDTO struct {
	ID            int64     `json:"id" example:"1"`
	MemberID      int64     `json:"member_id" example:"1"`
	Amount        float64   `json:"amount" example:"1000"`
	RemainingDebt float64   `json:"remaining_debt" example:"600"`
	Status        string    `json:"status" example:"approved"`
	CreatedAt     time.Time `json:"created_at" example:"2024-06-01T10:00:00Z"`
}

type PaymentDTO struct {
	ID        int64     `json:"id" example:"1"`
	MemberID  int64     `json:"member_id" example:"1"`
	Amount    float64   `json:"amount" example:"400"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2024-06-01T10:00:00Z"`
}
