package dto

import "time"

type DashboardResponseDTO struct {
	TotalSavings  float64          `json:"totalSavings" example:"1500"`
	TotalCredit   float64          `json:"totalCredit" example:"2000"`
	RemainingDebt float64          `json:"remainingDebt" example:"1200"`
	TotalPaid     float64          `json:"totalPaid" example:"800"`
	Pending       PendingCountsDTO `json:"pending"`
}

type PendingCountsDTO struct {
	Savings  int `json:"savings" example:"1"`
	Credits  int `json:"credits" example:"2"`
	Payments int `json:"payments" example:"0"`
}

type CoopStatsResponseDTO struct {
	TotalMembers       int       `json:"total_members" example:"12"`
	TotalSavings       float64   `json:"total_savings" example:"10000"`
	TotalCredits       float64   `json:"total_credits" example:"4000"`
	TotalRemainingDebt float64   `json:"total_remaining_debt" example:"2500"`
	TotalPayments      float64   `json:"total_payments" example:"1500"`
	TotalCapital       float64   `json:"total_capital" example:"6000"`
	UpdatedAt          time.Time `json:"updated_at" example:"2024-06-01T10:00:00Z"`
}
