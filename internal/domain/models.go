package domain

import "time"

type Member struct {
	ID           ID        `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	Status       Status    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type Saving struct {
	ID        ID        `db:"id"`
	MemberID  ID        `db:"member_id"`
	Amount    float64   `db:"amount"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type Credit struct {
	ID            ID        `db:"id"`
	MemberID      ID        `db:"member_id"`
	Amount        float64   `db:"amount"`
	RemainingDebt float64   `db:"remaining_debt"`
	Status        Status    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Payment struct {
	ID        ID        `db:"id"`
	MemberID  ID        `db:"member_id"`
	Amount    float64   `db:"amount"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// CoopStats is the cooperative-wide snapshot row kept in the store.
type CoopStats struct {
	TotalMembers       int       `db:"total_members"`
	TotalSavings       float64   `db:"total_savings"`
	TotalCredits       float64   `db:"total_credits"`
	TotalRemainingDebt float64   `db:"total_remaining_debt"`
	TotalPayments      float64   `db:"total_payments"`
	TotalCapital       float64   `db:"total_capital"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Dashboard is the per-member read-side rollup.
type Dashboard struct {
	TotalSavings    float64
	TotalCredit     float64
	RemainingDebt   float64
	TotalPaid       float64
	PendingSavings  int
	PendingCredits  int
	PendingPayments int
}
