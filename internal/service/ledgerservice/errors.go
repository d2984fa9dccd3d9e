package ledgerservice

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberNotApproved = errors.New("member not approved")
	ErrRecordNotFound    = errors.New("record not found")
	ErrStatusFinal       = errors.New("status already final")
	ErrNoApprovedSavings = errors.New("no approved savings on record")
	ErrNoOutstandingDebt = errors.New("no outstanding debt")
)

// LimitExceededError carries the computed figures so clients can render
// an explanatory message.
type LimitExceededError struct {
	Requested       float64
	Limit           float64
	ApprovedSavings float64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("credit request denied: requested %.2f exceeds limit %.2f (approved savings %.2f)",
		e.Requested, e.Limit, e.ApprovedSavings)
}

type ExceedsOutstandingDebtError struct {
	Requested   float64
	Outstanding float64
}

func (e *ExceedsOutstandingDebtError) Error() string {
	return fmt.Sprintf("payment denied: requested %.2f exceeds outstanding debt %.2f",
		e.Requested, e.Outstanding)
}
