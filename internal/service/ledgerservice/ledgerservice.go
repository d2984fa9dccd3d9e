package ledgerservice

import (
	"context"
	"math"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/pg"
	"github.com/saccodev/sacco-api/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type MemberRepo interface {
	FindByID(ctx context.Context, id domain.ID) (*domain.Member, error)
}

type SavingRepo interface {
	Create(ctx context.Context, saving *domain.Saving) (*domain.Saving, error)
	FindByID(ctx context.Context, id domain.ID) (*domain.Saving, error)
	FindByMemberID(ctx context.Context, memberID domain.ID) ([]domain.Saving, error)
	UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Saving, error)
	SumByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error)
}

type CreditRepo interface {
	Create(ctx context.Context, credit *domain.Credit) (*domain.Credit, error)
	FindByID(ctx context.Context, id domain.ID) (*domain.Credit, error)
	FindByMemberID(ctx context.Context, memberID domain.ID) ([]domain.Credit, error)
	FindByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) ([]domain.Credit, error)
	UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Credit, error)
	UpdateRemainingDebt(ctx context.Context, id domain.ID, remainingDebt float64) error
	SumAmountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id domain.ID) (*domain.Payment, error)
	FindByMemberID(ctx context.Context, memberID domain.ID) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Payment, error)
	SumByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error)
}

// Notifier delivers status-decision notices to members. Implementations
// must not block.
type Notifier interface {
	StatusDecided(member *domain.Member, record string, amount float64, status domain.Status)
}

// Service is the ledger engine: it admits savings, credit, and payment
// requests against the member's approved history and keeps per-credit
// remaining debt consistent with approved payments.
type Service struct {
	txManager   pg.TXManager
	memberRepo  MemberRepo
	savingRepo  SavingRepo
	creditRepo  CreditRepo
	paymentRepo PaymentRepo
	notifier    Notifier
	locks       memberLocks
}

func New(txManager pg.TXManager, memberRepo MemberRepo, savingRepo SavingRepo, creditRepo CreditRepo, paymentRepo PaymentRepo, notifier Notifier) *Service {
	return &Service{
		txManager:   txManager,
		memberRepo:  memberRepo,
		savingRepo:  savingRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
	}
}

// creditLimitFactor is the cooperative rule: a member may borrow up to
// twice their approved savings.
const creditLimitFactor = 2.0

func (s *Service) approvedMember(ctx context.Context, memberID domain.ID) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if member.Status != domain.StatusApproved {
		return nil, ErrMemberNotApproved
	}
	return member, nil
}

func (s *Service) SubmitSaving(ctx context.Context, memberID domain.ID, amount float64) (*domain.Saving, error) {
	if !validate.IsAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if _, err := s.approvedMember(ctx, memberID); err != nil {
		return nil, err
	}

	saving := &domain.Saving{
		MemberID: memberID,
		Amount:   amount,
		Status:   domain.StatusPending,
	}
	saving, err := s.savingRepo.Create(ctx, saving)
	if err != nil {
		zap.L().Error("can't create saving", zap.Error(err))
		return nil, err
	}
	return saving, nil
}

// RequestCredit admits a credit request against the member's credit
// limit. Zero approved savings block the request regardless of the
// amount asked for. The check and the insert run under the member's
// lock inside one transaction.
func (s *Service) RequestCredit(ctx context.Context, memberID domain.ID, amount float64) (*domain.Credit, error) {
	if !validate.IsAmount(amount) {
		return nil, ErrInvalidAmount
	}

	unlock := s.locks.lock(memberID)
	defer unlock()

	var credit *domain.Credit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.approvedMember(ctx, memberID); err != nil {
			return err
		}

		approvedSavings, err := s.savingRepo.SumByMemberAndStatus(ctx, memberID, domain.StatusApproved)
		if err != nil {
			return err
		}
		if approvedSavings == 0 {
			return ErrNoApprovedSavings
		}
		limit := creditLimitFactor * approvedSavings
		if amount > limit {
			return &LimitExceededError{
				Requested:       amount,
				Limit:           limit,
				ApprovedSavings: approvedSavings,
			}
		}

		credit = &domain.Credit{
			MemberID:      memberID,
			Amount:        amount,
			RemainingDebt: amount,
			Status:        domain.StatusPending,
		}
		credit, err = s.creditRepo.Create(ctx, credit)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("credit request admitted",
		zap.String("member_id", memberID.String()),
		zap.Float64("amount", amount),
	)
	return credit, nil
}

// RequestPayment admits a repayment against the member's outstanding
// debt: approved credit principal minus approved payments.
func (s *Service) RequestPayment(ctx context.Context, memberID domain.ID, amount float64) (*domain.Payment, error) {
	if !validate.IsAmount(amount) {
		return nil, ErrInvalidAmount
	}

	unlock := s.locks.lock(memberID)
	defer unlock()

	var payment *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.approvedMember(ctx, memberID); err != nil {
			return err
		}

		totalCredit, err := s.creditRepo.SumAmountByMemberAndStatus(ctx, memberID, domain.StatusApproved)
		if err != nil {
			return err
		}
		totalPaid, err := s.paymentRepo.SumByMemberAndStatus(ctx, memberID, domain.StatusApproved)
		if err != nil {
			return err
		}
		outstanding := totalCredit - totalPaid
		if outstanding <= 0 {
			return ErrNoOutstandingDebt
		}
		if amount > outstanding {
			return &ExceedsOutstandingDebtError{
				Requested:   amount,
				Outstanding: outstanding,
			}
		}

		payment = &domain.Payment{
			MemberID: memberID,
			Amount:   amount,
			Status:   domain.StatusPending,
		}
		payment, err = s.paymentRepo.Create(ctx, payment)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment request admitted",
		zap.String("member_id", memberID.String()),
		zap.Float64("amount", amount),
	)
	return payment, nil
}

func (s *Service) UpdateSavingStatus(ctx context.Context, savingID domain.ID, status domain.Status) (*domain.Saving, error) {
	if !status.Final() {
		return nil, domain.ErrInvalidStatus
	}

	var updated *domain.Saving
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.savingRepo.FindByID(ctx, savingID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrRecordNotFound
		}
		if current.Status.Final() {
			return ErrStatusFinal
		}
		updated, err = s.savingRepo.UpdateStatus(ctx, savingID, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, updated.MemberID, "saving", updated.Amount, status)
	return updated, nil
}

func (s *Service) UpdateCreditStatus(ctx context.Context, creditID domain.ID, status domain.Status) (*domain.Credit, error) {
	if !status.Final() {
		return nil, domain.ErrInvalidStatus
	}

	var updated *domain.Credit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.creditRepo.FindByID(ctx, creditID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrRecordNotFound
		}
		if current.Status.Final() {
			return ErrStatusFinal
		}
		updated, err = s.creditRepo.UpdateStatus(ctx, creditID, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, updated.MemberID, "credit", updated.Amount, status)
	return updated, nil
}

// UpdatePaymentStatus finalizes a payment. Approval triggers the debt
// recomputation over the member's approved credits, inside the same
// transaction and under the member's lock so concurrent approvals
// cannot lose updates.
func (s *Service) UpdatePaymentStatus(ctx context.Context, paymentID domain.ID, status domain.Status) (*domain.Payment, error) {
	if !status.Final() {
		return nil, domain.ErrInvalidStatus
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrRecordNotFound
	}

	unlock := s.locks.lock(payment.MemberID)
	defer unlock()

	var updated *domain.Payment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Re-read under the lock: the first of two racing approvals
		// wins, the second sees a final status.
		current, err := s.paymentRepo.FindByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrRecordNotFound
		}
		if current.Status.Final() {
			return ErrStatusFinal
		}
		updated, err = s.paymentRepo.UpdateStatus(ctx, paymentID, status)
		if err != nil {
			return err
		}
		if status == domain.StatusApproved {
			return s.recomputeDebt(ctx, current.MemberID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, updated.MemberID, "payment", updated.Amount, status)
	return updated, nil
}

// recomputeDebt redistributes the member's outstanding debt across
// approved credits in proportion to each credit's principal. Running it
// again with the same approved sets yields the same allocation.
func (s *Service) recomputeDebt(ctx context.Context, memberID domain.ID) error {
	credits, err := s.creditRepo.FindByMemberAndStatus(ctx, memberID, domain.StatusApproved)
	if err != nil {
		return err
	}

	var totalCredits float64
	for _, c := range credits {
		totalCredits += c.Amount
	}
	if totalCredits == 0 {
		// nothing to allocate
		return nil
	}

	totalPaid, err := s.paymentRepo.SumByMemberAndStatus(ctx, memberID, domain.StatusApproved)
	if err != nil {
		return err
	}
	remainingTotal := math.Max(0, totalCredits-totalPaid)

	shares := allocate(remainingTotal, credits)
	for i, c := range credits {
		if c.RemainingDebt == shares[i] {
			continue
		}
		if err := s.creditRepo.UpdateRemainingDebt(ctx, c.ID, shares[i]); err != nil {
			return err
		}
	}

	zap.L().Info("debt recomputed",
		zap.String("member_id", memberID.String()),
		zap.Float64("remaining_total", remainingTotal),
	)
	return nil
}

// allocate splits total across the credits proportionally to their
// principal, rounding to cents. The rounding remainder lands on the
// last credit so the shares sum to total exactly; each share stays
// within [0, credit.Amount].
func allocate(total float64, credits []domain.Credit) []float64 {
	var sum float64
	for _, c := range credits {
		sum += c.Amount
	}

	shares := make([]float64, len(credits))
	var allocated float64
	for i, c := range credits {
		var share float64
		if i == len(credits)-1 {
			share = roundCents(total - allocated)
		} else {
			share = roundCents(total * c.Amount / sum)
		}
		share = math.Min(math.Max(share, 0), c.Amount)
		shares[i] = share
		allocated += share
	}
	return shares
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) ListSavings(ctx context.Context, memberID domain.ID) ([]domain.Saving, error) {
	savings, err := s.savingRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch savings", zap.Error(err))
		return nil, err
	}
	return savings, nil
}

func (s *Service) ListCredits(ctx context.Context, memberID domain.ID) ([]domain.Credit, error) {
	credits, err := s.creditRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch credits", zap.Error(err))
		return nil, err
	}
	return credits, nil
}

func (s *Service) ListPayments(ctx context.Context, memberID domain.ID) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) notifyDecision(ctx context.Context, memberID domain.ID, record string, amount float64, status domain.Status) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil || member == nil {
		zap.L().Warn("can't load member for notification", zap.String("member_id", memberID.String()), zap.Error(err))
		return
	}
	s.notifier.StatusDecided(member, record, amount, status)
}
