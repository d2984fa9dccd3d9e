package statsservice

import (
	"context"
	"time"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=statsservice.go -destination=statsservice_mock.go -package=statsservice

type SavingRepo interface {
	SumByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error)
	CountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (int, error)
}

type CreditRepo interface {
	SumAmountByMember(ctx context.Context, memberID domain.ID) (float64, error)
	SumRemainingDebtByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error)
	CountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (int, error)
}

type PaymentRepo interface {
	SumByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error)
	CountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (int, error)
}

type StatsRepo interface {
	CountMembersByStatus(ctx context.Context, status domain.Status) (int, error)
	TotalSavings(ctx context.Context, status domain.Status) (float64, error)
	TotalCredits(ctx context.Context, status domain.Status) (float64, error)
	TotalRemainingDebt(ctx context.Context, status domain.Status) (float64, error)
	TotalPayments(ctx context.Context, status domain.Status) (float64, error)
	UpsertSnapshot(ctx context.Context, stats *domain.CoopStats) error
}

type Service struct {
	txManager   pg.TXManager
	savingRepo  SavingRepo
	creditRepo  CreditRepo
	paymentRepo PaymentRepo
	statsRepo   StatsRepo
}

func New(txManager pg.TXManager, savingRepo SavingRepo, creditRepo CreditRepo, paymentRepo PaymentRepo, statsRepo StatsRepo) *Service {
	return &Service{
		txManager:   txManager,
		savingRepo:  savingRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
		statsRepo:   statsRepo,
	}
}

// Dashboard builds the per-member rollup inside a single transaction so
// the figures describe one consistent ledger state. A member with no
// records gets a zeroed rollup.
func (s *Service) Dashboard(ctx context.Context, memberID domain.ID) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		totalSavings, err := s.savingRepo.SumByMemberAndStatus(ctx, memberID, domain.StatusApproved)
		if err != nil {
			return err
		}
		totalCredit, err := s.creditRepo.SumAmountByMember(ctx, memberID)
		if err != nil {
			return err
		}
		remainingDebt, err := s.creditRepo.SumRemainingDebtByMemberAndStatus(ctx, memberID, domain.StatusApproved)
		if err != nil {
			return err
		}
		totalPaid, err := s.paymentRepo.SumByMemberAndStatus(ctx, memberID, domain.StatusApproved)
		if err != nil {
			return err
		}
		pendingSavings, err := s.savingRepo.CountByMemberAndStatus(ctx, memberID, domain.StatusPending)
		if err != nil {
			return err
		}
		pendingCredits, err := s.creditRepo.CountByMemberAndStatus(ctx, memberID, domain.StatusPending)
		if err != nil {
			return err
		}
		pendingPayments, err := s.paymentRepo.CountByMemberAndStatus(ctx, memberID, domain.StatusPending)
		if err != nil {
			return err
		}

		dashboard = domain.Dashboard{
			TotalSavings:    totalSavings,
			TotalCredit:     totalCredit,
			RemainingDebt:   remainingDebt,
			TotalPaid:       totalPaid,
			PendingSavings:  pendingSavings,
			PendingCredits:  pendingCredits,
			PendingPayments: pendingPayments,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to build dashboard",
			zap.String("member_id", memberID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return &dashboard, nil
}

// CoopStats recomputes the cooperative-wide aggregates from the ledger
// and stores the result as the current snapshot.
func (s *Service) CoopStats(ctx context.Context) (*domain.CoopStats, error) {
	var (
		totalMembers                      int
		totalSavings, totalCredits        float64
		totalRemainingDebt, totalPayments float64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalMembers, err = s.statsRepo.CountMembersByStatus(gCtx, domain.StatusApproved)
		return err
	})
	g.Go(func() error {
		var err error
		totalSavings, err = s.statsRepo.TotalSavings(gCtx, domain.StatusApproved)
		return err
	})
	g.Go(func() error {
		var err error
		totalCredits, err = s.statsRepo.TotalCredits(gCtx, domain.StatusApproved)
		return err
	})
	g.Go(func() error {
		var err error
		totalRemainingDebt, err = s.statsRepo.TotalRemainingDebt(gCtx, domain.StatusApproved)
		return err
	})
	g.Go(func() error {
		var err error
		totalPayments, err = s.statsRepo.TotalPayments(gCtx, domain.StatusApproved)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to aggregate coop stats", zap.Error(err))
		return nil, err
	}

	stats := &domain.CoopStats{
		TotalMembers:       totalMembers,
		TotalSavings:       totalSavings,
		TotalCredits:       totalCredits,
		TotalRemainingDebt: totalRemainingDebt,
		TotalPayments:      totalPayments,
		TotalCapital:       totalSavings - totalCredits,
		UpdatedAt:          time.Now().UTC(),
	}
	if err := s.statsRepo.UpsertSnapshot(ctx, stats); err != nil {
		zap.L().Error("failed to store coop stats snapshot", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// RefreshSnapshot recomputes and persists the snapshot, discarding the
// figures. Used by the background refresher.
func (s *Service) RefreshSnapshot(ctx context.Context) error {
	_, err := s.CoopStats(ctx)
	return err
}
