package statsrepo

import (
	"context"
	"time"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/pg"
	"go.uber.org/zap"
)

// Repository serves the read side: cooperative-wide aggregates and the
// persisted stats snapshot.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) CountMembersByStatus(ctx context.Context, status domain.Status) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM members
        WHERE status = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		zap.L().Error("can't count members", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) TotalSavings(ctx context.Context, status domain.Status) (float64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM savings WHERE status = $1`, status)
}

func (r *Repository) TotalCredits(ctx context.Context, status domain.Status) (float64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM credits WHERE status = $1`, status)
}

func (r *Repository) TotalRemainingDebt(ctx context.Context, status domain.Status) (float64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(remaining_debt), 0) FROM credits WHERE status = $1`, status)
}

func (r *Repository) TotalPayments(ctx context.Context, status domain.Status) (float64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1`, status)
}

func (r *Repository) sum(ctx context.Context, query string, status domain.Status) (float64, error) {
	var total float64
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		zap.L().Error("can't compute cooperative total", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) UpsertSnapshot(ctx context.Context, stats *domain.CoopStats) error {
	query := `
        INSERT INTO coop_stats (id, total_members, total_savings, total_credits, total_remaining_debt, total_payments, total_capital, updated_at)
        VALUES (1, $1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE
        SET total_members = EXCLUDED.total_members,
            total_savings = EXCLUDED.total_savings,
            total_credits = EXCLUDED.total_credits,
            total_remaining_debt = EXCLUDED.total_remaining_debt,
            total_payments = EXCLUDED.total_payments,
            total_capital = EXCLUDED.total_capital,
            updated_at = EXCLUDED.updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			stats.TotalMembers, stats.TotalSavings, stats.TotalCredits,
			stats.TotalRemainingDebt, stats.TotalPayments, stats.TotalCapital, time.Now())
		if err != nil {
			zap.L().Error("can't upsert stats snapshot", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
