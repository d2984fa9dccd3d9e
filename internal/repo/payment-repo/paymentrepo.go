package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/pg"
	"go.uber.org/zap"
)

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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (member_id, amount, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, payment.MemberID, payment.Amount, payment.Status)
		if err := row.Scan(&payment.ID, &payment.CreatedAt); err != nil {
			zap.L().Error("can't save payment record", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.Payment, error) {
	query := `
        SELECT id, member_id, amount, status, created_at
        FROM payments
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.MemberID, &payment.Amount, &payment.Status, &payment.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID domain.ID) ([]domain.Payment, error) {
	query := `
        SELECT id, member_id, amount, status, created_at
        FROM payments
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.MemberID, &payment.Amount, &payment.Status, &payment.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Payment, error) {
	query := `
        UPDATE payments
        SET status = $1
        WHERE id = $2
        RETURNING id, member_id, amount, status, created_at
    `
	var payment domain.Payment
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, status, id)
		return row.Scan(&payment.ID, &payment.MemberID, &payment.Amount, &payment.Status, &payment.CreatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update payment status", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) SumByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE member_id = $1 AND status = $2
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&total); err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM payments
        WHERE member_id = $1 AND status = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&count); err != nil {
		zap.L().Error("can't count payments", zap.Error(err))
		return 0, err
	}
	return count, nil
}
