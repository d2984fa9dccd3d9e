package savingrepo

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

func (r *Repository) Create(ctx context.Context, saving *domain.Saving) (*domain.Saving, error) {
	query := `
        INSERT INTO savings (member_id, amount, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, saving.MemberID, saving.Amount, saving.Status)
		if err := row.Scan(&saving.ID, &saving.CreatedAt); err != nil {
			zap.L().Error("can't save saving record", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saving, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.Saving, error) {
	query := `
        SELECT id, member_id, amount, status, created_at
        FROM savings
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var saving domain.Saving
	err := row.Scan(&saving.ID, &saving.MemberID, &saving.Amount, &saving.Status, &saving.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find saving", zap.Error(err))
		return nil, err
	}
	return &saving, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID domain.ID) ([]domain.Saving, error) {
	query := `
        SELECT id, member_id, amount, status, created_at
        FROM savings
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get savings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var savings []domain.Saving
	for rows.Next() {
		var saving domain.Saving
		err := rows.Scan(&saving.ID, &saving.MemberID, &saving.Amount, &saving.Status, &saving.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan saving row", zap.Error(err))
			return nil, err
		}
		savings = append(savings, saving)
	}
	return savings, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Saving, error) {
	query := `
        UPDATE savings
        SET status = $1
        WHERE id = $2
        RETURNING id, member_id, amount, status, created_at
    `
	var saving domain.Saving
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, status, id)
		return row.Scan(&saving.ID, &saving.MemberID, &saving.Amount, &saving.Status, &saving.CreatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update saving status", zap.Error(err))
		return nil, err
	}
	return &saving, nil
}

// SumByMemberAndStatus is the credit-limit basis: the total of a
// member's savings in the given status.
func (r *Repository) SumByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM savings
        WHERE member_id = $1 AND status = $2
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&total); err != nil {
		zap.L().Error("can't sum savings", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM savings
        WHERE member_id = $1 AND status = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&count); err != nil {
		zap.L().Error("can't count savings", zap.Error(err))
		return 0, err
	}
	return count, nil
}
