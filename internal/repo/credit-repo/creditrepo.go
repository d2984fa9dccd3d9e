package creditrepo

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

func (r *Repository) Create(ctx context.Context, credit *domain.Credit) (*domain.Credit, error) {
	query := `
        INSERT INTO credits (member_id, amount, remaining_debt, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, credit.MemberID, credit.Amount, credit.RemainingDebt, credit.Status)
		if err := row.Scan(&credit.ID, &credit.CreatedAt); err != nil {
			zap.L().Error("can't save credit record", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return credit, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.Credit, error) {
	query := `
        SELECT id, member_id, amount, remaining_debt, status, created_at
        FROM credits
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var credit domain.Credit
	err := row.Scan(&credit.ID, &credit.MemberID, &credit.Amount, &credit.RemainingDebt, &credit.Status, &credit.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find credit", zap.Error(err))
		return nil, err
	}
	return &credit, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID domain.ID) ([]domain.Credit, error) {
	query := `
        SELECT id, member_id, amount, remaining_debt, status, created_at
        FROM credits
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	return r.queryCredits(ctx, query, memberID)
}

// FindByMemberAndStatus returns credits ordered oldest first, the
// order the debt allocation walks them in.
func (r *Repository) FindByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) ([]domain.Credit, error) {
	query := `
        SELECT id, member_id, amount, remaining_debt, status, created_at
        FROM credits
        WHERE member_id = $1 AND status = $2
        ORDER BY created_at ASC
    `
	return r.queryCredits(ctx, query, memberID, status)
}

func (r *Repository) queryCredits(ctx context.Context, query string, args ...interface{}) ([]domain.Credit, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var credits []domain.Credit
	for rows.Next() {
		var credit domain.Credit
		err := rows.Scan(&credit.ID, &credit.MemberID, &credit.Amount, &credit.RemainingDebt, &credit.Status, &credit.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan credit row", zap.Error(err))
			return nil, err
		}
		credits = append(credits, credit)
	}
	return credits, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Credit, error) {
	query := `
        UPDATE credits
        SET status = $1
        WHERE id = $2
        RETURNING id, member_id, amount, remaining_debt, status, created_at
    `
	var credit domain.Credit
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, status, id)
		return row.Scan(&credit.ID, &credit.MemberID, &credit.Amount, &credit.RemainingDebt, &credit.Status, &credit.CreatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update credit status", zap.Error(err))
		return nil, err
	}
	return &credit, nil
}

func (r *Repository) UpdateRemainingDebt(ctx context.Context, id domain.ID, remainingDebt float64) error {
	query := `
        UPDATE credits
        SET remaining_debt = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, remainingDebt, id)
		if err != nil {
			zap.L().Error("can't update remaining debt", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) SumAmountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM credits
        WHERE member_id = $1 AND status = $2
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&total); err != nil {
		zap.L().Error("can't sum credit amounts", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumAmountByMember(ctx context.Context, memberID domain.ID) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM credits
        WHERE member_id = $1
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&total); err != nil {
		zap.L().Error("can't sum credit amounts", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumRemainingDebtByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (float64, error) {
	query := `
        SELECT COALESCE(SUM(remaining_debt), 0)
        FROM credits
        WHERE member_id = $1 AND status = $2
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&total); err != nil {
		zap.L().Error("can't sum remaining debt", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByMemberAndStatus(ctx context.Context, memberID domain.ID, status domain.Status) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM credits
        WHERE member_id = $1 AND status = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, memberID, status).Scan(&count); err != nil {
		zap.L().Error("can't count credits", zap.Error(err))
		return 0, err
	}
	return count, nil
}
