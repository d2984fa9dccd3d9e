package memberrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
        INSERT INTO members (name, email, password_hash, role, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, member.Name, member.Email, member.PasswordHash, member.Role, member.Status)
	if err := row.Scan(&member.ID, &member.CreatedAt); err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `
        SELECT id, name, email, password_hash, role, status, created_at
        FROM members
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var member domain.Member
	err := row.Scan(&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.Status, &member.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member by email", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.Member, error) {
	query := `
        SELECT id, name, email, password_hash, role, status, created_at
        FROM members
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var member domain.Member
	err := row.Scan(&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.Status, &member.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member by id", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Member, error) {
	query := `
        UPDATE members
        SET status = $1
        WHERE id = $2
        RETURNING id, name, email, password_hash, role, status, created_at
    `
	row := r.db.QueryRow(ctx, query, status, id)
	var member domain.Member
	err := row.Scan(&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.Status, &member.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update member status", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Member, error) {
	query := `
        SELECT id, name, email, password_hash, role, status, created_at
        FROM members
        WHERE status = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get members by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		err := rows.Scan(&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.Status, &member.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}
