package savingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/pg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saving created",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings")).
					WithArgs(domain.ID(1), 500.0, domain.StatusPending).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings")).
					WithArgs(domain.ID(1), 500.0, domain.StatusPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saving := &domain.Saving{MemberID: 1, Amount: 500, Status: domain.StatusPending}
			result, err := repo.Create(context.Background(), saving)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ID(10), result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "member_id", "amount", "status", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		result    *domain.Saving
	}{
		{
			name: "Saving exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(int64(10), int64(1), 500.0, domain.StatusPending, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM savings")).
					WithArgs(domain.ID(10)).
					WillReturnRows(rows)
			},
			result: &domain.Saving{ID: 10, MemberID: 1, Amount: 500, Status: domain.StatusPending, CreatedAt: now},
		},
		{
			name: "Saving does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM savings")).
					WithArgs(domain.ID(10)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), 10)
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "member_id", "amount", "status", "created_at"}

	rows := pgxmock.NewRows(columns).
		AddRow(int64(10), int64(1), 500.0, domain.StatusApproved, now)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE savings")).
		WithArgs(domain.StatusApproved, domain.ID(10)).
		WillReturnRows(rows)

	saving, err := repo.UpdateStatus(context.Background(), 10, domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, saving.Status)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE savings")).
		WithArgs(domain.StatusApproved, domain.ID(99)).
		WillReturnError(pgx.ErrNoRows)
	saving, err = repo.UpdateStatus(context.Background(), 99, domain.StatusApproved)
	assert.NoError(t, err)
	assert.Nil(t, saving)
}

func TestRepository_SumByMemberAndStatus(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(1500.0)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WithArgs(domain.ID(1), domain.StatusApproved).
		WillReturnRows(rows)

	total, err := repo.SumByMemberAndStatus(context.Background(), 1, domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByMemberID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "member_id", "amount", "status", "created_at"}

	rows := pgxmock.NewRows(columns).
		AddRow(int64(10), int64(1), 500.0, domain.StatusApproved, now).
		AddRow(int64(11), int64(1), 250.0, domain.StatusPending, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1")).
		WithArgs(domain.ID(1)).
		WillReturnRows(rows)

	savings, err := repo.FindByMemberID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, savings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByMemberAndStatus(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*)")).
		WithArgs(domain.ID(1), domain.StatusPending).
		WillReturnRows(rows)

	count, err := repo.CountByMemberAndStatus(context.Background(), 1, domain.StatusPending)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
