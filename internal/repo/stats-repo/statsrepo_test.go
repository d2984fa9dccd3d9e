package statsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_CountMembersByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*)")).
		WithArgs(domain.StatusApproved).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountMembersByStatus(context.Background(), domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Totals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM savings")).
		WithArgs(domain.StatusApproved).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(10000.0))
	total, err := repo.TotalSavings(context.Background(), domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, 10000.0, total)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0) FROM credits")).
		WithArgs(domain.StatusApproved).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(4000.0))
	total, err = repo.TotalCredits(context.Background(), domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, 4000.0, total)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(remaining_debt), 0) FROM credits")).
		WithArgs(domain.StatusApproved).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(2500.0))
	total, err = repo.TotalRemainingDebt(context.Background(), domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, 2500.0, total)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
		WithArgs(domain.StatusApproved).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1500.0))
	total, err = repo.TotalPayments(context.Background(), domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertSnapshot(t *testing.T) {
	repo, mock := NewMock(t)

	stats := &domain.CoopStats{
		TotalMembers:       12,
		TotalSavings:       10000,
		TotalCredits:       4000,
		TotalRemainingDebt: 2500,
		TotalPayments:      1500,
		TotalCapital:       6000,
		UpdatedAt:          time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coop_stats")).
		WithArgs(12, 10000.0, 4000.0, 2500.0, 1500.0, 6000.0, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.UpsertSnapshot(context.Background(), stats)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coop_stats")).
		WithArgs(12, 10000.0, 4000.0, 2500.0, 1500.0, 6000.0, pgxmock.AnyArg()).
		WillReturnError(errors.New("database error"))
	err = repo.UpsertSnapshot(context.Background(), stats)
	assert.Error(t, err)
}
