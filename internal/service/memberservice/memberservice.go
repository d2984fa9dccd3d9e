package memberservice

import (
	"context"
	"errors"

	"github.com/saccodev/sacco-api/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=memberservice.go -destination=memberservice_mock.go -package=memberservice

type Repo interface {
	FindByID(ctx context.Context, id domain.ID) (*domain.Member, error)
	UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Member, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Member, error)
}

type Notifier interface {
	StatusDecided(member *domain.Member, record string, amount float64, status domain.Status)
}

type Service struct {
	memberRepo Repo
	notifier   Notifier
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		memberRepo: repo,
		notifier:   notifier,
	}
}

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrStatusFinal    = errors.New("status already final")
)

// UpdateStatus resolves a pending membership. Approval or rejection is
// a one-time decision.
func (s *Service) UpdateStatus(ctx context.Context, memberID domain.ID, status domain.Status) (*domain.Member, error) {
	if !status.Final() {
		return nil, domain.ErrInvalidStatus
	}

	current, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrMemberNotFound
	}
	if current.Status.Final() {
		return nil, ErrStatusFinal
	}

	member, err := s.memberRepo.UpdateStatus(ctx, memberID, status)
	if err != nil {
		zap.L().Error("can't update member status", zap.Error(err))
		return nil, err
	}

	zap.L().Info("member status updated",
		zap.String("member_id", memberID.String()),
		zap.String("status", string(status)),
	)
	s.notifier.StatusDecided(member, "membership", 0, status)
	return member, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.FindByStatus(ctx, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to fetch pending members", zap.Error(err))
		return nil, err
	}
	return members, nil
}
