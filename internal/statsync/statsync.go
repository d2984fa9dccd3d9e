// Package statsync keeps the cooperative-wide stats snapshot fresh by
// recomputing it on a fixed interval, so the snapshot row never drifts
// far from the ledger between stats requests.
package statsync

import (
	"context"
	"time"

	"github.com/saccodev/sacco-api/internal/config"
	"go.uber.org/zap"
)

//go:generate mockgen -source=statsync.go -destination=statsync_mock.go -package=statsync

type Refresher interface {
	RefreshSnapshot(ctx context.Context) error
}

type Service struct {
	refresher       Refresher
	refreshInterval time.Duration
}

func New(cfg *config.Config, refresher Refresher) *Service {
	return &Service{
		refresher:       refresher,
		refreshInterval: cfg.StatsInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Stats refresher started", zap.Duration("interval", s.refreshInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping stats refresher")
			return
		case <-ticker.C:
			if err := s.refresher.RefreshSnapshot(ctx); err != nil {
				zap.L().Error("Failed to refresh stats snapshot", zap.Error(err))
			}
		}
	}
}
