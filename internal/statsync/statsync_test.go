package statsync

import (
	"context"
	"testing"
	"time"

	"github.com/saccodev/sacco-api/internal/config"
	gomock "go.uber.org/mock/gomock"
)

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := NewMockRefresher(ctrl)

	service := New(&config.Config{StatsInterval: 10 * time.Millisecond}, refresher)

	refreshed := make(chan struct{})
	refresher.EXPECT().RefreshSnapshot(gomock.Any()).DoAndReturn(
		func(ctx context.Context) error {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return nil
		},
	).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("snapshot was not refreshed")
	}
	cancel()
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := NewMockRefresher(ctrl)

	service := New(&config.Config{StatsInterval: time.Hour}, refresher)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	cancel()

	// The loop must exit without a refresh when canceled before the
	// first tick.
	time.Sleep(20 * time.Millisecond)
}
