package notify

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is a single delivery attempt executed by the pool.
type Task func() error

// WorkerPool runs notification deliveries on a fixed set of goroutines
// so slow SMTP round trips never block the request path.
type WorkerPool struct {
	pool chan Task
}

func NewWorkerPool(workers, queueSize int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, queueSize)}

	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("notification delivery failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}
