package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "Test worker pool with simple tasks",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Test worker pool with error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers, tt.numTasks)
			defer wp.Close()

			var mu sync.Mutex
			var taskExecutionCount int
			var errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) func() error {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						mu.Lock()
						taskExecutionCount++
						mu.Unlock()
						return nil
					}
				}(i)

				err := wp.AddTask(context.Background(), task)
				require.NoError(t, err, "failed to add task to pool")
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, taskExecutionCount, "number of executed tasks does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestStatusDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := NewMockMailer(ctrl)
	service := New(mailer)
	defer service.Close()

	done := make(chan struct{})
	mailer.EXPECT().
		Send("jane@example.com", "Your credit was approved", gomock.Any()).
		DoAndReturn(func(to, subject, body string) error {
			assert.Contains(t, body, "Jane")
			assert.Contains(t, body, "500.00")
			close(done)
			return nil
		})

	service.StatusDecided(&domain.Member{Name: "Jane", Email: "jane@example.com"}, "credit", 500, domain.StatusApproved)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestStatusDecidedDisabled(t *testing.T) {
	service := New(nil)
	defer service.Close()

	// Must not panic or block without a configured mailer.
	service.StatusDecided(&domain.Member{Name: "Jane", Email: "jane@example.com"}, "saving", 100, domain.StatusRejected)
	service.StatusDecided(nil, "saving", 100, domain.StatusApproved)
}

func TestComposeDecision(t *testing.T) {
	tests := []struct {
		name            string
		record          string
		amount          float64
		status          domain.Status
		expectedSubject string
	}{
		{
			name:            "Membership approval",
			record:          "membership",
			status:          domain.StatusApproved,
			expectedSubject: "Your membership application was approved",
		},
		{
			name:            "Payment rejection",
			record:          "payment",
			amount:          250.50,
			status:          domain.StatusRejected,
			expectedSubject: "Your payment was rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := composeDecision("John", tt.record, tt.amount, tt.status)
			assert.Equal(t, tt.expectedSubject, subject)
			assert.Contains(t, body, "John")
		})
	}
}
