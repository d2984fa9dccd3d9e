package notify

import (
	"context"
	"fmt"

	"github.com/saccodev/sacco-api/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultWorkers   = 2
	defaultQueueSize = 100
)

// Service emails members when an administrator resolves one of their
// pending records. Deliveries run in the background; a nil mailer turns
// the service into a no-op so the ledger works without an SMTP relay.
type Service struct {
	pool   WorkerPoolI
	mailer Mailer
}

func New(mailer Mailer) *Service {
	s := &Service{mailer: mailer}
	if mailer != nil {
		s.pool = NewWorkerPool(defaultWorkers, defaultQueueSize)
	}
	return s
}

// StatusDecided queues a decision notice for the member. The record
// label names what was decided: "membership", "saving", "credit" or
// "payment".
func (s *Service) StatusDecided(member *domain.Member, record string, amount float64, status domain.Status) {
	if s.mailer == nil || member == nil || member.Email == "" {
		return
	}

	to := member.Email
	subject, body := composeDecision(member.Name, record, amount, status)
	err := s.pool.AddTask(context.Background(), func() error {
		return s.mailer.Send(to, subject, body)
	})
	if err != nil {
		zap.L().Warn("notification dropped",
			zap.String("email", to),
			zap.String("record", record),
			zap.Error(err),
		)
	}
}

func (s *Service) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func composeDecision(name, record string, amount float64, status domain.Status) (subject, body string) {
	verb := "approved"
	if status == domain.StatusRejected {
		verb = "rejected"
	}

	if record == "membership" {
		subject = fmt.Sprintf("Your membership application was %s", verb)
		body = fmt.Sprintf(
			"Dear %s,\n\nYour membership application has been %s.\n\nBest regards,\nSACCO Back Office",
			name, verb,
		)
		return subject, body
	}

	subject = fmt.Sprintf("Your %s was %s", record, verb)
	body = fmt.Sprintf(
		"Dear %s,\n\nYour %s of %.2f has been %s.\n\nBest regards,\nSACCO Back Office",
		name, record, amount, verb,
	)
	return subject, body
}
