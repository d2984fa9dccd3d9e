package ledgerservice

import (
	"sync"

	"github.com/saccodev/sacco-api/internal/domain"
)

// memberLocks serializes ledger mutations per member. Locks are never
// evicted; the member set is small and bounded.
type memberLocks struct {
	locks sync.Map
}

func (l *memberLocks) lock(id domain.ID) func() {
	v, _ := l.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
