package repo

import (
	"github.com/saccodev/sacco-api/internal/pg"
	creditrepo "github.com/saccodev/sacco-api/internal/repo/credit-repo"
	memberrepo "github.com/saccodev/sacco-api/internal/repo/member-repo"
	paymentrepo "github.com/saccodev/sacco-api/internal/repo/payment-repo"
	savingrepo "github.com/saccodev/sacco-api/internal/repo/saving-repo"
	statsrepo "github.com/saccodev/sacco-api/internal/repo/stats-repo"
)

// Repositories holds the concrete stores. Services narrow them through
// their own interfaces.
type Repositories struct {
	MemberRepo  *memberrepo.Repository
	SavingRepo  *savingrepo.Repository
	CreditRepo  *creditrepo.Repository
	PaymentRepo *paymentrepo.Repository
	StatsRepo   *statsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		MemberRepo:  memberrepo.New(conn),
		SavingRepo:  savingrepo.New(conn, txManager),
		CreditRepo:  creditrepo.New(conn, txManager),
		PaymentRepo: paymentrepo.New(conn, txManager),
		StatsRepo:   statsrepo.New(conn, txManager),
	}
}
