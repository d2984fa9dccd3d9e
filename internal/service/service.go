package service

import (
	"github.com/saccodev/sacco-api/internal/config"
	authhandlers "github.com/saccodev/sacco-api/internal/handlers/auth"
	dashboardhandlers "github.com/saccodev/sacco-api/internal/handlers/dashboard"
	ledgerhandlers "github.com/saccodev/sacco-api/internal/handlers/ledger"
	memberhandlers "github.com/saccodev/sacco-api/internal/handlers/members"
	"github.com/saccodev/sacco-api/internal/pg"
	"github.com/saccodev/sacco-api/internal/repo"
	"github.com/saccodev/sacco-api/internal/service/authservice"
	"github.com/saccodev/sacco-api/internal/service/ledgerservice"
	"github.com/saccodev/sacco-api/internal/service/memberservice"
	"github.com/saccodev/sacco-api/internal/service/statsservice"

	pkgauth "github.com/saccodev/sacco-api/pkg/auth"
)

type Services struct {
	AuthService   authhandlers.Service
	MemberService memberhandlers.Service
	LedgerService ledgerhandlers.Service
	StatsService  dashboardhandlers.Service
}

func New(cfg *config.Config, txManager pg.TXManager, repo *repo.Repositories, notifier ledgerservice.Notifier) *Services {
	authService := authservice.New(repo.MemberRepo, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret), cfg.TokenTTL)
	memberService := memberservice.New(repo.MemberRepo, notifier)
	ledgerService := ledgerservice.New(txManager, repo.MemberRepo, repo.SavingRepo, repo.CreditRepo, repo.PaymentRepo, notifier)
	statsService := statsservice.New(txManager, repo.SavingRepo, repo.CreditRepo, repo.PaymentRepo, repo.StatsRepo)

	return &Services{
		AuthService:   authService,
		MemberService: memberService,
		LedgerService: ledgerService,
		StatsService:  statsService,
	}
}
