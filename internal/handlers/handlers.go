package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/saccodev/sacco-api/docs"
	authhandlers "github.com/saccodev/sacco-api/internal/handlers/auth"
	dashboardhandlers "github.com/saccodev/sacco-api/internal/handlers/dashboard"
	ledgerhandlers "github.com/saccodev/sacco-api/internal/handlers/ledger"
	memberhandlers "github.com/saccodev/sacco-api/internal/handlers/members"
	"github.com/saccodev/sacco-api/internal/service"
	"github.com/saccodev/sacco-api/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	SubmitSaving(w http.ResponseWriter, r *http.Request)
	RequestCredit(w http.ResponseWriter, r *http.Request)
	RequestPayment(w http.ResponseWriter, r *http.Request)
	UpdateSavingStatus(w http.ResponseWriter, r *http.Request)
	UpdateCreditStatus(w http.ResponseWriter, r *http.Request)
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request)
	ListSavings(w http.ResponseWriter, r *http.Request)
	ListCredits(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	MemberHandler    MemberHandler
	LedgerHandler    LedgerHandler
	DashboardHandler DashboardHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		MemberHandler:    memberhandlers.New(s.MemberService),
		LedgerHandler:    ledgerhandlers.New(s.LedgerService),
		DashboardHandler: dashboardhandlers.New(s.StatsService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))

		r.Route("/savings", func(r chi.Router) {
			r.Post("/", h.LedgerHandler.SubmitSaving)
			r.Get("/{memberId}", h.LedgerHandler.ListSavings)
			r.With(auth.RequireAdmin).Put("/status", h.LedgerHandler.UpdateSavingStatus)
		})
		r.Route("/credits", func(r chi.Router) {
			r.Post("/", h.LedgerHandler.RequestCredit)
			r.Get("/{memberId}", h.LedgerHandler.ListCredits)
			r.With(auth.RequireAdmin).Put("/status", h.LedgerHandler.UpdateCreditStatus)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.LedgerHandler.RequestPayment)
			r.Get("/{memberId}", h.LedgerHandler.ListPayments)
			r.With(auth.RequireAdmin).Put("/status", h.LedgerHandler.UpdatePaymentStatus)
		})
		r.Route("/members", func(r chi.Router) {
			r.With(auth.RequireAdmin).Put("/status", h.MemberHandler.UpdateStatus)
			r.With(auth.RequireAdmin).Get("/pending", h.MemberHandler.ListPending)
		})
		r.Get("/dashboard/{memberId}", h.DashboardHandler.GetDashboard)
		r.Get("/stats", h.DashboardHandler.GetStats)
	})

	return r
}
