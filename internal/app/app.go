package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/saccodev/sacco-api/internal/config"
	"github.com/saccodev/sacco-api/internal/handlers"
	"github.com/saccodev/sacco-api/internal/notify"
	"github.com/saccodev/sacco-api/internal/pg"
	"github.com/saccodev/sacco-api/internal/repo"
	"github.com/saccodev/sacco-api/internal/service"
	"github.com/saccodev/sacco-api/internal/service/statsservice"
	"github.com/saccodev/sacco-api/internal/statsync"
	pkgauth "github.com/saccodev/sacco-api/pkg/auth"
	"github.com/saccodev/sacco-api/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	notifier *notify.Service
	sync     *statsync.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.notifier = newNotifier(cfg)
	a.srv = service.New(cfg, txManager, a.repo, a.notifier)
	a.api = handlers.New(a.srv, pkgauth.NewJWTService(cfg.JWTSecret))
	a.sync = statsync.New(cfg, statsservice.New(txManager, a.repo.SavingRepo, a.repo.CreditRepo, a.repo.PaymentRepo, a.repo.StatsRepo))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startStatsRefresher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// newNotifier wires the mail dispatcher only when an SMTP relay is
// configured.
func newNotifier(cfg *config.Config) *notify.Service {
	if cfg.SMTPHost == "" {
		zap.L().Info("SMTP relay not configured, notifications disabled")
		return notify.New(nil)
	}
	return notify.New(notify.NewSMTPMailer(cfg))
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startStatsRefresher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sync.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	if a.notifier != nil {
		a.notifier.Close()
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
