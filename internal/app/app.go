package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/auth"
	"github.com/0thman3698/on-demand-backend/internal/config"
	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/handler"
	"github.com/0thman3698/on-demand-backend/internal/middleware"
	"github.com/0thman3698/on-demand-backend/internal/notification"
	"github.com/0thman3698/on-demand-backend/internal/repository"
	"github.com/0thman3698/on-demand-backend/internal/router"
	"github.com/0thman3698/on-demand-backend/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	publisher  *notification.RealtimePublisher
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"on-demand-backend",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	accountRepo := repository.NewAccountRepo(a.db)
	providerRepo := repository.NewProviderRepo(a.db)
	catalogRepo := repository.NewCatalogRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)

	publisher, err := notification.NewRealtimePublisher(
		a.cfg.RabbitMQ.URL,
		a.cfg.RabbitMQ.Exchange,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init realtime publisher: %w", err)
	}
	a.publisher = publisher

	alerter, err := notification.NewTelegramAlerter(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AlertChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init telegram alerter: %w", err)
	}

	bookingService := service.NewBookingService(
		bookingRepo, accountRepo, providerRepo, catalogRepo, publisher, a.log,
	)
	paymentService := service.NewPaymentService(
		paymentRepo, bookingRepo, accountRepo, providerRepo, alerter,
		service.PaymentConfig{
			Environment:   service.Environment(a.cfg.Payments.Environment),
			Provider:      a.cfg.Payments.Provider,
			WebhookSecret: a.cfg.Payments.WebhookSecret,
			AppURL:        a.cfg.Payments.AppURL,
		},
		a.log,
	)
	reviewService := service.NewReviewService(
		reviewRepo, bookingRepo, accountRepo, providerRepo, a.log,
	)
	providerService := service.NewProviderService(
		providerRepo, accountRepo, catalogRepo, publisher, a.log,
	)
	adminService := service.NewAdminService(accountRepo, providerRepo, a.log)

	verifier := auth.NewVerifier(a.cfg.Auth.JWTSecret)

	h := handler.NewHandler(
		bookingService, paymentService, reviewService, providerService, adminService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(verifier),
		middleware.RequireRole(domain.RoleAdmin),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "close realtime publisher",
			logger.Any("error", err),
		)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
