package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raptorsgg/orgdash/internal/analytics"
	"github.com/raptorsgg/orgdash/internal/attendance"
	"github.com/raptorsgg/orgdash/internal/config"
	"github.com/raptorsgg/orgdash/internal/database"
	"github.com/raptorsgg/orgdash/internal/database/postgres"
	"github.com/raptorsgg/orgdash/internal/event"
	"github.com/raptorsgg/orgdash/internal/finance"
	"github.com/raptorsgg/orgdash/internal/handler"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/metrics"
	"github.com/raptorsgg/orgdash/internal/notify"
	"github.com/raptorsgg/orgdash/internal/performance"
	"github.com/raptorsgg/orgdash/internal/recruitment"
	"github.com/raptorsgg/orgdash/internal/roster"
	"github.com/raptorsgg/orgdash/internal/server"
	"github.com/raptorsgg/orgdash/internal/validation"
	"github.com/raptorsgg/orgdash/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false)
	logger.InitLogger(logCfg)
	log := slog.Default()

	log.Info("Starting orgdash", "version", cfg.Version, "environment", cfg.Environment)

	// Database
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Repositories
	rosterRepo := postgres.NewRosterRepository(dbPool)
	perfRepo := postgres.NewPerformanceRepository(dbPool)
	attendanceRepo := postgres.NewAttendanceRepository(dbPool)
	financeRepo := postgres.NewFinanceRepository(dbPool)
	recruitmentRepo := postgres.NewRecruitmentRepository(dbPool)

	// Event bus with retry and dead-letter fallback
	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return err
	}

	// Policy config, schema validated
	schemaValidator := validation.NewSchemaValidator()
	policy, err := finance.LoadPolicy(cfg.PolicyPath, cfg.PolicySchemaPath, schemaValidator)
	if err != nil {
		// A broken policy file must not take the service down; the
		// defaults are always valid.
		log.Warn("Falling back to default policy", "error", err)
		policy = finance.DefaultPolicy()
	}

	// Services
	rosterService := roster.NewService(rosterRepo)
	perfService := performance.NewService(perfRepo, rosterRepo)
	attendanceService := attendance.NewService(attendanceRepo, rosterRepo, publisher)
	financeService, err := finance.NewService(financeRepo, rosterRepo, publisher, policy)
	if err != nil {
		return err
	}
	analyticsService := analytics.NewService(perfRepo, rosterRepo)
	recruitmentService := recruitment.NewService(recruitmentRepo, publisher)

	// Event subscribers: metrics and Discord notifications
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return err
	}

	notifier, err := notify.NewNotifier(cfg.DiscordWebhookURL)
	if err != nil {
		return err
	}
	notifier.Register(bus)

	// Background workers
	pool := worker.NewPool(2, 16)
	pool.Start()
	defer pool.Stop()

	var closeWorker *worker.MonthlyCloseWorker
	if cfg.MonthlyCloseSchedule != "" {
		closeWorker = worker.NewMonthlyCloseWorker(financeService, pool, cfg.MonthlyCloseSchedule)
		if err := closeWorker.Start(); err != nil {
			return err
		}
		defer closeWorker.Stop()
	}

	// HTTP server
	handler.InitValidator()
	keyring := server.NewKeyring(cfg.AdminAPIKey, cfg.ManagerAPIKey, cfg.ViewerAPIKey)
	srv := server.NewServer(cfg.Port, keyring, cfg.TrustedProxies, cfg.AllowedOrigins, dbPool, server.Services{
		Roster:      rosterService,
		Performance: perfService,
		Attendance:  attendanceService,
		Finance:     financeService,
		Analytics:   analyticsService,
		Recruitment: recruitmentService,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
		return err
	}

	log.Info("Shutdown complete")
	return nil
}
