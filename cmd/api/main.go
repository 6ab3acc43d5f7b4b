package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/analysis"
	httptransport "github.com/spec-kit/hospital-record-service/internal/api/http"
	"github.com/spec-kit/hospital-record-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-record-service/internal/auth"
	"github.com/spec-kit/hospital-record-service/internal/config"
	"github.com/spec-kit/hospital-record-service/internal/events"
	"github.com/spec-kit/hospital-record-service/internal/mail"
	"github.com/spec-kit/hospital-record-service/internal/observability"
	"github.com/spec-kit/hospital-record-service/internal/persistence"
	"github.com/spec-kit/hospital-record-service/internal/repository"
	"github.com/spec-kit/hospital-record-service/internal/service"
	"github.com/spec-kit/hospital-record-service/internal/storage"
	"github.com/spec-kit/hospital-record-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	hospitalRepo := repository.NewHospitalRepository(pool)
	patientRepo := repository.NewPatientRepository(pool)
	testRepo := repository.NewTestRepository(pool)
	testImageRepo := repository.NewTestImageRepository(pool)
	resultImageRepo := repository.NewResultImageRepository(pool)

	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL(),
		cfg.Auth.RefreshTokenTTL(),
		cfg.Auth.LinkTokenTTL(),
	)

	dispatcher := events.NewInMemoryDispatcher()
	mailer := mail.NewMailer(cfg.SMTP, cfg.App.BaseURL, logger)

	imageStore, err := storage.NewImageStore(cfg.Storage.ImageDir)
	if err != nil {
		logger.Fatal("failed to init image storage", zap.Error(err))
	}
	analyzer := analysis.NewClient(cfg.Analysis.URL, cfg.Analysis.Timeout())

	sessionService := service.NewSessionService(userRepo, tokens, dispatcher, cfg.Auth.BcryptCost, logger)
	userService := service.NewUserService(userRepo, hospitalRepo, sessionService, cfg.Auth.BcryptCost, logger)
	hospitalService := service.NewHospitalService(hospitalRepo)
	patientService := service.NewPatientService(patientRepo, hospitalRepo)
	testService := service.NewTestService(service.TestDependencies{
		TestRepo:        testRepo,
		TestImageRepo:   testImageRepo,
		ResultImageRepo: resultImageRepo,
		PatientRepo:     patientRepo,
	}, imageStore, analyzer, dispatcher, logger)

	notificationService := service.NewNotificationService(dispatcher, mailer, logger)
	worker.StartNotificationWorker(notificationService)

	gate := auth.NewAccessGate(tokens, logger)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 32 * 1024 * 1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(pg, redis),
		Docs:      handlers.NewDocsHandler(cfg.App.Name),
		Auth:      handlers.NewAuthHandler(sessionService),
		Users:     handlers.NewUsersHandler(userService),
		Hospitals: handlers.NewHospitalsHandler(hospitalService),
		Patients:  handlers.NewPatientsHandler(patientService, userService),
		Tests:     handlers.NewTestsHandler(testService),
		Gate:      gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
