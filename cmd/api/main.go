package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-triage-service/internal/api/http"
	"github.com/spec-kit/hr-triage-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-triage-service/internal/classifier"
	"github.com/spec-kit/hr-triage-service/internal/config"
	"github.com/spec-kit/hr-triage-service/internal/events"
	"github.com/spec-kit/hr-triage-service/internal/knowledge"
	"github.com/spec-kit/hr-triage-service/internal/observability"
	"github.com/spec-kit/hr-triage-service/internal/persistence"
	"github.com/spec-kit/hr-triage-service/internal/repository"
	"github.com/spec-kit/hr-triage-service/internal/service"
	"github.com/spec-kit/hr-triage-service/internal/worker"
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
	ticketRepo := repository.NewTicketRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	if cfg.Kafka.Enabled() {
		publisher := events.NewKafkaPublisher(cfg.Kafka, logger)
		publisher.RegisterHandlers(dispatcher)
		defer publisher.Close() //nolint:errcheck
		logger.Info("kafka event forwarding enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	metrics := observability.NewMetrics()

	triageService := service.NewTriageService(service.TriageDependencies{
		TicketRepo:   ticketRepo,
		FeedbackRepo: feedbackRepo,
		Classifier:   classifier.NewClient(cfg.Classifier),
		Dispatcher:   dispatcher,
		Metrics:      metrics,
		Logger:       logger,
	})
	analyticsService := service.NewAnalyticsService(ticketRepo, redis, cfg.Analytics, logger)
	service.NewNotificationService(logger).RegisterHandlers(dispatcher)

	library, err := knowledge.Load(cfg.Knowledge.Dir)
	if err != nil {
		logger.Fatal("failed to load knowledge base", zap.Error(err))
	}
	logger.Info("knowledge base loaded", zap.Int("documents", library.Len()))

	refresher := worker.NewAnalyticsRefresher(analyticsService, cfg.Analytics.RefreshInterval(), logger)
	go refresher.Run(ctx)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Tickets:   handlers.NewTicketsHandler(triageService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Knowledge: handlers.NewKnowledgeHandler(library),
		Meta:      handlers.NewMetaHandler(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
