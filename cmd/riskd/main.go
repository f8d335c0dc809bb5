package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/procurelens/supplier-risk-service/internal/application/usecase"
	"github.com/procurelens/supplier-risk-service/internal/domain/service"
	"github.com/procurelens/supplier-risk-service/internal/infrastructure/config"
	"github.com/procurelens/supplier-risk-service/internal/infrastructure/kafka"
	"github.com/procurelens/supplier-risk-service/internal/infrastructure/ml"
	"github.com/procurelens/supplier-risk-service/internal/infrastructure/postgres"
	grpcpresentation "github.com/procurelens/supplier-risk-service/internal/presentation/grpc"
	"github.com/procurelens/supplier-risk-service/internal/presentation/rest"
	pkgkafka "github.com/procurelens/supplier-risk-service/pkg/kafka"
	"github.com/procurelens/supplier-risk-service/pkg/observability"
	pkgpostgres "github.com/procurelens/supplier-risk-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  "json",
		Service: "supplier-risk-service",
	})

	logger.Info("starting supplier-risk-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "supplier-risk-service",
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(ctx)
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "supplier-risk-service",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Run database migrations.
	if err := pkgpostgres.RunMigrations(cfg.DatabaseURL, "file://"+cfg.MigrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Database connection.
	pool, err := pkgpostgres.NewPool(ctx, pkgpostgres.Config{URL: cfg.DatabaseURL})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Wire infrastructure adapters.
	assessmentRepo := postgres.NewAssessmentRepository(pool)

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: []string{cfg.KafkaBroker}})
	defer producer.Close()
	eventPublisher := kafka.NewPublisher(producer, cfg.KafkaTopic, logger)

	// Wire domain services. With ML_WEIGHT > 0 the rule-based score is
	// blended with an external model prediction.
	var scorer service.Scorer = service.NewSupplierRiskScorer()
	if cfg.MLWeight > 0 {
		modelClient := ml.NewStubModelClient(logger)
		scorer = service.NewHybridScorer(service.NewSupplierRiskScorer(), modelClient, cfg.MLWeight, logger)
		logger.Info("hybrid scoring enabled", "ml_weight", cfg.MLWeight)
	}

	// Wire use cases.
	assessSupplierRiskUC := usecase.NewAssessSupplierRisk(assessmentRepo, eventPublisher, scorer)
	getAssessmentUC := usecase.NewGetAssessment(assessmentRepo)

	// gRPC server.
	grpcHandler := grpcpresentation.NewSupplierRiskServiceHandler(assessSupplierRiskUC, getAssessmentUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server (health checks and metrics).
	healthHandler := rest.NewHealthHandler(logger, pool)
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Optional event-driven ingestion: consume procurement data snapshots.
	var snapshotConsumer *kafka.SnapshotConsumer
	if cfg.SnapshotTopic != "" {
		snapshotConsumer = kafka.NewSnapshotConsumer(pkgkafka.Config{
			Brokers:       []string{cfg.KafkaBroker},
			ConsumerGroup: cfg.ConsumerGroup,
		}, cfg.SnapshotTopic, assessSupplierRiskUC, logger)
		defer snapshotConsumer.Close()
	}

	// Start servers.
	errCh := make(chan error, 3)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	if snapshotConsumer != nil {
		go func() {
			logger.Info("snapshot consumer starting", "topic", cfg.SnapshotTopic)
			if err := snapshotConsumer.Start(ctx); err != nil {
				errCh <- fmt.Errorf("snapshot consumer error: %w", err)
			}
		}()
	}

	logger.Info("supplier-risk-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down supplier-risk-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("supplier-risk-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
