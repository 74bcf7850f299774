package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/billfeed/billfeed/gen/proto/billfeed/v1"
	"github.com/billfeed/billfeed/internal/async"
	"github.com/billfeed/billfeed/internal/billing"
	"github.com/billfeed/billfeed/internal/common"
	"github.com/billfeed/billfeed/internal/extract"
	"github.com/billfeed/billfeed/internal/llm/openai"
	"github.com/billfeed/billfeed/internal/refine"
	repo "github.com/billfeed/billfeed/internal/repository"
	svc "github.com/billfeed/billfeed/internal/server"
	"github.com/billfeed/billfeed/internal/storage"
	"github.com/billfeed/billfeed/internal/upload"
	"github.com/billfeed/billfeed/internal/workspace"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewBlobStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("failed to open blob store", "dir", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewFileRepository(entc, logger)
	accountsRepo := repo.NewAccountRepository(entc, dialect.Postgres, logger)
	usageRepo := repo.NewUsageRepository(entc, logger)

	billingSvc := billing.NewService(accountsRepo, usageRepo, cfg.Billing, logger)

	completer := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	stage := refine.NewStage(filesRepo, completer, billingSvc, logger)
	queue := async.NewRefinerQueue(stage, logger,
		async.WithWorkers(cfg.Worker.Concurrency),
		async.WithQueueSize(cfg.Worker.QueueDepth),
		async.WithJobTimeout(cfg.Worker.JobTimeout),
	)

	extractCfg := extract.Config{
		PdfToText: cfg.Extract.PdfToText,
		Tesseract: cfg.Extract.Tesseract,
		Languages: cfg.Extract.Languages,
	}
	coordinator := upload.NewCoordinator(
		workspace.AllowAll{},
		blobs,
		filesRepo,
		billingSvc,
		queue,
		extractCfg,
		nil,
		cfg.Storage.MaxFileSize,
		logger,
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(svc.UnaryLogging(logger)))

	uploadService := svc.NewUploadService(coordinator, logger)
	v1.RegisterUploadServiceServer(grpcServer, uploadService)
	billingService := svc.NewBillingService(billingSvc, logger)
	v1.RegisterBillingServiceServer(grpcServer, billingService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("billfeed listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
