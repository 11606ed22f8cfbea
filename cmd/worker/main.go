package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/isaiahriv1234/Freight-Project/internal/app/config"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/modules/mdoptimize"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rprequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/dataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/mq/lmstfy"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/mysql"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/redis"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
	"github.com/isaiahriv1234/Freight-Project/internal/worker"
	"github.com/isaiahriv1234/Freight-Project/internal/worker/jobs"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()
	appLogger.Infof(ctx, "Starting carrier optimization worker...")

	// The worker scores carriers against the same dataset the API serves.
	records, err := dataset.LoadFile(cfg.Data.ProcurementCSV)
	if err != nil {
		log.Fatalf("Failed to load procurement dataset: %v", err)
	}
	appLogger.Infof(ctx, "Procurement dataset loaded: %d records", len(records))

	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	redisClient, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to init redis: %v", err)
	}
	defer redisClient.Close()

	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		log.Fatalf("Failed to init lmstfy: %v", err)
	}

	datasetRepo := rpdataset.NewMemoryRepository(records)
	requestRepo := rprequest.NewRequestRepository(db)
	shippingService := svshipping.NewShippingService(datasetRepo)
	optimizeModule := mdoptimize.NewOptimizeModule(lmstfyClient, redisClient, cfg.Lmstfy.Queue)

	handlers := map[string]jobs.Handler{
		model.ActionCarrierOptimize: jobs.NewOptimizeHandler(shippingService, requestRepo, optimizeModule, appLogger),
	}
	proc := jobs.GetProcess(appLogger, handlers)

	manager, err := worker.NewManagerInstance(cfg, lmstfyClient, proc, appLogger)
	if err != nil {
		log.Fatalf("Failed to create worker manager: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- manager.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		appLogger.Infof(ctx, "Received shutdown signal, stopping workers...")
		manager.Shutdown()
		appLogger.Infof(ctx, "All workers stopped gracefully")
	case err := <-errChan:
		if err != nil {
			appLogger.Errorf(ctx, "Worker manager stopped with error: %v", err)
			os.Exit(1)
		}
	}
}
