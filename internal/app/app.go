package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/config"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/modules/mdoptimize"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rprequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svanalytics"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svconsolidation"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svdiversity"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svpurchasing"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/dataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/mq/lmstfy"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/mysql"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/redis"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/idgen"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/analytics"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/consolidation"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/diversity"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/payment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/purchasing"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/shipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/routers"
)

// App is the assembled API server.
type App struct {
	Engine *gin.Engine
	Logger logger.Logger
}

// InitializeApp wires the whole dependency graph: infra clients, the
// in-memory dataset, repositories, modules, services, handlers. The
// returned cleanup closes connections in reverse order.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	ctx := context.Background()

	// The procurement dataset is loaded once at startup and served from
	// memory for the lifetime of the process.
	records, err := dataset.LoadFile(cfg.Data.ProcurementCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("load procurement dataset failed: %w", err)
	}
	log.Infof(ctx, "procurement dataset loaded: %d records from %s", len(records), cfg.Data.ProcurementCSV)

	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("init mysql failed: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}

	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("init lmstfy failed: %w", err)
	}

	// Repositories.
	datasetRepo := rpdataset.NewMemoryRepository(records)
	requestRepo := rprequest.NewRequestRepository(db)
	shipmentRepo := rpshipment.NewShipmentRepository(db)

	// Modules.
	optimizeModule := mdoptimize.NewOptimizeModule(lmstfyClient, redisClient, cfg.Lmstfy.Queue)

	// Services.
	gen := idgen.NewSnowflakeIDGenerator(1)
	analyticsService := svanalytics.NewAnalyticsService(datasetRepo, redisClient, log)
	diversityService := svdiversity.NewDiversityService(datasetRepo)
	consolidationService := svconsolidation.NewConsolidationService(datasetRepo)
	shippingService := svshipping.NewShippingService(datasetRepo)
	shipmentService := svshipment.NewShipmentService(shipmentRepo, gen, log)
	purchasingService := svpurchasing.NewPurchasingService(requestRepo, optimizeModule, gen, log)

	// Handlers.
	analyticsHandler := analytics.NewAnalyticsHandler(analyticsService)
	diversityHandler := diversity.NewDiversityHandler(diversityService)
	consolidationHandler := consolidation.NewConsolidationHandler(consolidationService)
	shippingHandler := shipping.NewShippingHandler(shippingService, shipmentService)
	paymentHandler := payment.NewPaymentHandler(shipmentService, shippingService)
	purchasingHandler := purchasing.NewPurchasingHandler(purchasingService)

	engine := routers.SetupRoutes(
		log,
		analyticsHandler,
		diversityHandler,
		consolidationHandler,
		shippingHandler,
		paymentHandler,
		purchasingHandler,
	)

	cleanup := func() {
		redisClient.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		log.Sync()
	}

	return &App{
		Engine: engine,
		Logger: log,
	}, cleanup, nil
}
