package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	godownapp "github.com/erp/godown/internal/application/godown"
	inventoryapp "github.com/erp/godown/internal/application/inventory"
	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/infrastructure/cache"
	"github.com/erp/godown/internal/infrastructure/config"
	"github.com/erp/godown/internal/infrastructure/event"
	"github.com/erp/godown/internal/infrastructure/logger"
	"github.com/erp/godown/internal/infrastructure/persistence"
	"github.com/erp/godown/internal/infrastructure/telemetry"
	"github.com/erp/godown/internal/interfaces/http/handler"
	"github.com/erp/godown/internal/interfaces/http/middleware"
	"github.com/erp/godown/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("Starting godown service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Telemetry. All three providers are no-ops when disabled.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log = loggerProvider.Bridge(log, logger.ParseLevel(cfg.Log.Level))
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
		if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterDBTracing(db.DB, cfg.Database.DBName, log); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}

	// Repositories
	godownRepo := persistence.NewGormGodownRepository(db.DB)
	unitRepo := persistence.NewGormAdministrativeUnitRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	sellerRepo := persistence.NewGormSellerListingRepository(db.DB)
	stockRepo := persistence.NewGormStockEntryRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Settlement policy
	strategy, err := inventory.NewBatchStrategy(cfg.Stock.BatchStrategy)
	if err != nil {
		log.Fatal("Invalid stock configuration", zap.Error(err))
	}
	policy := inventoryapp.TransferPolicy{
		Strategy:           strategy,
		AllowNegativeStock: cfg.Stock.AllowNegativeStock,
	}
	log.Info("Transfer settlement policy",
		zap.String("batch_strategy", string(strategy.Type())),
		zap.Bool("allow_negative_stock", policy.AllowNegativeStock),
	)

	// Application services
	godownService := godownapp.NewGodownService(godownRepo, sellerRepo)
	assignmentService := godownapp.NewAssignmentService(godownRepo, unitRepo, assignmentRepo, txScope.ForGodowns())
	ledgerService := inventoryapp.NewStockLedgerService(godownRepo, stockRepo, productRepo)
	ledgerService.SetLocation(cfg.App.Location())
	transferService := inventoryapp.NewTransferService(godownRepo, transferRepo, txScope.ForInventory(), policy)

	transferMetrics, err := telemetry.NewTransferMetrics(otel.GetMeterProvider())
	if err != nil {
		log.Fatal("Failed to create transfer metrics", zap.Error(err))
	}
	transferService.SetMetrics(transferMetrics)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewNotificationHandler(event.NewLogNotifier(log)))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	godownService.SetEventPublisher(eventBus)
	assignmentService.SetEventPublisher(eventBus)
	ledgerService.SetEventPublisher(eventBus)
	transferService.SetEventPublisher(eventBus)

	// Idempotency keys for transfer mutations
	idempotencyStore := cache.NewIdempotencyStore(ctx, cfg.Redis, log)
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		handler.SetupValidator(v)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	if tracerProvider.IsEnabled() {
		engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName))
		engine.Use(middleware.SpanAttributes())
	}
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORS(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	router.Mount(engine, router.Handlers{
		Godown:     handler.NewGodownHandler(godownService),
		Assignment: handler.NewAssignmentHandler(assignmentService),
		Stock:      handler.NewStockHandler(ledgerService),
		Transfer:   handler.NewTransferHandler(transferService),
		System:     handler.NewSystemHandler(sqlDB),
	}, middleware.Idempotency(idempotencyStore, cfg.HTTP.IdempotencyTTL))

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
