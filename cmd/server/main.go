package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	catalogapp "github.com/shoplytics/backend/internal/application/catalog"
	partnerapp "github.com/shoplytics/backend/internal/application/partner"
	reportapp "github.com/shoplytics/backend/internal/application/report"
	tradeapp "github.com/shoplytics/backend/internal/application/trade"
	"github.com/shoplytics/backend/internal/infrastructure/auth"
	"github.com/shoplytics/backend/internal/infrastructure/cache"
	"github.com/shoplytics/backend/internal/infrastructure/config"
	"github.com/shoplytics/backend/internal/infrastructure/logger"
	"github.com/shoplytics/backend/internal/infrastructure/migration"
	"github.com/shoplytics/backend/internal/infrastructure/persistence"
	"github.com/shoplytics/backend/internal/infrastructure/telemetry"
	"github.com/shoplytics/backend/internal/interfaces/http/handler"
	"github.com/shoplytics/backend/internal/interfaces/http/router"
	"github.com/shoplytics/backend/migrations"
	"go.uber.org/zap"

	_ "github.com/shoplytics/backend/docs"
)

//	@title			Shoplytics Analytics API
//	@version		1.0
//	@description	Read-only sales analytics over products, customers and orders

//	@contact.name	API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shoplytics analytics API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	meter := meterProvider.Meter(telemetry.TracerName)
	log.Info("Telemetry configured",
		zap.Bool("tracing", tracerProvider.IsEnabled()),
		zap.Bool("metrics", meterProvider.IsEnabled()),
	)

	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

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

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, using in-process token blacklist and rate limiter", zap.Error(err))
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Error closing Redis client", zap.Error(err))
				}
			}()
		}
	}

	var tokenBlacklist auth.TokenBlacklist
	if redisClient != nil {
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	}

	limiter, err := cache.NewRateLimiterFactory(cfg.HTTP, cache.WithLogger(log)).Create(redisClient)
	if err != nil {
		log.Fatal("Failed to create rate limiter", zap.Error(err))
	}
	if closer, ok := limiter.(interface{ Close() }); ok {
		defer closer.Close()
	}

	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)

	productService := catalogapp.NewProductService(productRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo)
	orderService := tradeapp.NewOrderService(orderRepo)
	reportEngine, err := reportapp.NewSalesReportEngine(salesReportRepo, log, meter)
	if err != nil {
		log.Fatal("Failed to create sales report engine", zap.Error(err))
	}

	base := handler.NewBaseHandler(log, cfg.App.Debug)
	engine := router.NewEngine(router.EngineDeps{
		Config:         cfg,
		Logger:         log,
		JWTService:     auth.NewJWTService(cfg.JWT),
		TokenBlacklist: tokenBlacklist,
		RateLimiter:    limiter,
		Meter:          meter,
		TracingEnabled: tracerProvider.IsEnabled(),
		Analytics: router.AnalyticsHandlers{
			Product:  handler.NewProductHandler(base, productService),
			Order:    handler.NewOrderHandler(base, orderService),
			Report:   handler.NewReportHandler(base, reportEngine),
			Customer: handler.NewCustomerHandler(base, customerService),
		},
		Health: handler.NewHealthHandler(base, db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runMigrations applies the embedded schema on a dedicated connection.
// The migrator closes that connection when done.
func runMigrations(cfg *config.Config, log *zap.Logger) error {
	conn, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}

	m, err := migration.NewFromFS(conn, migrations.FS, log)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() {
		_ = m.Close()
	}()

	return m.Up()
}
