package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shoplytics/backend/internal/infrastructure/auth"
	"github.com/shoplytics/backend/internal/infrastructure/cache"
	"github.com/shoplytics/backend/internal/infrastructure/config"
	"github.com/shoplytics/backend/internal/infrastructure/logger"
	"github.com/shoplytics/backend/internal/interfaces/http/handler"
	"github.com/shoplytics/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EngineDeps holds everything the HTTP engine is assembled from.
// RateLimiter, TokenBlacklist, TracerProvider and Meter are optional.
// TracingEnabled turns on HTTP spans once a tracer provider is exporting.
type EngineDeps struct {
	Config         *config.Config
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	RateLimiter    cache.RateLimiter
	TracerProvider trace.TracerProvider
	Meter          metric.Meter
	TracingEnabled bool
	Analytics      AnalyticsHandlers
	Health         *handler.HealthHandler
}

// NewEngine builds the gin engine.
//
// Global middleware order: request id, access log, panic recovery, security
// headers, CORS, tracing, metrics, body limit. The analytics group then runs
// JWT authentication before the per-principal rate limit.
func NewEngine(deps EngineDeps) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		Enabled:        deps.TracingEnabled,
		TracerProvider: deps.TracerProvider,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(deps.Meter, log))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	if deps.Health != nil {
		engine.GET("/health", deps.Health.Health)
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	analytics := NewAnalyticsRoutes(deps.Analytics)
	analytics.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     deps.JWTService,
		TokenBlacklist: deps.TokenBlacklist,
		Logger:         log,
	}))
	analytics.Use(middleware.TracingAttributeInjector())
	if cfg.HTTP.RateLimitEnabled && deps.RateLimiter != nil {
		analytics.Use(middleware.RateLimit(deps.RateLimiter, middleware.PrincipalKey, log))
	}

	NewRouter(engine, WithAPIVersion("v1")).
		Register(analytics).
		Setup()

	return engine
}
