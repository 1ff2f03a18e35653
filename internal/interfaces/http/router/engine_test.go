package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/shoplytics/backend/internal/application/catalog"
	partnerapp "github.com/shoplytics/backend/internal/application/partner"
	reportapp "github.com/shoplytics/backend/internal/application/report"
	tradeapp "github.com/shoplytics/backend/internal/application/trade"
	"github.com/shoplytics/backend/internal/domain/report"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/infrastructure/auth"
	"github.com/shoplytics/backend/internal/infrastructure/cache"
	"github.com/shoplytics/backend/internal/infrastructure/config"
	"github.com/shoplytics/backend/internal/infrastructure/persistence"
	"github.com/shoplytics/backend/internal/interfaces/http/handler"
	"github.com/shoplytics/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct{}

func (fakeProducts) Summarize(context.Context, catalogapp.ProductSummaryFilter) (*catalogapp.ProductSummaryResponse, error) {
	return &catalogapp.ProductSummaryResponse{
		ProductsByBrand:  []catalogapp.BrandCountResponse{},
		LowStockProducts: []catalogapp.LowStockProductResponse{},
	}, nil
}

func (fakeProducts) GetByID(context.Context, int64) (*catalogapp.ProductDetailResponse, error) {
	return nil, shared.ErrNotFound
}

type fakeOrders struct{}

func (fakeOrders) Search(context.Context, string) ([]tradeapp.OrderResponse, error) {
	return []tradeapp.OrderResponse{}, nil
}

func (fakeOrders) Recent(context.Context) ([]tradeapp.OrderResponse, error) {
	return []tradeapp.OrderResponse{}, nil
}

type fakeReports struct{}

func (fakeReports) Generate(_ context.Context, rawType string, _ report.SalesReportFilter) (*reportapp.SalesReport, error) {
	return &reportapp.SalesReport{Type: report.ParseReportType(rawType), Full: &reportapp.FullReportResponse{}}, nil
}

type fakeCustomers struct{}

func (fakeCustomers) GetByID(context.Context, int64) (*partnerapp.CustomerDetailResponse, error) {
	return &partnerapp.CustomerDetailResponse{}, nil
}

type okDatabase struct{}

func (okDatabase) Ping(context.Context) error { return nil }

func (okDatabase) Stats() (persistence.ConnectionStats, error) {
	return persistence.ConnectionStats{}, nil
}

type testEngine struct {
	engine *gin.Engine
	token  string
}

func newTestEngine(t *testing.T, rateLimit int, swagger config.SwaggerConfig) testEngine {
	t.Helper()

	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			MaxBodyBytes:     1024,
			RateLimitEnabled: true,
			CORSAllowOrigins: []string{"https://dashboard.example.com"},
		},
		Swagger: swagger,
	}

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		Issuer:                "shoplytics-test",
		AccessTokenExpiration: time.Hour,
	})
	token, _, err := jwtService.GenerateAccessToken("7", "analyst")
	require.NoError(t, err)

	limiter := cache.NewInMemoryRateLimiter(rateLimit, time.Minute)
	t.Cleanup(limiter.Close)

	base := handler.NewBaseHandler(nil, false)
	engine := NewEngine(EngineDeps{
		Config:         cfg,
		JWTService:     jwtService,
		TokenBlacklist: auth.NewInMemoryTokenBlacklist(),
		RateLimiter:    limiter,
		Analytics: AnalyticsHandlers{
			Product:  handler.NewProductHandler(base, fakeProducts{}),
			Order:    handler.NewOrderHandler(base, fakeOrders{}),
			Report:   handler.NewReportHandler(base, fakeReports{}),
			Customer: handler.NewCustomerHandler(base, fakeCustomers{}),
		},
		Health: handler.NewHealthHandler(base, okDatabase{}),
	})

	return testEngine{engine: engine, token: token}
}

func (te testEngine) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		req.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+te.token)
	}

	w := httptest.NewRecorder()
	te.engine.ServeHTTP(w, req)
	return w
}

func TestEngine_AnalyticsRoutes(t *testing.T) {
	te := newTestEngine(t, 100, config.SwaggerConfig{})

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/v1/analytics/all_products", "", http.StatusOK},
		{http.MethodPost, "/api/v1/analytics/all_products", `{"brand":"Apple"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/analytics/search-orders?search=apple", "", http.StatusOK},
		{http.MethodPost, "/api/v1/analytics/search-orders", `{"search":"apple"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/analytics/sales-summary?type=full", "", http.StatusOK},
		{http.MethodPost, "/api/v1/analytics/sales-summary?type=full", `{}`, http.StatusOK},
		{http.MethodGet, "/api/v1/analytics/recent-orders", "", http.StatusOK},
		{http.MethodPost, "/api/v1/analytics/recent-orders", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/analytics/products/1", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/analytics/customers/1", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := te.do(tt.method, tt.target, tt.body, true)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestEngine_RequiresAuthentication(t *testing.T) {
	te := newTestEngine(t, 100, config.SwaggerConfig{})

	w := te.do(http.MethodGet, "/api/v1/analytics/recent-orders", "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Authorization token not found"}`, w.Body.String())
	assert.Empty(t, w.Header().Get(middleware.RateLimitLimitHeader), "rejected before rate limiting")
}

func TestEngine_RateLimitsPerPrincipal(t *testing.T) {
	te := newTestEngine(t, 2, config.SwaggerConfig{})

	for i := 0; i < 2; i++ {
		w := te.do(http.MethodGet, "/api/v1/analytics/recent-orders", "", true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get(middleware.RateLimitLimitHeader))
	}

	w := te.do(http.MethodGet, "/api/v1/analytics/all_products", "", true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Too Many Attempts."}`, w.Body.String())
	assert.Equal(t, "0", w.Header().Get(middleware.RateLimitRemainingHeader))
}

func TestEngine_GlobalMiddleware(t *testing.T) {
	te := newTestEngine(t, 100, config.SwaggerConfig{})

	t.Run("health is public", func(t *testing.T) {
		w := te.do(http.MethodGet, "/health", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/analytics/all_products", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		w := httptest.NewRecorder()
		te.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("oversize body", func(t *testing.T) {
		w := te.do(http.MethodPost, "/api/v1/analytics/search-orders", `{"search":"`+strings.Repeat("a", 2048)+`"}`, true)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestEngine_Swagger(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		te := newTestEngine(t, 100, config.SwaggerConfig{Enabled: false})

		w := te.do(http.MethodGet, "/swagger/index.html", "", false)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		te := newTestEngine(t, 100, config.SwaggerConfig{Enabled: true})

		w := te.do(http.MethodGet, "/swagger/index.html", "", false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
	})
}
