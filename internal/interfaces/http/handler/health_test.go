package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplytics/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDatabase struct {
	pingErr  error
	stats    persistence.ConnectionStats
	statsErr error
}

func (d stubDatabase) Ping(context.Context) error {
	return d.pingErr
}

func (d stubDatabase) Stats() (persistence.ConnectionStats, error) {
	return d.stats, d.statsErr
}

func TestHealthHandler(t *testing.T) {
	pool := persistence.ConnectionStats{
		MaxOpenConnections: 25,
		OpenConnections:    3,
		InUse:              1,
		Idle:               2,
		WaitCount:          4,
		WaitDuration:       1500 * time.Millisecond,
	}

	tests := []struct {
		name     string
		db       stubDatabase
		wantCode int
		wantBody string
	}{
		{
			name:     "database reachable",
			db:       stubDatabase{stats: pool},
			wantCode: http.StatusOK,
			wantBody: `{
				"status": "ok",
				"database": "ok",
				"pool": {
					"max_open_connections": 25,
					"open_connections": 3,
					"in_use": 1,
					"idle": 2,
					"wait_count": 4,
					"wait_duration": "1.5s"
				}
			}`,
		},
		{
			name:     "pool stats unavailable",
			db:       stubDatabase{statsErr: errors.New("sql: database is closed")},
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok","database":"ok"}`,
		},
		{
			name:     "database down",
			db:       stubDatabase{pingErr: errors.New("dial tcp: connection refused")},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"unavailable","database":"unreachable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, _ := newTestBase(false)
			h := NewHealthHandler(base, tt.db)
			router := gin.New()
			router.GET("/health", h.Health)

			w := testRequest{method: http.MethodGet, path: "/health"}.do(router)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHealthHandler_LogsMissingPoolStats(t *testing.T) {
	base, logs := newTestBase(false)
	h := NewHealthHandler(base, stubDatabase{statsErr: errors.New("closed")})
	router := gin.New()
	router.GET("/health", h.Health)

	testRequest{method: http.MethodGet, path: "/health"}.do(router)

	require.Len(t, logs.FilterMessage("Failed to read connection pool stats").All(), 1)
}
