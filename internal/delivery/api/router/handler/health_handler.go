package handler

import (
	"context"
	"net/http"
	"time"

	"mealplanner/internal/delivery/api/response"
	"mealplanner/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB       *gorm.DB            `optional:"true"`
	Gatherer prometheus.Gatherer `optional:"true"`
}

// HealthHandler serves liveness and metrics endpoints.
type HealthHandler struct {
	db       *gorm.DB
	gatherer prometheus.Gatherer
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, gatherer: params.Gatherer}
}

// Health reports ok, or 503 when the database does not answer a ping.
func (h *HealthHandler) Health(c echo.Context) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", nil)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// Metrics serves the Prometheus scrape endpoint.
func (h *HealthHandler) Metrics(c echo.Context) error {
	if h.gatherer == nil {
		return echo.ErrNotFound
	}

	metrics.Handler(h.gatherer).ServeHTTP(c.Response(), c.Request())

	return nil
}
