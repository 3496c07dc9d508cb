package middleware

import (
	"net/http"
	"time"

	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies by route template.
type MetricsMiddleware struct {
	recorder metrics.Recorder
}

// NewMetricsMiddleware creates a metrics middleware.
func NewMetricsMiddleware(recorder metrics.Recorder) *MetricsMiddleware {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &MetricsMiddleware{recorder: recorder}
}

// Handle records every request. Errors are passed on untouched; their status is
// derived the same way the error handler will render them.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
