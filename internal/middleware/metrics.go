package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/crm_admin/internal/metrics"
)

// MetricsMiddleware records request count and latency. Errors are handed to
// the error handler first so the recorded status is the one sent.
func MetricsMiddleware(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			duration := time.Since(start).Seconds()

			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			m.RequestsTotal.WithLabelValues(method, path, status).Inc()
			m.RequestDuration.WithLabelValues(method, path, status).Observe(duration)
			return nil
		}
	}
}
