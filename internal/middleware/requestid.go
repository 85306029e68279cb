package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/locvowork/crm_admin/internal/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware tags each request with an ID and puts a sub-logger
// carrying it (plus method and path) into the request context.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
			req.Header.Set(HeaderRequestID, requestID)
		}
		c.Response().Header().Set(HeaderRequestID, requestID)
		c.Set("request_id", requestID)

		ctx := logger.WithLogger(req.Context(), map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"path":       req.URL.Path,
		})
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
