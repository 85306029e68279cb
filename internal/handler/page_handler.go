package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/crm_admin/internal/logger"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) HomeHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "home", nil)
}

func (h *PageHandler) TestHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "test", nil)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HealthHandler(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.store.Ping(ctx); err != nil {
		logger.WarnLog(ctx, "health check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
