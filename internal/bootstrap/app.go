package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/crm_admin/internal/config"
	"github.com/locvowork/crm_admin/internal/database"
	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/handler"
	"github.com/locvowork/crm_admin/internal/logger"
	"github.com/locvowork/crm_admin/internal/metrics"
	mid "github.com/locvowork/crm_admin/internal/middleware"
	"github.com/locvowork/crm_admin/internal/repository"
	"github.com/locvowork/crm_admin/internal/service"
	"github.com/locvowork/crm_admin/internal/view"
)

type App struct {
	Echo    *echo.Echo
	Store   *repository.Store
	Metrics *metrics.HTTPMetrics
}

type handlers struct {
	page     *handler.PageHandler
	health   *handler.HealthHandler
	customer *handler.CustomerHandler
	employee *handler.EmployeeHandler
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{Echo: e}
}

// Initialize loads configuration, opens the store and wires the routes.
// A store that cannot be reached is returned as *domain.StartupConnectionError
// before any route exists.
func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	// Initialize logging
	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize database connection
	dbConfig := database.ConfigFromEnv(cfg)

	db, err := database.Open(ctx, dbConfig)
	if err != nil {
		return err
	}
	logger.InfoLog(ctx, "Connected to %s store", dbConfig.Driver)

	return a.Wire(db, cfg.SERVICE_NAME)
}

// Wire builds everything that depends on a live connection and registers
// the routes.
func (a *App) Wire(db *sql.DB, serviceName string) error {
	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load views: %w", err)
	}
	a.Echo.Renderer = renderer
	a.Echo.HTTPErrorHandler = errorHandler

	a.Store = repository.NewStore(db)
	a.Metrics = metrics.NewHTTPMetrics(serviceName)

	// Initialize dependencies
	customerRepo := repository.NewCustomerRepository(a.Store)
	companyRepo := repository.NewCompanyRepository(a.Store)
	employeeRepo := repository.NewEmployeeRepository(a.Store)
	departmentRepo := repository.NewDepartmentRepository(a.Store)

	customerSvc := service.NewCustomerService(customerRepo, companyRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, departmentRepo)
	exportSvc := service.NewExportService(customerSvc, employeeSvc)

	h := handlers{
		page:     handler.NewPageHandler(),
		health:   handler.NewHealthHandler(a.Store),
		customer: handler.NewCustomerHandler(customerSvc, exportSvc),
		employee: handler.NewEmployeeHandler(employeeSvc, exportSvc),
	}

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.registerRoutes(h)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Pre(middleware.RemoveTrailingSlash())
	a.Echo.Use(mid.RequestIDMiddleware)
	a.Echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Ctx(c.Request().Context()).Info().
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	a.Echo.Use(mid.MetricsMiddleware(a.Metrics))
	a.Echo.Use(middleware.Recover())
}

func (a *App) registerRoutes(h handlers) {
	a.Echo.GET("/", h.page.HomeHandler)
	a.Echo.GET("/test", h.page.TestHandler)
	a.Echo.GET("/healthz", h.health.HealthHandler)
	a.Echo.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))

	customers := a.Echo.Group("/customers")
	customers.GET("", h.customer.ListHandler)
	customers.GET("/add", h.customer.AddFormHandler)
	customers.POST("/add", h.customer.AddHandler)
	customers.GET("/export", h.customer.ExportHandler)

	employees := a.Echo.Group("/employees")
	employees.GET("", h.employee.ListHandler)
	employees.GET("/create", h.employee.CreateFormHandler)
	employees.POST("/create", h.employee.CreateHandler)
	employees.GET("/export", h.employee.ExportHandler)
	employees.GET("/:employee_id/edit", h.employee.EditFormHandler)
	employees.POST("/:employee_id/edit", h.employee.EditHandler)
	employees.GET("/:employee_id/delete", h.employee.DeleteFormHandler)
	employees.POST("/:employee_id/delete", h.employee.DeleteHandler)
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	defer a.Store.Close()

	cfg := config.DefaultEnvConfig
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.InfoLog(ctx, "Listening on :%s", cfg.APP_PORT)
		if err := a.Echo.Start(":" + cfg.APP_PORT); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.InfoLog(context.Background(), "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SHUTDOWN_TIMEOUT)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

const genericErrorMessage = "Something went wrong while processing your request."

// errorHandler is the one place request errors become responses. Causes are
// logged; the client only sees the status and a generic message.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	ctx := c.Request().Context()

	status := http.StatusInternalServerError
	message := genericErrorMessage
	var he *echo.HTTPError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = "The requested record does not exist."
	case errors.As(err, &he):
		status = he.Code
		message = http.StatusText(he.Code)
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorLog(ctx, "request failed: %v", err)
	} else {
		logger.WarnLog(ctx, "request rejected: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	data := echo.Map{
		"status":     status,
		"statusText": http.StatusText(status),
		"message":    message,
	}
	if rerr := c.Render(status, "error", data); rerr != nil {
		logger.ErrorLog(ctx, "failed to render error view: %v", rerr)
		_ = c.String(status, fmt.Sprintf("%d %s", status, http.StatusText(status)))
	}
}
