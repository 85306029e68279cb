package handler

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/service"
)

const customersPath = "/customers"

type CustomerHandler struct {
	svc     *service.CustomerService
	exports *service.ExportService
}

func NewCustomerHandler(svc *service.CustomerService, exports *service.ExportService) *CustomerHandler {
	return &CustomerHandler{svc: svc, exports: exports}
}

// ListHandler renders the customer table. The filter is echoed back so the
// search form keeps what the user typed.
func (h *CustomerHandler) ListHandler(c echo.Context) error {
	filter := domain.ParseCustomerFilter(c.QueryParams())

	customers, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "customers/index", echo.Map{
		"customers":   customers,
		"searchTerms": filter,
	})
}

func (h *CustomerHandler) AddFormHandler(c echo.Context) error {
	companies, err := h.svc.Companies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "customers/add", echo.Map{"companies": companies})
}

// AddHandler inserts the submitted fields as sent.
func (h *CustomerHandler) AddHandler(c echo.Context) error {
	var req domain.CustomerInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.svc.Create(c.Request().Context(), req); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, customersPath)
}

func (h *CustomerHandler) ExportHandler(c echo.Context) error {
	filter := domain.ParseCustomerFilter(c.QueryParams())

	var buf bytes.Buffer
	if err := h.exports.Customers(c.Request().Context(), filter, &buf); err != nil {
		return err
	}
	return attachment(c, "customers.xlsx", buf.Bytes())
}
