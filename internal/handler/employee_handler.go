package handler

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/service"
	"github.com/locvowork/crm_admin/pkg/sheetexport"
)

const employeesPath = "/employees"

type EmployeeHandler struct {
	svc     *service.EmployeeService
	exports *service.ExportService
}

func NewEmployeeHandler(svc *service.EmployeeService, exports *service.ExportService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, exports: exports}
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "employees/index", echo.Map{"employees": employees})
}

func (h *EmployeeHandler) CreateFormHandler(c echo.Context) error {
	departments, err := h.svc.Departments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "employees/create", echo.Map{"departments": departments})
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req domain.EmployeeInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.svc.Create(c.Request().Context(), req); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, employeesPath)
}

func (h *EmployeeHandler) EditFormHandler(c echo.Context) error {
	form, err := h.svc.EditForm(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "employees/edit", echo.Map{
		"employee":    form.Employee,
		"departments": form.Departments,
	})
}

func (h *EmployeeHandler) EditHandler(c echo.Context) error {
	var req domain.EmployeeInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.svc.Update(c.Request().Context(), c.Param("employee_id"), req); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, employeesPath)
}

func (h *EmployeeHandler) DeleteFormHandler(c echo.Context) error {
	emp, err := h.svc.Get(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "employees/delete", echo.Map{"employee": emp})
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("employee_id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, employeesPath)
}

// ExportHandler sends the employee listing as an XLSX attachment.
func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.exports.Employees(c.Request().Context(), &buf); err != nil {
		return err
	}
	return attachment(c, "employees.xlsx", buf.Bytes())
}

// attachment writes an already built workbook, so a failed export never
// leaves a half-sent body behind.
func attachment(c echo.Context, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, sheetexport.ContentType, body)
}
