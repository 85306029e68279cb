package service

import (
	"context"
	_ "embed"
	"io"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/logger"
	"github.com/locvowork/crm_admin/pkg/sheetexport"
)

//go:embed layouts/export.yaml
var exportLayout string

const (
	customersSheet = "customers"
	employeesSheet = "employees"
)

// ExportService writes the listings as XLSX workbooks
type ExportService struct {
	customers *CustomerService
	employees *EmployeeService
}

// NewExportService creates a new ExportService instance
func NewExportService(customers *CustomerService, employees *EmployeeService) *ExportService {
	return &ExportService{customers: customers, employees: employees}
}

// Customers writes the customer listing narrowed by filter to w.
func (s *ExportService) Customers(ctx context.Context, filter domain.CustomerFilter, w io.Writer) error {
	list, err := s.customers.List(ctx, filter)
	if err != nil {
		return err
	}
	logger.InfoLog(ctx, "exporting %d customers", len(list))
	return writeSheet(customersSheet, list, w)
}

// Employees writes the full employee listing to w.
func (s *ExportService) Employees(ctx context.Context, w io.Writer) error {
	list, err := s.employees.List(ctx)
	if err != nil {
		return err
	}
	logger.InfoLog(ctx, "exporting %d employees", len(list))
	return writeSheet(employeesSheet, list, w)
}

func writeSheet(sheetID string, data interface{}, w io.Writer) error {
	exporter, err := sheetexport.NewExporterFromYamlConfig(exportLayout)
	if err != nil {
		return err
	}
	exporter, err = exporter.Only(sheetID)
	if err != nil {
		return err
	}
	return exporter.BindSheetData(sheetID, data).ToWriter(w)
}
