package repository

import (
	"context"
	"database/sql"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/repository/builder"
)

// CompanyRepository reads the Companies table for selection controls.
type CompanyRepository struct {
	store *Store
}

// NewCompanyRepository creates a new repository
func NewCompanyRepository(store *Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// List retrieves all companies
func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query, args := builder.NewSQLBuilder().Select("company_id", "name").From("Companies").Build()

	var companies []domain.Company
	err := r.store.QueryEach(ctx, "list companies", query, args, func(rows *sql.Rows) error {
		var c domain.Company
		if err := rows.Scan(&c.CompanyID, &c.Name); err != nil {
			return err
		}
		companies = append(companies, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// DepartmentRepository reads the Departments table for selection controls.
type DepartmentRepository struct {
	store *Store
}

// NewDepartmentRepository creates a new repository
func NewDepartmentRepository(store *Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

// List retrieves all departments
func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	query, args := builder.NewSQLBuilder().Select("department_id", "name").From("Departments").Build()

	var departments []domain.Department
	err := r.store.QueryEach(ctx, "list departments", query, args, func(rows *sql.Rows) error {
		var d domain.Department
		if err := rows.Scan(&d.DepartmentID, &d.Name); err != nil {
			return err
		}
		departments = append(departments, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return departments, nil
}
