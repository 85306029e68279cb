package repository

import (
	"context"
	"database/sql"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/repository/builder"
)

type employeeRepository struct {
	store *Store
}

// NewEmployeeRepository creates a new instance of EmployeeRepository
func NewEmployeeRepository(store *Store) domain.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, in domain.EmployeeInput) error {
	query, args := builder.NewSQLBuilder().
		Insert("Employees", "first_name", "last_name", "department_id").
		Values(in.FirstName, in.LastName, in.DepartmentID).
		Build()

	_, err := r.store.Exec(ctx, "create employee", query, args...)
	return err
}

// GetByID asks for the employee list filtered on the primary key and keeps
// the first row. No row is domain.ErrNotFound.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query, args := builder.NewSQLBuilder().
		Select("employee_id", "first_name", "last_name", "department_id").
		From("Employees").
		Filter(builder.Equals("employee_id", id)).
		Build()

	var employees []domain.Employee
	err := r.store.QueryEach(ctx, "get employee", query, args, func(rows *sql.Rows) error {
		var e domain.Employee
		if err := rows.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.DepartmentID); err != nil {
			return err
		}
		employees = append(employees, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, domain.ErrNotFound
	}
	return &employees[0], nil
}

// Update rewrites all three editable columns; nothing is merged with the
// stored row.
func (r *employeeRepository) Update(ctx context.Context, id string, in domain.EmployeeInput) error {
	query, args := builder.NewSQLBuilder().
		Update("Employees").
		Set("first_name", in.FirstName).
		Set("last_name", in.LastName).
		Set("department_id", in.DepartmentID).
		Filter(builder.Equals("employee_id", id)).
		Build()

	_, err := r.store.Exec(ctx, "update employee", query, args...)
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	query, args := builder.NewSQLBuilder().
		Delete("Employees").
		Filter(builder.Equals("employee_id", id)).
		Build()

	_, err := r.store.Exec(ctx, "delete employee", query, args...)
	return err
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.EmployeeListing, error) {
	query, args := builder.NewSQLBuilder().
		Select("e.employee_id", "e.first_name", "e.last_name", "e.department_id", "d.name AS department_name").
		From("Employees e").
		Join("INNER", "Departments d", "e.department_id = d.department_id").
		Build()

	var employees []domain.EmployeeListing
	err := r.store.QueryEach(ctx, "list employees", query, args, func(rows *sql.Rows) error {
		var e domain.EmployeeListing
		if err := rows.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.DepartmentID, &e.DepartmentName); err != nil {
			return err
		}
		employees = append(employees, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employees, nil
}
