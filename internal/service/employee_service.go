package service

import (
	"context"

	"github.com/locvowork/crm_admin/internal/domain"
)

// EmployeeService handles the employee pages
type EmployeeService struct {
	employeeRepo   domain.EmployeeRepository
	departmentRepo domain.DepartmentRepository
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(employeeRepo domain.EmployeeRepository, departmentRepo domain.DepartmentRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// EditForm is what the edit page needs: the current row and the lookup.
type EditForm struct {
	Employee    *domain.Employee
	Departments []domain.Department
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.EmployeeListing, error) {
	return s.employeeRepo.List(ctx)
}

func (s *EmployeeService) Departments(ctx context.Context) ([]domain.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, in domain.EmployeeInput) error {
	return s.employeeRepo.Create(ctx, in)
}

// EditForm fetches the employee first, then the departments.
func (s *EmployeeService) EditForm(ctx context.Context, id string) (*EditForm, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &EditForm{Employee: emp, Departments: departments}, nil
}

// Update overwrites the employee's fields. An unknown id is ErrNotFound.
func (s *EmployeeService) Update(ctx context.Context, id string, in domain.EmployeeInput) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, id, in)
}

// Delete removes the employee. An unknown id is ErrNotFound.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
