package domain

import "context"

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, in CustomerInput) error
	List(ctx context.Context, filter CustomerFilter) ([]CustomerListing, error)
}

// CompanyRepository defines the interface for company lookups
type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	Create(ctx context.Context, in EmployeeInput) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]EmployeeListing, error)
}

// DepartmentRepository defines the interface for department lookups
type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
}
