package service

import (
	"context"

	"github.com/locvowork/crm_admin/internal/domain"
)

// CustomerService handles the customer pages
type CustomerService struct {
	customerRepo domain.CustomerRepository
	companyRepo  domain.CompanyRepository
}

// NewCustomerService creates a new CustomerService instance
func NewCustomerService(customerRepo domain.CustomerRepository, companyRepo domain.CompanyRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
	}
}

// List returns the customers matching the filter, joined with their company
func (s *CustomerService) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.CustomerListing, error) {
	return s.customerRepo.List(ctx, filter)
}

// Companies returns every company for the add form's select control
func (s *CustomerService) Companies(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

// Create inserts the customer exactly as submitted
func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) error {
	return s.customerRepo.Create(ctx, in)
}
