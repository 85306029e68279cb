package repository

import (
	"context"
	"database/sql"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/repository/builder"
)

// customerListingBase ends in a tautology so predicates can be appended
// with AND unconditionally.
const customerListingBase = "SELECT c.customer_id, c.first_name, c.last_name, c.rating, c.company_id, co.name AS company_name" +
	" FROM Customers c JOIN Companies co ON c.company_id = co.company_id WHERE 1=1"

// Predicate columns of the customer listing.
const (
	colCustomerFirstName = "c.first_name"
	colCustomerLastName  = "c.last_name"
	colCustomerRating    = "c.rating"
)

type customerRepository struct {
	store *Store
}

// NewCustomerRepository creates a new instance of CustomerRepository
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{store: store}
}

// customerPredicates returns the active filters in their fixed order:
// first name, last name, minimum rating.
func customerPredicates(f domain.CustomerFilter) []builder.Predicate {
	var preds []builder.Predicate
	if f.FirstName != "" {
		preds = append(preds, builder.Contains(colCustomerFirstName, f.FirstName))
	}
	if f.LastName != "" {
		preds = append(preds, builder.Contains(colCustomerLastName, f.LastName))
	}
	if f.MinRating != "" {
		preds = append(preds, builder.AtLeast(colCustomerRating, f.MinRating))
	}
	return preds
}

func (r *customerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.CustomerListing, error) {
	query, args := builder.Filtered(customerListingBase, customerPredicates(filter)...)

	var customers []domain.CustomerListing
	err := r.store.QueryEach(ctx, "list customers", query, args, func(rows *sql.Rows) error {
		var c domain.CustomerListing
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Rating, &c.CompanyID, &c.CompanyName); err != nil {
			return err
		}
		customers = append(customers, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Create(ctx context.Context, in domain.CustomerInput) error {
	query, args := builder.NewSQLBuilder().
		Insert("Customers", "first_name", "last_name", "rating", "company_id").
		Values(in.FirstName, in.LastName, in.Rating, in.CompanyID).
		Build()

	_, err := r.store.Exec(ctx, "create customer", query, args...)
	return err
}
