package domain

// ==================== CUSTOMERS ====================

// Company represents the Companies table
type Company struct {
	CompanyID int64  `json:"company_id" db:"company_id"`
	Name      string `json:"name" db:"name"`
}

// Customer represents the Customers table. Rating holds the stored value as
// text: rows written through the add form may carry any submitted string.
type Customer struct {
	CustomerID int64  `json:"customer_id" db:"customer_id"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Rating     string `json:"rating" db:"rating"`
	CompanyID  int64  `json:"company_id" db:"company_id"`
}

// CustomerListing is a customer joined with its company.
type CustomerListing struct {
	Customer
	CompanyName string `json:"company_name" db:"company_name"`
}

// CustomerInput carries the add-customer form exactly as submitted.
// Values are bound to the statement untouched; the store does the typing.
type CustomerInput struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Rating    string `form:"rating"`
	CompanyID string `form:"company_id"`
}

// ==================== EMPLOYEES ====================

// Department represents the Departments table
type Department struct {
	DepartmentID int64  `json:"department_id" db:"department_id"`
	Name         string `json:"name" db:"name"`
}

// Employee represents the Employees table. DepartmentID is text, like
// Customer.Rating.
type Employee struct {
	EmployeeID   int64  `json:"employee_id" db:"employee_id"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	DepartmentID string `json:"department_id" db:"department_id"`
}

// EmployeeListing is an employee joined with its department.
type EmployeeListing struct {
	Employee
	DepartmentName string `json:"department_name" db:"department_name"`
}

// EmployeeInput carries the create/edit employee form exactly as submitted.
// A field missing from the body is the empty string and is written as such.
type EmployeeInput struct {
	FirstName    string `form:"first_name"`
	LastName     string `form:"last_name"`
	DepartmentID string `form:"department_id"`
}
