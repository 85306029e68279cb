package builder_test

import (
	"fmt"

	"github.com/locvowork/crm_admin/internal/repository/builder"
)

// Example_filtered shows how the customer listing grows its WHERE clause.
func Example_filtered() {
	base := "SELECT c.first_name, c.last_name FROM Customers c WHERE 1=1"

	sql, args := builder.Filtered(base,
		builder.Contains("c.first_name", "Jo"),
		builder.AtLeast("c.rating", "3"),
	)
	fmt.Println("SQL:", sql)
	fmt.Printf("Args: %v\n", args)

	// Output:
	// SQL: SELECT c.first_name, c.last_name FROM Customers c WHERE 1=1 AND c.first_name LIKE $1 AND c.rating >= $2
	// Args: [%Jo% 3]
}

// Example_singleRow fetches one employee by filtering the list on its key.
func Example_singleRow() {
	sql, args := builder.NewSQLBuilder().
		Select("employee_id", "first_name", "last_name", "department_id").
		From("Employees").
		Filter(builder.Equals("employee_id", "12")).
		Build()
	fmt.Println("SQL:", sql)
	fmt.Printf("Args: %v\n", args)

	// Output:
	// SQL: SELECT employee_id, first_name, last_name, department_id FROM Employees WHERE employee_id = $1
	// Args: [12]
}

// Example_update rewrites every editable column of one employee.
func Example_update() {
	sql, args := builder.NewSQLBuilder().
		Update("Employees").
		Set("first_name", "Ada").
		Set("last_name", "").
		Set("department_id", "2").
		Filter(builder.Equals("employee_id", "5")).
		Build()
	fmt.Println("SQL:", sql)
	fmt.Printf("Number of args: %d\n", len(args))

	// Output:
	// SQL: UPDATE Employees SET first_name = $1, last_name = $2, department_id = $3 WHERE employee_id = $4
	// Number of args: 4
}
