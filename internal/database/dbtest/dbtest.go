// Package dbtest provides an in-memory store loaded with the admin schema
// and a small fixture set, for tests of code that executes real SQL.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/locvowork/crm_admin/internal/database"
)

// Schema mirrors the externally managed tables the application reads.
const Schema = `
CREATE TABLE Companies (
	company_id INTEGER PRIMARY KEY,
	name       TEXT NOT NULL
);
CREATE TABLE Customers (
	customer_id INTEGER PRIMARY KEY,
	first_name  TEXT NOT NULL,
	last_name   TEXT NOT NULL,
	rating      INTEGER NOT NULL,
	company_id  INTEGER NOT NULL REFERENCES Companies(company_id)
);
CREATE TABLE Departments (
	department_id INTEGER PRIMARY KEY,
	name          TEXT NOT NULL
);
CREATE TABLE Employees (
	employee_id   INTEGER PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	department_id INTEGER NOT NULL REFERENCES Departments(department_id)
);
`

// Fixtures is loaded after Schema.
const Fixtures = `
INSERT INTO Companies (company_id, name) VALUES (1, 'Acme'), (2, 'Globex');
INSERT INTO Departments (department_id, name) VALUES (1, 'Engineering'), (2, 'Research');
INSERT INTO Customers (customer_id, first_name, last_name, rating, company_id) VALUES
	(1, 'John', 'Smith', 5, 1),
	(2, 'Joan', 'Jones', 3, 2),
	(3, 'Mary', 'Johnson', 1, 1);
INSERT INTO Employees (employee_id, first_name, last_name, department_id) VALUES
	(1, 'Grace', 'Hopper', 1),
	(2, 'Alan', 'Turing', 2);
`

// Open returns a fresh in-memory database holding Schema and Fixtures.
// It is closed when the test finishes.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{Driver: database.DriverSQLite, DBName: ":memory:"})
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, stmt := range []string{Schema, Fixtures} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("prepare test store: %v", err)
		}
	}
	return db
}
