// Package seeder fills a development database with random companies,
// customers, departments and employees.
package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/logger"
	"github.com/locvowork/crm_admin/internal/repository"
	"github.com/locvowork/crm_admin/internal/repository/builder"
)

type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
)

// Sizes is how many rows of each kind one run inserts.
type Sizes struct {
	Companies   int
	Customers   int
	Departments int
	Employees   int
}

// GetPresetConfig returns the sizes for a preset.
func GetPresetConfig(preset SeedPreset) (Sizes, error) {
	switch preset {
	case PresetSmall:
		return Sizes{Companies: 3, Customers: 20, Departments: 2, Employees: 10}, nil
	case PresetMedium:
		return Sizes{Companies: 10, Customers: 200, Departments: 5, Employees: 50}, nil
	case PresetLarge:
		return Sizes{Companies: 25, Customers: 1000, Departments: 8, Employees: 250}, nil
	}
	return Sizes{}, fmt.Errorf("unknown preset %q (want small, medium or large)", preset)
}

var (
	companyNames    = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Stark", "Wayne", "Wonka", "Soylent", "Tyrell"}
	departmentNames = []string{"Engineering", "Sales", "Marketing", "Finance", "Support", "Research", "Legal", "Operations"}
	firstNames      = []string{"John", "Joan", "Mary", "Grace", "Alan", "Ada", "Linus", "Barbara", "Ken", "Edsger"}
	lastNames       = []string{"Smith", "Jones", "Johnson", "Hopper", "Turing", "Lovelace", "Torvalds", "Liskov", "Thompson", "Dijkstra"}
)

var tables = []string{"Employees", "Customers", "Departments", "Companies"}

type DataSeeder struct {
	db          *sql.DB
	store       *repository.Store
	rnd         *rand.Rand
	companies   *repository.CompanyRepository
	departments *repository.DepartmentRepository
	customers   domain.CustomerRepository
	employees   domain.EmployeeRepository
}

// NewDataSeeder seeds through the application repositories. seed makes runs
// reproducible.
func NewDataSeeder(db *sql.DB, seed int64) *DataSeeder {
	store := repository.NewStore(db)
	return &DataSeeder{
		db:          db,
		store:       store,
		rnd:         rand.New(rand.NewSource(seed)),
		companies:   repository.NewCompanyRepository(store),
		departments: repository.NewDepartmentRepository(store),
		customers:   repository.NewCustomerRepository(store),
		employees:   repository.NewEmployeeRepository(store),
	}
}

// SeedData inserts the parent lookups first, reads their ids back, then
// inserts customers and employees pointing at them.
func (ds *DataSeeder) SeedData(ctx context.Context, sizes Sizes) error {
	start := time.Now()

	if err := ds.batchInsertNames(ctx, "Companies", pickNames(companyNames, sizes.Companies)); err != nil {
		return fmt.Errorf("failed to insert companies: %w", err)
	}
	if err := ds.batchInsertNames(ctx, "Departments", pickNames(departmentNames, sizes.Departments)); err != nil {
		return fmt.Errorf("failed to insert departments: %w", err)
	}

	companies, err := ds.companies.List(ctx)
	if err != nil {
		return err
	}
	departments, err := ds.departments.List(ctx)
	if err != nil {
		return err
	}
	if len(companies) == 0 || len(departments) == 0 {
		return fmt.Errorf("no companies or departments to attach rows to")
	}

	for i := 0; i < sizes.Customers; i++ {
		co := companies[ds.rnd.Intn(len(companies))]
		err := ds.customers.Create(ctx, domain.CustomerInput{
			FirstName: firstNames[ds.rnd.Intn(len(firstNames))],
			LastName:  lastNames[ds.rnd.Intn(len(lastNames))],
			Rating:    strconv.Itoa(ds.rnd.Intn(5) + 1),
			CompanyID: strconv.FormatInt(co.CompanyID, 10),
		})
		if err != nil {
			return fmt.Errorf("failed to insert customers: %w", err)
		}
	}

	for i := 0; i < sizes.Employees; i++ {
		d := departments[ds.rnd.Intn(len(departments))]
		err := ds.employees.Create(ctx, domain.EmployeeInput{
			FirstName:    firstNames[ds.rnd.Intn(len(firstNames))],
			LastName:     lastNames[ds.rnd.Intn(len(lastNames))],
			DepartmentID: strconv.FormatInt(d.DepartmentID, 10),
		})
		if err != nil {
			return fmt.Errorf("failed to insert employees: %w", err)
		}
	}

	logger.InfoLog(ctx, "seeded %d companies, %d customers, %d departments, %d employees in %v",
		sizes.Companies, sizes.Customers, sizes.Departments, sizes.Employees, time.Since(start))
	return nil
}

func (ds *DataSeeder) batchInsertNames(ctx context.Context, table string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	tx, err := ds.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, _ := builder.NewSQLBuilder().Insert(table, "name").Values("").Build()
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, name := range names {
		if _, err := stmt.ExecContext(ctx, name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ClearData deletes every row, children before parents.
func (ds *DataSeeder) ClearData(ctx context.Context) error {
	for _, table := range tables {
		query, args := builder.NewSQLBuilder().Delete(table).Build()
		if _, err := ds.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete %s: %w", table, err)
		}
	}
	logger.InfoLog(ctx, "cleared all tables")
	return nil
}

// Counts returns the number of rows in each table.
func (ds *DataSeeder) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		rows, err := ds.store.Query(ctx, "count "+table, "SELECT COUNT(*) AS n FROM "+table)
		if err != nil {
			return nil, err
		}
		switch n := rows[0]["n"].(type) {
		case int64:
			counts[table] = n
		default:
			return nil, fmt.Errorf("count %s: unexpected %T", table, n)
		}
	}
	return counts, nil
}

// pickNames returns count names, suffixing repeats once the list runs out.
func pickNames(names []string, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = names[i%len(names)]
		if round := i / len(names); round > 0 {
			out[i] += " " + strconv.Itoa(round+1)
		}
	}
	return out
}
