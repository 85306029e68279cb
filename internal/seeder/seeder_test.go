package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/crm_admin/internal/database/dbtest"
)

func counts(t *testing.T, ds *DataSeeder) map[string]int64 {
	t.Helper()
	got, err := ds.Counts(context.Background())
	require.NoError(t, err)
	return got
}

func TestGetPresetConfig(t *testing.T) {
	small, err := GetPresetConfig(PresetSmall)
	require.NoError(t, err)
	large, err := GetPresetConfig(PresetLarge)
	require.NoError(t, err)
	assert.Less(t, small.Customers, large.Customers)

	_, err = GetPresetConfig("xlarge")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestSeedThenClear(t *testing.T) {
	ctx := context.Background()
	ds := NewDataSeeder(dbtest.Open(t), 42)
	require.NoError(t, ds.ClearData(ctx))

	sizes := Sizes{Companies: 12, Customers: 30, Departments: 3, Employees: 7}
	require.NoError(t, ds.SeedData(ctx, sizes))

	assert.Equal(t, map[string]int64{"Companies": 12, "Customers": 30, "Departments": 3, "Employees": 7}, counts(t, ds))

	var orphans int
	require.NoError(t, ds.db.QueryRow(
		"SELECT COUNT(*) FROM Customers c LEFT JOIN Companies co ON c.company_id = co.company_id WHERE co.company_id IS NULL",
	).Scan(&orphans))
	assert.Zero(t, orphans)

	require.NoError(t, ds.ClearData(ctx))
	for table, n := range counts(t, ds) {
		assert.Zero(t, n, table)
	}
}

func TestSeedData_NeedsParents(t *testing.T) {
	ctx := context.Background()
	ds := NewDataSeeder(dbtest.Open(t), 1)
	require.NoError(t, ds.ClearData(ctx))

	err := ds.SeedData(ctx, Sizes{Customers: 1})
	assert.ErrorContains(t, err, "no companies or departments")
}

func TestPickNames(t *testing.T) {
	got := pickNames([]string{"a", "b"}, 5)
	assert.Equal(t, []string{"a", "b", "a 2", "b 2", "a 3"}, got)
}
