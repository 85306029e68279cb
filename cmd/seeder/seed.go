package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/locvowork/crm_admin/internal/seeder"
)

var (
	seedPreset string
	seedRandom int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert random companies, customers, departments and employees",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedPreset, "preset", string(seeder.PresetSmall), "Data preset: small, medium, large")
	seedCmd.Flags().Int64Var(&seedRandom, "seed", 0, "Random seed (0 uses the current time)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	sizes, err := seeder.GetPresetConfig(seeder.SeedPreset(seedPreset))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if seedRandom == 0 {
		seedRandom = time.Now().UnixNano()
	}
	cmd.Printf("Seeding preset %s (seed %d)\n", seedPreset, seedRandom)
	ds := seeder.NewDataSeeder(db, seedRandom)
	if err := ds.SeedData(ctx, sizes); err != nil {
		return err
	}
	return printCounts(cmd, ds)
}

func printCounts(cmd *cobra.Command, ds *seeder.DataSeeder) error {
	counts, err := ds.Counts(cmd.Context())
	if err != nil {
		return err
	}
	for _, table := range []string{"Companies", "Customers", "Departments", "Employees"} {
		cmd.Printf("  %-12s %d\n", table, counts[table])
	}
	return nil
}
