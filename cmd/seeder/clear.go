package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/locvowork/crm_admin/internal/seeder"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every row from all four tables",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		cmd.Print("This will delete all data. Continue? (yes/no): ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	ds := seeder.NewDataSeeder(db, 0)
	if err := ds.ClearData(ctx); err != nil {
		return err
	}
	return printCounts(cmd, ds)
}
