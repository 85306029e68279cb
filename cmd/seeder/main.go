package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/crm_admin/internal/config"
	"github.com/locvowork/crm_admin/internal/database"
	"github.com/locvowork/crm_admin/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Fill or empty the development database",
	Long: `Fill or empty the development database used by the admin tool.

The connection is configured the same way as the server (.env and DB_* variables).
The schema must already exist.

Examples:
  seeder seed --preset small
  seeder clear --yes`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB loads config and connects like the server does.
func openDB(ctx context.Context) (*sql.DB, error) {
	if err := config.LoadEnvConfig(); err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig
	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)

	return database.Open(ctx, database.ConfigFromEnv(cfg))
}
