package main

import (
	"context"
	"errors"
	"os"

	"github.com/locvowork/crm_admin/internal/bootstrap"
	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		var connErr *domain.StartupConnectionError
		if errors.As(err, &connErr) {
			logger.ErrorLog(ctx, "Store unreachable, not starting: %v", err)
		} else {
			logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		}
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.ErrorLog(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
}
