package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/config"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/logging"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "kundlivision",
		Short:         "KundliVision backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// sem subcomando, sobe o servidor
		RunE: serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newPromoteCmd())

	return root
}

// runtime agrupa o que todos os comandos precisam: configuração, logger e banco
type runtime struct {
	cfg    *config.Config
	logger ports.Logger
	db     *gorm.DB
}

func bootstrap() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.IsDevelopment(), logger)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logger, db: db}, nil
}

func (r *runtime) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
