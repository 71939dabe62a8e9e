package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase writes a config file from the template when none exists, then creates the schema.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err != nil {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err := shared.LoadConfig(configPath); err == nil {
				config.ApplyEnv()
				r.config = config
			} else {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
			}
		}
	}

	if err := r.close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	r.logger.Info("initializing database", "path", r.dbPath())
	if _, err := r.open(); err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", r.dbPath())
	return r.writePlain("%s\n", formatter.Styles().Success("Database ready at "+r.dbPath()))
}

// RollbackDatabase undoes the most recently applied migration.
func (r *Runner) RollbackDatabase(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.open(); err != nil {
		return err
	}

	if err := shared.RollbackMigration(r.db); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	r.logger.Info("rolled back latest migration", "path", r.dbPath())
	return r.writePlain("%s\n", formatter.Styles().Success("Rolled back latest migration"))
}

func (r *Runner) dbPath() string {
	if r.config == nil {
		return shared.DefaultConfig().Database.Path
	}
	return r.config.Database.Path
}
