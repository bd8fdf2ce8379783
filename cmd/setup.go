package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/roster/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file from the embedded template when missing and initializes the students table.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := r.configPath

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			r.logger.Info("config file not found, creating from template", "path", configPath)
			if err := shared.CreateConfigFile(configPath); err != nil {
				r.logger.Warn("failed to create config file, using defaults", "error", err)
			} else {
				r.logger.Info("config file created", "path", configPath)
				r.writePlain("✓ Config file created: %s\n", configPath)
			}
		}
	}

	r.logger.Info("initializing database", "path", r.config.Database.Path)

	if _, err := r.openStore(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	r.writePlain("✓ Database ready: %s\n", r.config.Database.Path)
	return nil
}
