package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/browser"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/tray"
	"go.uber.org/zap"
)

func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Run in the system tray (Windows only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runTray(cmd.Context(), cfg)
		},
	}
}

// runTray blocks until the tray app quits
func runTray(ctx context.Context, cfg *config.Config) error {
	provider, err := newProvider(cfg, logger)
	if err != nil {
		return err
	}
	nav := browser.NewNavigator(provider, logger)

	app, err := tray.New(ctx, nav, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting system tray", zap.String("month", nav.Today().String()))
	app.Run()
	return nil
}
