package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/browser"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/render"
	"golang.org/x/term"
)

func showCmd() *cobra.Command {
	var year, month int
	var legend bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one month and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ym := calendar.YearMonthOf(time.Now())
			if cmd.Flags().Changed("year") {
				ym.Year = year
			}
			if cmd.Flags().Changed("month") {
				ym, err = calendar.NewYearMonth(ym.Year, time.Month(month))
				if err != nil {
					return err
				}
			}

			return runShow(cmd.Context(), cfg, ym, legend)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month to show, 1-12 (default: current)")
	cmd.Flags().BoolVar(&legend, "legend", true, "List holiday and workday names below the grid")

	return cmd
}

// runShow prints ym to stdout
func runShow(ctx context.Context, cfg *config.Config, ym calendar.YearMonth, legend bool) error {
	provider, err := newProvider(cfg, logger)
	if err != nil {
		return err
	}
	nav := browser.NewNavigator(provider, logger)

	state, err := nav.Load(ctx, ym)
	if err != nil {
		return err
	}
	view, err := nav.View(state)
	if err != nil {
		return err
	}

	return render.Month(os.Stdout, view, render.Options{
		Color:  useColor(cfg.Display.Color, os.Stdout),
		Theme:  render.Theme(cfg.Display.Theme),
		Legend: legend,
	})
}

// useColor resolves the display.color setting for f
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}
