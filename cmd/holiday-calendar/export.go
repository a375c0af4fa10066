package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/holiday"
	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

func exportCmd() *cobra.Command {
	var from, to, workers int
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download yearly holiday datasets for the file provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			years, err := yearRange(from, to)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Provider.DataDir
			}
			if dir == "" {
				return fmt.Errorf("no target directory: pass --dir or set provider.data_dir")
			}

			// Export from the configured source only, never from the target itself
			exportCfg := *cfg
			exportCfg.Provider.DataDir = ""
			if exportCfg.Provider.Type == "file" {
				return fmt.Errorf("export needs a timor or builtin provider, got file")
			}
			src, err := newProvider(&exportCfg, logger)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(years),
				progressbar.OptionSetDescription("Fetching holidays..."),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(20),
			)
			defer bar.Close()

			dst := holiday.NewFileProvider(dir, logger)
			if err := holiday.Export(cmd.Context(), src, dst, years, workers, func(year int) {
				bar.Add(1)
			}); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			logger.Info("Export completed",
				zap.String("dir", dir),
				zap.Int("years", len(years)))
			fmt.Fprintf(os.Stderr, "\nExported %d year(s) to %s\n", len(years), dir)
			return nil
		},
	}

	current := dateutil.Today().Year()
	cmd.Flags().IntVar(&from, "from", current, "First year to export")
	cmd.Flags().IntVar(&to, "to", current, "Last year to export")
	cmd.Flags().IntVar(&workers, "workers", holiday.DefaultExportWorkers, "Concurrent downloads")
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default: provider.data_dir)")

	return cmd
}

const maxExportYears = 100

// yearRange returns the years from..to inclusive
func yearRange(from, to int) ([]int, error) {
	if to < from {
		return nil, fmt.Errorf("invalid range: --to %d is before --from %d", to, from)
	}
	if to-from >= maxExportYears {
		return nil, fmt.Errorf("invalid range: at most %d years per export", maxExportYears)
	}

	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years, nil
}
