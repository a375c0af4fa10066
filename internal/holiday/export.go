package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/username/holiday-calendar/internal/calendar"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultExportWorkers bounds concurrent fetches of Export
const DefaultExportWorkers = 4

// Store writes ds as the file Fetch reads for year. The file is replaced
// atomically.
func (fp *FileProvider) Store(year int, ds *calendar.Dataset) error {
	if err := os.MkdirAll(fp.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	tmp, err := os.CreateTemp(fp.dir, filepath.Base(fp.Path(year))+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	return os.Rename(tmp.Name(), fp.Path(year))
}

// Export fetches each year from src and stores it in dst. At most workers
// fetches run at once; the first failure cancels the rest. done, if set,
// is called once per stored year and may be called concurrently.
func Export(ctx context.Context, src Provider, dst *FileProvider, years []int, workers int, done func(year int)) error {
	if workers <= 0 {
		workers = DefaultExportWorkers
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, year := range years {
		year := year
		g.Go(func() error {
			ds, err := src.Fetch(gCtx, year)
			if err != nil {
				return err
			}
			if err := dst.Store(year, ds); err != nil {
				return fmt.Errorf("failed to store %d: %w", year, err)
			}

			dst.logger.Info("Holiday dataset exported",
				zap.Int("year", year),
				zap.String("file", dst.Path(year)),
				zap.Int("records", ds.Len()))

			if done != nil {
				done(year)
			}
			return nil
		})
	}

	return g.Wait()
}
