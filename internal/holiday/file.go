package holiday

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/username/holiday-calendar/internal/calendar"
	"go.uber.org/zap"
)

// FileProvider implements Provider using local JSON files named {year}.json.
// Files use the same shape as the timor.tech API.
type FileProvider struct {
	dir    string
	logger *zap.Logger
}

// NewFileProvider creates a new FileProvider instance
func NewFileProvider(dir string, logger *zap.Logger) *FileProvider {
	return &FileProvider{
		dir:    dir,
		logger: logger,
	}
}

// Path returns the file read for year
func (fp *FileProvider) Path(year int) string {
	return filepath.Join(fp.dir, strconv.Itoa(year)+".json")
}

// Fetch reads the dataset of the given year from disk
func (fp *FileProvider) Fetch(ctx context.Context, year int) (*calendar.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError(year, err)
	}

	path := fp.Path(year)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, transportError(year, fmt.Errorf("failed to read holiday file: %w", err))
	}

	ds, err := decodeDataset(year, data)
	if err != nil {
		return nil, err
	}

	fp.logger.Info("Holiday file loaded",
		zap.String("file", path),
		zap.Int("year", year),
		zap.Int("records", ds.Len()))

	return ds, nil
}
