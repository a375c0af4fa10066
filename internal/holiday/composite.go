package holiday

import (
	"context"

	"github.com/username/holiday-calendar/internal/calendar"
	"go.uber.org/zap"
)

// CompositeProvider implements Provider with fallback strategy
// Primary: TimorProvider (API)
// Fallback: FileProvider (local files)
type CompositeProvider struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewCompositeProvider creates a new CompositeProvider
func NewCompositeProvider(primary, fallback Provider, logger *zap.Logger) *CompositeProvider {
	return &CompositeProvider{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Fetch tries the primary provider first. When both fail the primary
// error is returned.
func (cp *CompositeProvider) Fetch(ctx context.Context, year int) (*calendar.Dataset, error) {
	ds, err := cp.primary.Fetch(ctx, year)
	if err == nil {
		return ds, nil
	}

	cp.logger.Warn("Primary provider failed, falling back",
		zap.Int("year", year),
		zap.Error(err))

	ds, fallbackErr := cp.fallback.Fetch(ctx, year)
	if fallbackErr != nil {
		cp.logger.Warn("Fallback provider failed",
			zap.Int("year", year),
			zap.Error(fallbackErr))
		return nil, err
	}

	return ds, nil
}
