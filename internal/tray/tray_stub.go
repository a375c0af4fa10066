//go:build !windows

package tray

import (
	"context"
	"errors"

	"github.com/username/holiday-calendar/internal/browser"
	"go.uber.org/zap"
)

// ErrUnsupported is returned by New on platforms without a tray
var ErrUnsupported = errors.New("system tray is only supported on Windows")

// App is the system tray display surface (stub for non-Windows platforms)
type App struct{}

// New is not supported on this platform
func New(ctx context.Context, navigator *browser.Navigator, logger *zap.Logger) (*App, error) {
	return nil, ErrUnsupported
}

// Run does nothing on non-Windows platforms
func (a *App) Run() {
}

// Stop does nothing on non-Windows platforms
func (a *App) Stop() {
}
