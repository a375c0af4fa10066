//go:build !windows

package tray

import (
	"context"
	"errors"
	"testing"

	"github.com/username/holiday-calendar/internal/browser"
	"go.uber.org/zap"
)

func TestNew_Unsupported(t *testing.T) {
	nav := browser.NewNavigator(nil, zap.NewNop())
	if _, err := New(context.Background(), nav, zap.NewNop()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("New() error = %v, want ErrUnsupported", err)
	}
}
