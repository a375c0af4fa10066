//go:build windows

package tray

import (
	"context"
	_ "embed"
	"sync"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"github.com/username/holiday-calendar/internal/browser"
	"github.com/username/holiday-calendar/internal/render"
	"go.uber.org/zap"
)

//go:embed icon.ico
var iconData []byte

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// App is the system tray display surface
type App struct {
	navigator *browser.Navigator
	logger    *zap.Logger

	mu    sync.Mutex
	state browser.State

	quit chan struct{}
}

// New creates a tray app showing the current month
func New(ctx context.Context, navigator *browser.Navigator, logger *zap.Logger) (*App, error) {
	state, err := navigator.Load(ctx, navigator.Today())
	if err != nil {
		return nil, err
	}

	return &App{
		navigator: navigator,
		logger:    logger,
		state:     state,
		quit:      make(chan struct{}),
	}, nil
}

// Run starts the tray loop (blocks until Quit)
func (a *App) Run() {
	systray.Run(a.onReady, a.onExit)
}

func (a *App) onReady() {
	systray.SetIcon(iconData)

	mPrev := systray.AddMenuItem("Previous month", "Show the previous month")
	mNext := systray.AddMenuItem("Next month", "Show the next month")
	mToday := systray.AddMenuItem("Today", "Jump to the current month")
	systray.AddSeparator()
	mDetails := systray.AddMenuItem("Details", "Show the days off of this month")
	mErr := systray.AddMenuItem(render.FetchErrorText, "")
	mErr.Disable()
	mErr.Hide()
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	a.refresh(mErr)

	go func() {
		for {
			select {
			case <-mPrev.ClickedCh:
				a.navigate(browser.PreviousMonth, mErr)
			case <-mNext.ClickedCh:
				a.navigate(browser.NextMonth, mErr)
			case <-mToday.ClickedCh:
				a.navigate(browser.CurrentMonth, mErr)
			case <-mDetails.ClickedCh:
				a.showDetails()
			case <-mQuit.ClickedCh:
				a.logger.Info("Quit clicked from tray")
				systray.Quit()
				return
			case <-a.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (a *App) navigate(intent browser.Intent, mErr *systray.MenuItem) {
	a.logger.Debug("Tray navigation", zap.String("intent", intent.String()))

	a.mu.Lock()
	a.state = a.navigator.Apply(context.Background(), a.state, intent)
	a.mu.Unlock()

	a.refresh(mErr)
}

func (a *App) refresh(mErr *systray.MenuItem) {
	a.mu.Lock()
	state := a.state
	a.mu.Unlock()

	view, err := a.navigator.View(state)
	if err != nil {
		a.logger.Error("Failed to build month view", zap.Error(err))
		return
	}

	systray.SetTitle(Title(view))
	systray.SetTooltip(Tooltip(view, state.Err))
	if state.Err != nil {
		mErr.Show()
	} else {
		mErr.Hide()
	}
}

func (a *App) showDetails() {
	a.mu.Lock()
	state := a.state
	a.mu.Unlock()

	view, err := a.navigator.View(state)
	if err != nil {
		a.logger.Error("Failed to build month view", zap.Error(err))
		return
	}

	showMessageBox(Title(view), Tooltip(view, state.Err))
}

func (a *App) onExit() {
	a.logger.Info("System tray exited")
}

// Stop stops the tray loop
func (a *App) Stop() {
	close(a.quit)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
