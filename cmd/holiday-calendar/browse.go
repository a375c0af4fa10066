package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/browser"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/render"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	helpLine    = " n/→ next  p/← previous  t today  d theme  g legend  q quit"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through months interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				return fmt.Errorf("browse needs an interactive terminal, use show instead")
			}

			log := interactiveLogger(cfg)
			provider, err := newProvider(cfg, log)
			if err != nil {
				return err
			}
			nav := browser.NewNavigator(provider, log)

			state, err := nav.Load(cmd.Context(), nav.Today())
			if err != nil {
				return err
			}

			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("failed to enter raw mode: %w", err)
			}
			defer term.Restore(fd, oldState)

			b := &browseSession{
				navigator: nav,
				logger:    log,
				out:       crlfWriter{w: os.Stdout},
				state:     state,
				opts: render.Options{
					Color:  useColor(cfg.Display.Color, os.Stdout),
					Theme:  render.Theme(cfg.Display.Theme),
					Legend: true,
				},
			}
			return b.run(cmd.Context(), readKeys(os.Stdin))
		},
	}
}

// browseSession is the terminal display surface
type browseSession struct {
	navigator *browser.Navigator
	logger    *zap.Logger
	out       io.Writer
	state     browser.State
	opts      render.Options
}

func (b *browseSession) run(ctx context.Context, keys <-chan []byte) error {
	if err := b.draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case buf, ok := <-keys:
			if !ok {
				return nil
			}
			quit, err := b.handle(ctx, parseKeys(buf))
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprint(b.out, clearScreen)
				return nil
			}
		}
	}
}

// handle applies commands in order and redraws once
func (b *browseSession) handle(ctx context.Context, cmds []command) (bool, error) {
	if len(cmds) == 0 {
		return false, nil
	}

	for _, c := range cmds {
		if intent, ok := c.intent(); ok {
			b.state = b.navigator.Apply(ctx, b.state, intent)
			continue
		}
		switch c {
		case cmdTheme:
			b.opts.Theme = b.opts.Theme.Toggle()
		case cmdLegend:
			b.opts.Legend = !b.opts.Legend
		case cmdQuit:
			return true, nil
		}
	}

	return false, b.draw()
}

func (b *browseSession) draw() error {
	view, err := b.navigator.View(b.state)
	if err != nil {
		return err
	}

	opts := b.opts
	opts.Err = b.state.Err

	fmt.Fprint(b.out, clearScreen)
	if err := render.Month(b.out, view, opts); err != nil {
		return err
	}
	_, err = fmt.Fprintf(b.out, "\n%s\n", helpLine)
	return err
}

// readKeys streams raw input chunks until r fails
func readKeys(r io.Reader) <-chan []byte {
	keys := make(chan []byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 16)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				keys <- chunk
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}
