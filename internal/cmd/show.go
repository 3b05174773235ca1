package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/termkey/termkey/internal/capture"
	"github.com/termkey/termkey/internal/display"
	"github.com/termkey/termkey/internal/keymap"
	"github.com/termkey/termkey/internal/log"
	"github.com/termkey/termkey/internal/osd"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Show is the default command: capture system input and display it centered
// on the terminal until interrupted.
type Show struct {
	Color  bool     `short:"c" help:"Enable colored output" env:"TERMKEY_COLOR"`
	Bg     string   `help:"Background color name" env:"TERMKEY_BG"`
	Fg     string   `help:"Foreground color name" env:"TERMKEY_FG"`
	Text   string   `help:"Color for printable characters in key names" env:"TERMKEY_TEXT"`
	Device []string `help:"Input device paths to capture (default: autodetect)"`
}

// Run is called by Kong when the show command is executed.
func (s *Show) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	colors, err := display.ParseColors(s.Color, s.Bg, s.Fg, s.Text)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	src, err := capture.Open(logger, rawLogger, s.Device...)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	session := osd.NewSession(keymap.SystemLayout(), display.NewPresenter(screen, colors), logger, osd.Options{
		CombineButtons:  true,
		CompressRepeats: true,
	})
	session.Banner("Termkey")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quit := make(chan struct{})
	defer close(quit)
	screenEvents := make(chan tcell.Event, 16)
	go screen.ChannelEvents(screenEvents, quit)

	logger.Info("Capturing input", "devices", s.Device)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-src.Events():
			if !ok {
				return errors.New("input capture stopped unexpectedly")
			}
			session.Handle(ev)
		case tev := <-screenEvents:
			switch t := tev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				session.Redraw()
			case *tcell.EventKey:
				if t.Key() == tcell.KeyEscape || t.Key() == tcell.KeyCtrlC {
					return nil
				}
			}
		}
	}
}
