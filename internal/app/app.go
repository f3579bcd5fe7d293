// Package app runs the clock: it owns the display backend, drives the
// frame loop, and restores the terminal on every exit path.
package app

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/dshills/asciiclock/internal/clock"
	"github.com/dshills/asciiclock/internal/clockface"
	"github.com/dshills/asciiclock/internal/renderer/backend"
	"github.com/dshills/asciiclock/internal/renderer/core"
)

// DefaultFrameInterval is the input poll budget between frames, close to
// a 60Hz refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// QuitRune is the key that ends the program.
const QuitRune = 'q'

// MinColors is the smallest palette that can show the face colors.
const MinColors = 8

// debugFrameEvery spaces out per-frame debug lines, about ten seconds at
// the default interval.
const debugFrameEvery = 600

// Options configures the application.
type Options struct {
	// Color enables per-category colors.
	Color bool

	// FrameInterval bounds the wait for input between frames.
	// Zero means DefaultFrameInterval.
	FrameInterval time.Duration

	// Clock supplies the time shown on the face. Nil means clock.System.
	Clock clock.Clock

	// Logger receives diagnostics. Nil means NullLogger.
	Logger *Logger
}

// Application draws the clock face until asked to quit.
type Application struct {
	opts    Options
	backend backend.Backend
	logger  *Logger
	color   bool

	frames atomic.Uint64
}

// New creates a new Application with the given options.
func New(opts Options) *Application {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	return &Application{
		opts:   opts,
		logger: opts.Logger.WithComponent("app"),
	}
}

// SetBackend sets the display backend. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// FrameCount returns the number of frames presented so far.
func (app *Application) FrameCount() uint64 {
	return app.frames.Load()
}

// Run initializes the backend and draws frames until the quit key is
// pressed or ctx is done. It returns ErrQuit on a quit key press and the
// context error on cancellation. The backend is shut down before Run
// returns, including when a frame panics.
func (app *Application) Run(ctx context.Context) (err error) {
	if app.backend == nil {
		return ErrNoBackend
	}

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	app.color = app.opts.Color
	if n := app.backend.Colors(); app.color && n < MinColors {
		app.logger.Warn("terminal reports %d colors, drawing without color", n)
		app.color = false
	}
	app.logger.Info("terminal initialized color=%v interval=%v", app.color, app.opts.FrameInterval)

	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
		app.backend.Shutdown()
		app.logger.Info("terminal restored after %d frames", app.FrameCount())
	}()

	app.backend.HideCursor()
	app.backend.Clear()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		app.drawFrame()

		if err := app.waitInput(ctx); err != nil {
			return err
		}
	}
}

// drawFrame renders the current instant over the full backend area.
func (app *Application) drawFrame() {
	trace := app.logger.Enabled(LogLevelDebug)
	var start time.Time
	if trace {
		start = time.Now()
	}

	width, height := app.backend.Size()
	rows := clockface.Render(width, height, app.opts.Clock.Now(), app.color)
	Paint(app.backend, core.RectFromSize(0, 0, height, width), rows)
	app.backend.Show()

	n := app.frames.Add(1)
	if trace && n%debugFrameEvery == 1 {
		app.logger.Debug("frame %d %dx%d drawn in %v", n, width, height, time.Since(start))
	}
}

// waitInput polls for one frame interval and handles at most one event.
func (app *Application) waitInput(ctx context.Context) error {
	pollCtx, cancel := context.WithTimeout(ctx, app.opts.FrameInterval)
	defer cancel()

	ev, ok := app.backend.PollEvent(pollCtx)
	if !ok {
		return nil
	}
	return app.handleEvent(ev)
}

// handleEvent reacts to a backend event. Returns ErrQuit if the
// application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		if ev.IsRune(QuitRune) {
			app.logger.Info("quit key pressed")
			return ErrQuit
		}
	case backend.EventResize:
		app.logger.Debug("resized to %dx%d", ev.Width, ev.Height)
		app.backend.Sync()
	}
	return nil
}
