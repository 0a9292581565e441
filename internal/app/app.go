// Package app wires the pattern validator, the highlight engine and the
// two text areas into the interactive event loop.
package app

import (
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dshills/regect/internal/config"
	"github.com/dshills/regect/internal/pattern"
	"github.com/dshills/regect/internal/renderer"
	"github.com/dshills/regect/internal/renderer/backend"
	"github.com/dshills/regect/internal/renderer/highlight"
	"github.com/dshills/regect/internal/textarea"
)

// Application owns the editing state and drives the event loop.
//
// All state except the running flag and the done channel belongs to the
// goroutine calling Run.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	theme   *highlight.Theme
	logger  *Logger
	logSink io.Closer

	validator *pattern.Validator
	pattern   *textarea.TextArea
	body      *textarea.TextArea
	mode      Mode
	runs      []highlight.Run

	// pasting is set between the start and end of a bracketed paste.
	pasting bool

	backend  backend.Backend
	renderer *renderer.Renderer

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. When empty the
	// default locations are searched.
	ConfigPath string

	// Config is an already loaded configuration. It takes precedence
	// over ConfigPath.
	Config *config.Config

	// Body seeds the body text area.
	Body string

	// Logger overrides the logger built from the configuration.
	Logger *Logger
}

// New creates an application in pattern-edit mode with the initial
// pattern compiled and the body highlighted.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, _, err := config.Load(config.Options{
			Path:        opts.ConfigPath,
			SearchPaths: config.DefaultPaths(),
		})
		if err != nil {
			return nil, NewComponentError("config", "load", err)
		}
		cfg = loaded
	}

	theme, err := cfg.BuildTheme()
	if err != nil {
		return nil, NewComponentError("config", "theme", err)
	}

	app := &Application{
		config:    cfg,
		theme:     theme,
		validator: pattern.NewValidator(cfg.PatternOptions()),
		pattern:   textarea.NewSingleLine(),
		body:      textarea.New(),
		mode:      ModePatternEdit,
		done:      make(chan struct{}),
	}

	if opts.Logger != nil {
		app.logger = opts.Logger
	} else {
		app.logger, app.logSink = NewFileLogger(cfg)
	}

	app.pattern.SetText(cfg.Pattern.Initial)
	app.body.SetText(opts.Body)
	// Start reading a seeded body from the top
	app.body.MoveBy(-app.body.LineCount())
	app.body.Home()

	app.updatePattern()
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend and processes events until the user quits
// or Shutdown is called. The terminal is restored on every return path;
// a panic in the loop is returned as a *RecoveredPanicError.
func (app *Application) Run() (err error) {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()

	if b == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			b.Shutdown()
			app.logger.Error("recovered panic: %v", r)
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	app.renderer = renderer.New(b, app.theme)

	opts := app.validator.Options()
	app.logger.WithFields(map[string]any{
		"engine":      opts.Engine,
		"ignore_case": opts.CaseInsensitive,
	}).Info("started")

	return app.eventLoop()
}

// Shutdown stops the event loop. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)

		app.mu.Lock()
		b := app.backend
		app.mu.Unlock()

		// Wake a PollEvent blocked in the loop
		if b != nil && app.running.Load() {
			b.PostEvent(backend.Event{Type: backend.EventNone})
		}

		app.logger.Info("shutdown")
		if app.logSink != nil {
			_ = app.logSink.Close()
		}
	})
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Mode returns the current mode.
func (app *Application) Mode() Mode {
	return app.mode
}

// Pattern returns the current pattern text.
func (app *Application) Pattern() string {
	return app.pattern.Text()
}

// Body returns the current body text.
func (app *Application) Body() string {
	return app.body.Text()
}

// Runs returns the highlighted body as last computed.
func (app *Application) Runs() []highlight.Run {
	return app.runs
}

// Validator returns the pattern validator.
func (app *Application) Validator() *pattern.Validator {
	return app.validator
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
