// Package app wires configuration, logging, the terminal backend and the
// editor together and runs the event loop.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/padvi/internal/config"
	"github.com/dshills/padvi/internal/editor"
	"github.com/dshills/padvi/internal/fileio"
	"github.com/dshills/padvi/internal/logging"
	"github.com/dshills/padvi/internal/renderer/backend"
)

// Application owns one editing session.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	config  *config.Config
	loader  *config.Loader
	watcher *config.Watcher
	logger  *logging.Logger
	log     *logging.Logger
	store   *fileio.Store

	// Editor components
	backend backend.Backend
	editor  *editor.Editor

	// State
	running      atomic.Bool
	shutdownOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty selects the first
	// config file found in the user configuration directory.
	ConfigPath string

	// File is the document to edit.
	File string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogFile overrides the configured log file when set.
	LogFile string

	// NoAutoIndent disables auto-indent regardless of configuration.
	NoAutoIndent bool

	// Strict reports unknown commands instead of quitting.
	Strict bool

	// Watch reloads the configuration file when it changes.
	Watch bool

	// FS replaces the operating system file system, mainly for tests.
	FS fileio.FileSystem

	// LogOutput replaces the rotating log file, mainly for tests.
	LogOutput io.Writer

	// Env looks up environment variables. Nil uses the process environment.
	Env func(string) (string, bool)
}

// New loads the configuration and creates the logger. The backend is
// attached separately with SetBackend.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	var loaderOpts []config.LoaderOption
	if app.opts.FS != nil {
		loaderOpts = append(loaderOpts, config.WithFS(app.opts.FS))
	}
	if app.opts.Env != nil {
		loaderOpts = append(loaderOpts, config.WithEnv(app.opts.Env))
	}
	app.loader = config.NewLoader(loaderOpts...)

	if app.opts.ConfigPath == "" {
		app.opts.ConfigPath = config.DefaultPath()
	}
	cfg, err := app.loader.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := app.applyOverrides(cfg); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logging
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger, err = logging.New(logging.Options{
		Level:      level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Output:     app.opts.LogOutput,
	})
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.log = app.logger.WithComponent("app")
	app.log.Info("starting", "config", app.opts.ConfigPath, "settings", cfg.String())

	// 3. Storage
	app.store = fileio.NewStore(app.opts.FS)
	return nil
}

// applyOverrides lays command-line settings over a loaded config.
func (app *Application) applyOverrides(cfg *config.Config) error {
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if app.opts.NoAutoIndent {
		cfg.Editor.AutoIndent = false
	}
	if app.opts.Strict {
		cfg.Editor.StrictCommands = true
	}
	return cfg.Validate()
}

// SetBackend sets the display backend. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run opens the file and processes events until the session ends.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	be := app.backend
	app.mu.Unlock()
	if be == nil {
		return &InitError{Component: "backend", Err: ErrComponentNotAvailable}
	}

	if err := be.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.Shutdown()

	ed := editor.New(be, app.store, editor.OptionsFromConfig(app.config), app.logger)
	width, height := be.Size()
	ed.Resize(width, height)
	if err := ed.Open(app.opts.File); err != nil {
		return NewOperationError("open", app.opts.File, err)
	}

	app.mu.Lock()
	app.editor = ed
	app.mu.Unlock()

	if app.opts.Watch {
		app.startWatcher(be)
	}

	return app.eventLoop(be, ed)
}

// IsRunning reports whether Run is in progress.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Editor returns the editor, or nil before Run.
func (app *Application) Editor() *editor.Editor {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.editor
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.log
}

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
