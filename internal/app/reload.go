package app

import (
	"github.com/dshills/padvi/internal/config"
	"github.com/dshills/padvi/internal/editor"
	"github.com/dshills/padvi/internal/logging"
	"github.com/dshills/padvi/internal/renderer/backend"
)

// reloadRequest wakes the event loop when a config update is queued.
type reloadRequest struct{}

// startWatcher begins watching the config file. Failure to watch is
// logged and otherwise ignored.
func (app *Application) startWatcher(be backend.Backend) {
	path := app.opts.ConfigPath
	if path == "" {
		app.log.Debug("no config file to watch")
		return
	}

	w, err := config.NewWatcher(path, app.loader,
		config.WithNotify(func() { be.Interrupt(reloadRequest{}) }))
	if err != nil {
		app.log.Warn("config watch failed", "path", path, "error", err)
		return
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	app.log.Debug("watching config", "path", w.Path())
}

// applyUpdates drains queued config updates on the event loop.
func (app *Application) applyUpdates(ed *editor.Editor) {
	app.mu.RLock()
	w := app.watcher
	app.mu.RUnlock()
	if w == nil {
		return
	}

	for {
		select {
		case u := <-w.Updates():
			app.applyConfig(ed, u)
		default:
			return
		}
	}
}

// applyConfig switches the running session to a reloaded config. A
// failed reload keeps the current settings.
func (app *Application) applyConfig(ed *editor.Editor, u config.Update) {
	if u.Err == nil {
		u.Err = app.applyOverrides(u.Config)
	}
	if u.Err != nil {
		app.log.Warn("config reload failed", "error", u.Err)
		ed.SetMessage("config: " + u.Err.Error())
		return
	}

	cfg := u.Config
	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	ed.SetOptions(editor.OptionsFromConfig(cfg))
	if level, err := logging.ParseLevel(cfg.Log.Level); err == nil {
		app.log.SetLevel(level)
	}
	app.log.Info("config reloaded", "settings", cfg.String())
	ed.SetMessage("config reloaded")
}
