package app

import (
	"os"
	"os/signal"
	"syscall"
)

// Shutdown stops the watcher and releases the backend, which ends a
// running event loop. It is safe to call more than once and from any
// goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.mu.Lock()
		w, be := app.watcher, app.backend
		app.mu.Unlock()

		if w != nil {
			if err := w.Close(); err != nil {
				app.log.Warn("closing config watcher", "error", err)
			}
		}
		if be != nil {
			be.Shutdown()
		}
		app.log.Info("shutdown")
	})
}

// Close flushes and closes the log. Call it after Run has returned.
func (app *Application) Close() error {
	return app.logger.Close()
}

// HandleSignals shuts the application down on SIGINT or SIGTERM. The
// returned function stops listening.
func (app *Application) HandleSignals() (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-signals:
			app.log.Info("signal received", "signal", sig.String())
			app.Shutdown()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
