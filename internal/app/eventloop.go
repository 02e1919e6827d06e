package app

import (
	"errors"

	"github.com/dshills/padvi/internal/editor"
	"github.com/dshills/padvi/internal/renderer/backend"
)

// eventLoop routes backend events to the editor until the session ends.
// It returns nil on a quit command or when the backend closes.
func (app *Application) eventLoop(be backend.Backend, ed *editor.Editor) error {
	for {
		ev := be.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if err := ed.HandleKey(ev.Key); errors.Is(err, ErrQuit) {
				if ed.IsModified() {
					app.log.Warn("quit with unsaved changes", "path", ed.FilePath())
				}
				app.log.Info("quit")
				return nil
			}

		case backend.EventResize:
			app.log.Debug("resize", "width", ev.Width, "height", ev.Height)
			ed.Resize(ev.Width, ev.Height)

		case backend.EventInterrupt:
			app.handleInterrupt(ed, ev.Data)

		case backend.EventClosed:
			app.log.Info("backend closed")
			return nil
		}
	}
}

// handleInterrupt processes a wake-up posted from another goroutine.
func (app *Application) handleInterrupt(ed *editor.Editor, data any) {
	switch data.(type) {
	case reloadRequest:
		app.applyUpdates(ed)
	default:
		app.log.Debug("unknown interrupt", "data", data)
	}
}
