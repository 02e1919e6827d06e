package editor

import (
	"fmt"

	"github.com/dshills/padvi/internal/command"
	"github.com/dshills/padvi/internal/input/mode"
)

// commandUpdate redraws the command line; the status refresh does the work.
func (e *Editor) commandUpdate(_ *mode.Action) error {
	return nil
}

// commandReject notes input dropped because the command line is full.
func (e *Editor) commandReject(_ *mode.Action) error {
	e.log.Debug("command line full", "capacity", e.modes.Command().Capacity())
	return nil
}

// commandExecute runs a submitted command line and returns to Normal mode.
func (e *Editor) commandExecute(a *mode.Action) error {
	text := a.String("command")
	cmd := command.Parse(text, e.doc.Count(), command.Options{Strict: e.opts.StrictCommands})
	e.log.Debug("command", "text", text, "kind", cmd.Kind.String())

	if err := e.modes.Switch(mode.ModeNormal); err != nil {
		return err
	}

	switch cmd.Kind {
	case command.Save:
		return e.Save()
	case command.Jump:
		e.cur.GoTo(cmd.Row)
	case command.SaveQuit:
		if err := e.Save(); err != nil {
			return err
		}
		return ErrQuit
	case command.Quit:
		return ErrQuit
	case command.Unknown:
		e.message = fmt.Sprintf("not an editor command: %s", text)
	}
	return nil
}

// Save writes the document to its path.
func (e *Editor) Save() error {
	path := e.doc.Path()
	if path == "" {
		return ErrNoFileName
	}

	n, err := e.store.Save(path, e.doc.Lines())
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	e.doc.SetModified(false)
	e.message = fmt.Sprintf("%q %dL, %dB written", path, e.doc.Count(), n)
	e.log.Info("saved", "path", path, "lines", e.doc.Count(), "bytes", n)
	return nil
}
