package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/padvi/internal/engine/document"
	"github.com/dshills/padvi/internal/engine/line"
	"github.com/dshills/padvi/internal/input/mode"
	"github.com/dshills/padvi/internal/renderer/backend"
)

// drawRow sends the text of line h, shown at row, to the sink.
func (e *Editor) drawRow(row int, h document.Handle) {
	if l := e.doc.Line(h); l != nil {
		e.sink.DrawLine(row, l.View())
	}
}

// insertRow opens a sink row for the new line h.
func (e *Editor) insertRow(row int, h document.Handle) {
	e.sink.InsertLine(row)
	e.drawn++
	e.drawRow(row, h)
}

// deleteRow removes a sink row.
func (e *Editor) deleteRow(row int) {
	e.sink.DeleteLine(row)
	e.drawn--
}

// Redraw sends every line to the sink, dropping rows left over from a
// longer document, and refreshes the window.
func (e *Editor) Redraw() {
	e.doc.Each(func(row int, h document.Handle, _ *line.Line) bool {
		e.drawRow(row, h)
		return true
	})
	for e.drawn > e.doc.Count() {
		e.deleteRow(e.doc.Count())
	}
	if e.drawn < e.doc.Count() {
		e.drawn = e.doc.Count()
	}
	e.sink.ScrollTo(e.view.MinRow())
	e.refresh()
}

// refresh brings the window, cursor and status line up to date and
// flushes the sink.
func (e *Editor) refresh() {
	if e.view.Sync(e.cur.Row()) {
		e.sink.ScrollTo(e.view.MinRow())
	}
	e.sink.MoveCursor(e.cur.Row(), e.cur.Col())
	e.sink.ShowStatus(e.Status())
	e.sink.Show()
}

// Status returns the status line text: the command line in Command
// mode, a pending message, or the mode and position summary.
func (e *Editor) Status() string {
	if e.modes.IsMode(mode.ModeCommand) {
		return e.modes.Command().Line()
	}
	if e.message != "" {
		return e.message
	}

	name := "[No Name]"
	if p := e.doc.Path(); p != "" {
		name = filepath.Base(p)
	}
	if e.doc.Modified() {
		name += " [+]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- %s --  %s  %d,%d", e.modes.Current().DisplayName(), name, e.cur.Row()+1, e.cur.Col()+1)
	if p := e.modes.Normal().Pending(); p != 0 && e.modes.IsMode(mode.ModeNormal) {
		b.WriteString("  ")
		b.WriteRune(p)
	}
	return b.String()
}

// cursorStyle maps a mode cursor style to the backend's.
func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	case mode.CursorHidden:
		return backend.CursorHidden
	default:
		return backend.CursorBlock
	}
}
