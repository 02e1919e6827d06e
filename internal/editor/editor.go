package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/padvi/internal/engine/cursor"
	"github.com/dshills/padvi/internal/engine/document"
	"github.com/dshills/padvi/internal/engine/line"
	"github.com/dshills/padvi/internal/fileio"
	"github.com/dshills/padvi/internal/input/key"
	"github.com/dshills/padvi/internal/input/mode"
	"github.com/dshills/padvi/internal/logging"
	"github.com/dshills/padvi/internal/renderer/backend"
	"github.com/dshills/padvi/internal/renderer/viewport"
)

// Default screen size used until the first Resize.
const (
	defaultScreenRows = 24
	defaultScreenCols = 80
)

// Editor is the state of one editing session.
type Editor struct {
	doc   *document.Document
	cur   *cursor.Cursor
	view  *viewport.Viewport
	modes *mode.Manager

	sink  backend.Sink
	store *fileio.Store
	log   *logging.Logger
	opts  Options

	// yank is the one-line register filled by dd and yy.
	yank    []byte
	hasYank bool

	// drawn is the number of rows the sink currently holds.
	drawn int

	// message is shown on the status line until the next key.
	message string
}

// New creates an editor with an empty document drawing to sink.
// A nil store selects the OS file system; a nil logger discards output.
func New(sink backend.Sink, store *fileio.Store, opts Options, log *logging.Logger) *Editor {
	if store == nil {
		store = fileio.NewStore(nil)
	}
	if log == nil {
		log = logging.Nop()
	}
	opts = opts.normalize()

	doc := document.New("")
	doc.SetLineLimit(opts.MaxLineBytes)
	e := &Editor{
		doc:   doc,
		cur:   cursor.New(doc),
		view:  viewport.FromScreen(defaultScreenRows, defaultScreenCols),
		modes: mode.NewDefaultManager(opts.CommandCapacity),
		sink:  sink,
		store: store,
		log:   log.WithComponent("editor"),
		opts:  opts,
	}
	e.modes.OnChange(e.modeChanged)
	e.sink.SetCursorStyle(cursorStyle(e.modes.Current().CursorStyle()))
	return e
}

// modeChanged follows a mode switch with the matching cursor shape.
func (e *Editor) modeChanged(from, to mode.Mode) {
	e.log.Debug("mode changed", "from", from.Name(), "to", to.Name())
	e.sink.SetCursorStyle(cursorStyle(to.CursorStyle()))
}

// Open loads path into the document and redraws. A missing file opens
// an empty document that will be created on save.
func (e *Editor) Open(path string) error {
	lines, err := e.store.Load(path)
	if err != nil {
		return err
	}
	if err := e.doc.Load(lines); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.doc.SetPath(path)
	e.cur = cursor.New(e.doc)
	e.view.ScrollTo(0)
	if lines == nil {
		e.message = fmt.Sprintf("%q [New]", path)
	} else {
		e.message = fmt.Sprintf("%q %dL", path, e.doc.Count())
	}
	e.log.Info("opened", "path", path, "lines", e.doc.Count())
	e.Redraw()
	return nil
}

// HandleKey interprets one key and brings the display up to date.
// It returns ErrQuit when the session should end; other failures are
// reported on the status line and do not end the session.
func (e *Editor) HandleKey(ev key.Event) error {
	e.message = ""
	res := e.modes.HandleKey(ev, nil)

	var err error
	if res != nil && res.Action != nil {
		err = e.execute(res.Action)
	}
	e.refresh()

	if err != nil && !errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// execute runs one action, reporting failures on the status line.
func (e *Editor) execute(a *mode.Action) error {
	h, ok := handlers[a.Name]
	if !ok {
		e.log.Warn("unhandled action", "action", a.Name)
		return nil
	}

	err := h(e, a)
	switch {
	case err == nil, errors.Is(err, ErrQuit):
	case errors.Is(err, line.ErrOutOfMemory):
		e.message = "out of memory: edit aborted"
		e.log.Error("edit aborted", "action", a.Name, "error", err)
	default:
		e.message = err.Error()
		e.log.Error("action failed", "action", a.Name, "error", err)
	}
	return err
}

// Resize adapts the viewport to a new screen size.
func (e *Editor) Resize(width, height int) {
	e.view.Resize(height, width)
	e.sink.Resize(e.view.Height(), e.view.Width())
	e.refresh()
}

// SetOptions applies new editing options to the running session.
func (e *Editor) SetOptions(opts Options) {
	e.opts = opts.normalize()
	e.modes.Command().SetCapacity(e.opts.CommandCapacity)
	e.doc.SetLineLimit(e.opts.MaxLineBytes)
	e.log.Debug("options applied",
		"indent_width", e.opts.IndentWidth,
		"auto_indent", e.opts.AutoIndent,
		"strict", e.opts.StrictCommands)
}

// Options returns the active editing options.
func (e *Editor) Options() Options {
	return e.opts
}

// SetMessage shows text on the status line until the next key.
func (e *Editor) SetMessage(text string) {
	e.message = text
	e.refresh()
}

// Message returns the current status message.
func (e *Editor) Message() string {
	return e.message
}

// Document returns the document being edited.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Cursor returns the editing cursor.
func (e *Editor) Cursor() *cursor.Cursor {
	return e.cur
}

// Viewport returns the visible window.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// Modes returns the mode manager.
func (e *Editor) Modes() *mode.Manager {
	return e.modes
}

// Mode returns the name of the current mode.
func (e *Editor) Mode() string {
	return e.modes.CurrentName()
}

// Yank returns a copy of the yank register and whether it is filled.
func (e *Editor) Yank() ([]byte, bool) {
	return append([]byte(nil), e.yank...), e.hasYank
}

// Validate checks the document and cursor invariants.
func (e *Editor) Validate() error {
	if err := e.doc.Validate(); err != nil {
		return err
	}
	return e.cur.Validate()
}

// CursorPosition returns the cursor row and byte column.
func (e *Editor) CursorPosition() (row, col int) {
	return e.cur.Row(), e.cur.Col()
}

// CurrentLine returns the text of the cursor line.
func (e *Editor) CurrentLine() string {
	if l := e.doc.Line(e.cur.Line()); l != nil {
		return l.String()
	}
	return ""
}

// LineCount returns the number of lines in the document.
func (e *Editor) LineCount() int {
	return e.doc.Count()
}

// FilePath returns the document path, or "".
func (e *Editor) FilePath() string {
	return e.doc.Path()
}

// IsModified reports unsaved changes.
func (e *Editor) IsModified() bool {
	return e.doc.Modified()
}

// inInsert reports whether Insert mode is active.
func (e *Editor) inInsert() bool {
	return e.modes.IsMode(mode.ModeInsert)
}
