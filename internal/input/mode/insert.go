package mode

import (
	"github.com/dshills/padvi/internal/input/key"
)

// InsertMode implements Vim's insert mode.
// In insert mode, most keys are interpreted as text to be inserted.
type InsertMode struct{}

// NewInsertMode creates a new insert mode instance.
func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

// Name returns the mode identifier.
func (m *InsertMode) Name() string {
	return ModeInsert
}

// DisplayName returns the human-readable mode name.
func (m *InsertMode) DisplayName() string {
	return "INSERT"
}

// CursorStyle returns the cursor style for insert mode.
func (m *InsertMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter is called when entering insert mode.
func (m *InsertMode) Enter(ctx *Context) error {
	return nil
}

// Exit is called when leaving insert mode.
func (m *InsertMode) Exit(ctx *Context) error {
	return nil
}

// HandleKey interprets a key event.
func (m *InsertMode) HandleKey(event key.Event, ctx *Context) *Result {
	// Unmodified printable characters are typed as text
	if event.IsChar() {
		return act(ActionInsertText, map[string]any{"text": string(event.Bytes())})
	}

	switch {
	case event.IsKey(key.KeyEscape):
		return act(ActionModeNormal, nil)
	case event.IsKey(key.KeyEnter):
		return act(ActionNewline, nil)
	case event.IsKey(key.KeyBackspace), event.IsKey(key.KeyDelete):
		return act(ActionBackspace, nil)
	case event.IsKey(key.KeyTab):
		return act(ActionInsertTab, nil)
	case event.IsKey(key.KeyLeft):
		return act(ActionCursorLeft, nil)
	case event.IsKey(key.KeyRight):
		return act(ActionCursorRight, nil)
	case event.IsKey(key.KeyUp):
		return act(ActionCursorUp, nil)
	case event.IsKey(key.KeyDown):
		return act(ActionCursorDown, nil)
	}

	// Other unmapped keys are ignored in insert mode
	return ignored()
}
