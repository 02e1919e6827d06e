package mode

import (
	"github.com/dshills/padvi/internal/input/key"
)

// NormalMode implements Vim's normal mode.
// In normal mode, keys are interpreted as commands rather than text input.
type NormalMode struct {
	// pending holds the first key of a two-key command, or 0.
	pending rune
}

// NewNormalMode creates a new normal mode instance.
func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

// Name returns the mode identifier.
func (m *NormalMode) Name() string {
	return ModeNormal
}

// DisplayName returns the human-readable mode name.
func (m *NormalMode) DisplayName() string {
	return "NORMAL"
}

// CursorStyle returns the cursor style for normal mode.
func (m *NormalMode) CursorStyle() CursorStyle {
	return CursorBlock
}

// Enter is called when entering normal mode.
func (m *NormalMode) Enter(ctx *Context) error {
	m.pending = 0
	return nil
}

// Exit is called when leaving normal mode.
func (m *NormalMode) Exit(ctx *Context) error {
	m.pending = 0
	return nil
}

// twoKey maps the initiator of each two-key command to its action.
var twoKey = map[rune]string{
	'd': ActionDeleteLine,
	'g': ActionCursorFileStart,
	'y': ActionYankLine,
	'>': ActionIndentLine,
	'<': ActionOutdentLine,
}

// HandleKey interprets a key event.
func (m *NormalMode) HandleKey(event key.Event, ctx *Context) *Result {
	if m.pending != 0 {
		first := m.pending
		m.pending = 0
		if event.Is(first) {
			return act(twoKey[first], nil)
		}
		return consumed()
	}

	if event.IsRune() && !event.IsModified() {
		r := event.Rune
		if _, ok := twoKey[r]; ok {
			m.pending = r
			return consumed()
		}

		switch r {
		case 'i':
			return act(ActionModeInsert, map[string]any{insertPositionArg: InsertAtCursor})
		case 'I':
			return act(ActionModeInsert, map[string]any{insertPositionArg: InsertLineStart})
		case 'a':
			return act(ActionModeInsert, map[string]any{insertPositionArg: InsertAfter})
		case 'A':
			return act(ActionModeInsert, map[string]any{insertPositionArg: InsertLineEnd})
		case 'o':
			return act(ActionModeInsert, map[string]any{insertPositionArg: InsertLineBelow})
		case 'O':
			return act(ActionModeInsert, map[string]any{insertPositionArg: InsertLineAbove})
		case ':':
			return act(ActionModeCommand, nil)

		case 'h':
			return act(ActionCursorLeft, nil)
		case 'j':
			return act(ActionCursorDown, nil)
		case 'k':
			return act(ActionCursorUp, nil)
		case 'l':
			return act(ActionCursorRight, nil)
		case 'G':
			return act(ActionCursorFileEnd, nil)

		case 'x':
			return act(ActionDeleteChar, nil)
		case 'p':
			return act(ActionPaste, map[string]any{"after": true})
		case 'P':
			return act(ActionPaste, map[string]any{"after": false})
		}
		return ignored()
	}

	switch {
	case event.IsKey(key.KeyLeft):
		return act(ActionCursorLeft, nil)
	case event.IsKey(key.KeyRight):
		return act(ActionCursorRight, nil)
	case event.IsKey(key.KeyUp):
		return act(ActionCursorUp, nil)
	case event.IsKey(key.KeyDown):
		return act(ActionCursorDown, nil)
	case event.IsKey(key.KeyEscape):
		return consumed()
	}

	// Unmapped keys in normal mode are ignored
	return ignored()
}

// Pending returns the first key of an incomplete two-key command, or 0.
func (m *NormalMode) Pending() rune {
	return m.pending
}

// ResetState clears the pending register.
func (m *NormalMode) ResetState() {
	m.pending = 0
}
