package mode

import (
	"unicode/utf8"

	"github.com/dshills/padvi/internal/input/key"
)

// DefaultCommandCapacity is the command buffer size in bytes.
const DefaultCommandCapacity = 64

// commandPrompt leads the command line on the status line.
const commandPrompt = ':'

// CommandMode implements the ":" command line.
// The buffer is bounded; input that would overflow it is rejected.
type CommandMode struct {
	// buffer holds the command being typed.
	buffer []byte

	// capacity is the maximum buffer length in bytes.
	capacity int

	// history holds previous commands.
	history []string

	// historyIndex is the current position in history (-1 = current input).
	historyIndex int

	// savedBuffer holds the buffer when navigating history.
	savedBuffer []byte
}

// NewCommandMode creates a command mode with the given buffer capacity.
// A non-positive capacity selects DefaultCommandCapacity.
func NewCommandMode(capacity int) *CommandMode {
	if capacity <= 0 {
		capacity = DefaultCommandCapacity
	}
	return &CommandMode{
		buffer:       make([]byte, 0, capacity),
		capacity:     capacity,
		history:      make([]string, 0, 100),
		historyIndex: -1,
	}
}

// Name returns the mode identifier.
func (m *CommandMode) Name() string {
	return ModeCommand
}

// DisplayName returns the human-readable mode name.
func (m *CommandMode) DisplayName() string {
	return "COMMAND"
}

// CursorStyle returns the cursor style for command mode.
func (m *CommandMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter is called when entering command mode.
func (m *CommandMode) Enter(ctx *Context) error {
	m.Clear()
	m.historyIndex = -1
	m.savedBuffer = nil
	return nil
}

// Exit is called when leaving command mode.
func (m *CommandMode) Exit(ctx *Context) error {
	return nil
}

// HandleKey interprets a key event.
func (m *CommandMode) HandleKey(event key.Event, ctx *Context) *Result {
	if event.IsChar() {
		if !m.append(event.Bytes()) {
			return act(ActionCommandReject, nil)
		}
		return act(ActionCommandUpdate, nil)
	}

	switch {
	case event.IsKey(key.KeyEscape):
		m.Clear()
		return act(ActionModeNormal, nil)
	case event.IsKey(key.KeyBackspace), event.IsKey(key.KeyDelete):
		if !m.Backspace() {
			return act(ActionModeNormal, nil)
		}
		return act(ActionCommandUpdate, nil)
	case event.IsKey(key.KeyEnter):
		cmd := m.Buffer()
		m.AddToHistory(cmd)
		m.Clear()
		return act(ActionCommandExecute, map[string]any{"command": cmd})
	case event.IsKey(key.KeyUp):
		if m.HistoryPrev() {
			return act(ActionCommandUpdate, nil)
		}
		return consumed()
	case event.IsKey(key.KeyDown):
		if m.HistoryNext() {
			return act(ActionCommandUpdate, nil)
		}
		return consumed()
	}

	return ignored()
}

// append adds text unless it would overflow the buffer.
func (m *CommandMode) append(text []byte) bool {
	if len(text) == 0 || len(m.buffer)+len(text) > m.capacity {
		return false
	}
	m.buffer = append(m.buffer, text...)
	return true
}

// Buffer returns the current command buffer content.
func (m *CommandMode) Buffer() string {
	return string(m.buffer)
}

// SetBuffer sets the command buffer content, truncated to capacity.
func (m *CommandMode) SetBuffer(s string) {
	if len(s) > m.capacity {
		s = s[:m.capacity]
		for len(s) > 0 && !utf8.ValidString(s) {
			s = s[:len(s)-1]
		}
	}
	m.buffer = append(m.buffer[:0], s...)
}

// Capacity returns the buffer capacity in bytes.
func (m *CommandMode) Capacity() int {
	return m.capacity
}

// SetCapacity changes the buffer capacity, truncating the buffer if needed.
func (m *CommandMode) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCommandCapacity
	}
	m.capacity = capacity
	m.SetBuffer(m.Buffer())
}

// Line returns the prompt followed by the buffer, as shown on the status line.
func (m *CommandMode) Line() string {
	return string(commandPrompt) + m.Buffer()
}

// Clear clears the command buffer.
func (m *CommandMode) Clear() {
	m.buffer = m.buffer[:0]
}

// Backspace deletes the last character. Returns false if the buffer
// was already empty.
func (m *CommandMode) Backspace() bool {
	if len(m.buffer) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(m.buffer)
	m.buffer = m.buffer[:len(m.buffer)-size]
	return true
}

// AddToHistory adds a command to the history.
func (m *CommandMode) AddToHistory(cmd string) {
	if cmd == "" {
		return
	}
	// Don't add duplicates of the last command
	if len(m.history) > 0 && m.history[len(m.history)-1] == cmd {
		return
	}
	m.history = append(m.history, cmd)
	m.historyIndex = -1
}

// HistoryPrev moves to the previous history entry.
func (m *CommandMode) HistoryPrev() bool {
	if len(m.history) == 0 {
		return false
	}

	if m.historyIndex == -1 {
		// Save current buffer
		m.savedBuffer = append([]byte(nil), m.buffer...)
		m.historyIndex = len(m.history) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	} else {
		return false
	}

	m.SetBuffer(m.history[m.historyIndex])
	return true
}

// HistoryNext moves to the next history entry.
func (m *CommandMode) HistoryNext() bool {
	if m.historyIndex == -1 {
		return false
	}

	m.historyIndex++
	if m.historyIndex >= len(m.history) {
		// Restore saved buffer
		m.historyIndex = -1
		m.SetBuffer(string(m.savedBuffer))
		m.savedBuffer = nil
	} else {
		m.SetBuffer(m.history[m.historyIndex])
	}
	return true
}

// History returns the command history.
func (m *CommandMode) History() []string {
	return m.history
}
