// Package backend provides the display sink and key source the editor
// runs against: a tcell terminal, and an in-memory backend for tests.
//
// Rows passed to a Sink are document rows. A backend keeps a Pad holding
// every document row and shows the window starting at the row given to
// ScrollTo, with a status line below it.
package backend

import "github.com/dshills/padvi/internal/input/key"

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// String returns the style name.
func (s CursorStyle) String() string {
	switch s {
	case CursorBlock:
		return "block"
	case CursorUnderline:
		return "underline"
	case CursorBar:
		return "bar"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// EventType identifies the type of backend event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt wakes the event loop; Data carries the payload.
	EventInterrupt
	// EventClosed is returned once the backend has shut down.
	EventClosed
)

// Event represents a backend event.
type Event struct {
	Type EventType

	// Key event fields
	Key key.Event

	// Resize event fields, in screen cells
	Width, Height int

	// Interrupt payload
	Data any
}

// KeyEvent wraps a key event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// ResizeEvent creates a resize event for a screen of the given size.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Sink accepts line-level drawing primitives.
type Sink interface {
	// DrawLine replaces the text of a document row.
	DrawLine(row int, text []byte)

	// InsertLine opens an empty row, shifting later rows down.
	InsertLine(row int)

	// DeleteLine removes a row, shifting later rows up.
	DeleteLine(row int)

	// MoveCursor places the cursor at a document position.
	MoveCursor(row, col int)

	// ScrollTo sets the first visible document row.
	ScrollTo(minRow int)

	// Resize records the size of the text area.
	Resize(height, width int)

	// ShowStatus replaces the status line.
	ShowStatus(text string)

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// Show flushes pending changes to the display.
	Show()
}

// Backend is a Sink that also owns the screen and produces events.
type Backend interface {
	Sink

	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current screen dimensions.
	Size() (width, height int)

	// PollEvent waits for and returns the next event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// Interrupt wakes PollEvent with an EventInterrupt carrying data.
	Interrupt(data any)
}
