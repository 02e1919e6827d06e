package backend

import (
	"fmt"
	"sync"
)

// Op is one recorded Sink call.
type Op struct {
	Name string
	Row  int
	Col  int
	Text string
}

// String renders the op for test failure output.
func (o Op) String() string {
	switch o.Name {
	case "draw":
		return fmt.Sprintf("draw(%d, %q)", o.Row, o.Text)
	case "move":
		return fmt.Sprintf("move(%d, %d)", o.Row, o.Col)
	case "status":
		return fmt.Sprintf("status(%q)", o.Text)
	case "resize":
		return fmt.Sprintf("resize(%d, %d)", o.Row, o.Col)
	default:
		return fmt.Sprintf("%s(%d)", o.Name, o.Row)
	}
}

// NullBackend is an in-memory backend for testing. It keeps the same Pad
// a terminal would, plus a log of every Sink call.
type NullBackend struct {
	mu sync.Mutex

	width, height int
	pad           *Pad
	ops           []Op

	minRow      int
	cursorRow   int
	cursorCol   int
	cursorStyle CursorStyle
	status      string
	shows       int
	closed      bool

	events chan Event
}

// NewNullBackend creates a null backend with the given screen dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		pad:    NewPad(),
		events: make(chan Event, 256),
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) record(op Op) {
	b.ops = append(b.ops, op)
}

func (b *NullBackend) DrawLine(row int, text []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pad.Set(row, text)
	b.record(Op{Name: "draw", Row: row, Text: string(text)})
}

func (b *NullBackend) InsertLine(row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pad.Insert(row)
	b.record(Op{Name: "insert", Row: row})
}

func (b *NullBackend) DeleteLine(row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pad.Delete(row)
	b.record(Op{Name: "delete", Row: row})
}

func (b *NullBackend) MoveCursor(row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorRow, b.cursorCol = row, col
	b.record(Op{Name: "move", Row: row, Col: col})
}

func (b *NullBackend) ScrollTo(minRow int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.minRow = minRow
	b.record(Op{Name: "scroll", Row: minRow})
}

func (b *NullBackend) Resize(height, width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Op{Name: "resize", Row: height, Col: width})
}

func (b *NullBackend) ShowStatus(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = text
	b.record(Op{Name: "status", Text: text})
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

// PollEvent returns the next posted event, or EventClosed after Shutdown.
func (b *NullBackend) PollEvent() Event {
	ev, ok := <-b.events
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

func (b *NullBackend) PostEvent(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) Interrupt(data any) {
	b.PostEvent(Event{Type: EventInterrupt, Data: data})
}

// SetSize simulates a terminal resize and queues the resize event.
func (b *NullBackend) SetSize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.mu.Unlock()
	b.PostEvent(ResizeEvent(width, height))
}

// Lines returns the pad content.
func (b *NullBackend) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pad.Lines()
}

// Visible returns the pad rows inside the current window.
func (b *NullBackend) Visible() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for y := 0; y < b.height-1; y++ {
		row := b.minRow + y
		if row >= b.pad.Len() {
			break
		}
		out = append(out, string(b.pad.Row(row)))
	}
	return out
}

// Ops returns the recorded Sink calls.
func (b *NullBackend) Ops() []Op {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Op(nil), b.ops...)
}

// ResetOps clears the recorded Sink calls.
func (b *NullBackend) ResetOps() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = b.ops[:0]
}

// CursorPosition returns the last cursor position.
func (b *NullBackend) CursorPosition() (row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorRow, b.cursorCol
}

// CursorStyleValue returns the current cursor style.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// MinRow returns the first visible row.
func (b *NullBackend) MinRow() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.minRow
}

// Status returns the status line.
func (b *NullBackend) Status() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}
