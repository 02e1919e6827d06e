package backend

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/padvi/internal/input/key"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	pad       *Pad
	minRow    int
	cursorRow int
	cursorCol int
	hidden    bool
	status    string

	textStyle   tcell.Style
	statusStyle tcell.Style
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend over an existing
// screen, such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:      screen,
		pad:         NewPad(),
		textStyle:   tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(t.textStyle)
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) DrawLine(row int, text []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pad.Set(row, text)
}

func (t *Terminal) InsertLine(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pad.Insert(row)
}

func (t *Terminal) DeleteLine(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pad.Delete(row)
}

func (t *Terminal) MoveCursor(row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursorRow, t.cursorCol = row, col
}

func (t *Terminal) ScrollTo(minRow int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.minRow = minRow
}

// Resize is a no-op: the window is painted from the screen size on Show.
func (t *Terminal) Resize(height, width int) {}

func (t *Terminal) ShowStatus(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = text
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.hidden = true
		t.screen.HideCursor()
		return
	}
	t.hidden = false
	t.screen.SetCursorStyle(tcellStyle)
}

// Show paints the visible pad window and the status line.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	width, height := t.screen.Size()
	textRows := height - 1

	for y := 0; y < textRows; y++ {
		t.paint(y, t.pad.Row(t.minRow+y), width, t.textStyle)
	}
	if height > 0 {
		status := []byte(t.status)
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, height-1, ' ', nil, t.statusStyle)
		}
		t.paint(height-1, status, width, t.statusStyle)
	}

	if !t.hidden {
		y := t.cursorRow - t.minRow
		if y >= 0 && y < textRows {
			t.screen.ShowCursor(t.cursorCol, y)
		} else {
			t.screen.HideCursor()
		}
	}
	t.screen.Show()
}

// paint draws text on screen row y. Columns are byte offsets, so a
// multi-byte character occupies as many cells as it has bytes.
func (t *Terminal) paint(y int, text []byte, width int, style tcell.Style) {
	for x := 0; x < len(text) && x < width; {
		r, size := utf8.DecodeRune(text[x:])
		switch {
		case r == '\t':
			r = ' '
		case r == utf8.RuneError, !unicode.IsPrint(r):
			r = '?'
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += size
	}
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	switch event.Type {
	case EventKey:
		k, r, m := convertToTcell(event.Key)
		_ = t.screen.PostEvent(tcell.NewEventKey(k, r, m)) // best-effort; event queue may be full
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(event.Data))
	}
}

func (t *Terminal) Interrupt(data any) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}

	case *tcell.EventKey:
		return KeyEvent(convertKey(e.Key(), e.Rune(), e.Modifiers()))

	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent(w, h)

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey converts a tcell key to a key event. Control letters are
// reported as the lowercase letter with ModCtrl.
func convertKey(k tcell.Key, r rune, m tcell.ModMask) key.Event {
	mods := convertMod(m)
	if k == tcell.KeyRune {
		return key.NewRuneEvent(r, mods)
	}
	if sk, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(sk, mods)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
	}
	return key.NewSpecialEvent(key.KeyNone, mods)
}

// convertToTcell converts a key event back to tcell key, rune and mask.
func convertToTcell(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	m := convertToTcellMod(ev.Modifiers)
	if ev.Key == key.KeyRune {
		return tcell.KeyRune, ev.Rune, m
	}
	for tk, k := range specialKeys {
		if k == ev.Key && tk != tcell.KeyBackspace2 {
			return tk, 0, m
		}
	}
	return tcell.KeyRune, 0, m
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}
