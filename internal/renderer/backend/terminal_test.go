package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/padvi/internal/input/key"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	require.NoError(t, term.Init())
	sim.SetSize(w, h)
	t.Cleanup(term.Shutdown)
	return term, sim
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func TestTerminalPaintsWindow(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 3)

	for i, s := range []string{"zero", "one", "two", "three"} {
		term.DrawLine(i, []byte(s+"\n"))
	}
	term.ScrollTo(1)
	term.MoveCursor(2, 1)
	term.ShowStatus("st")
	term.Show()

	assert.Equal(t, "one       ", screenRow(sim, 0))
	assert.Equal(t, "two       ", screenRow(sim, 1))
	assert.Equal(t, "st        ", screenRow(sim, 2))

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestTerminalReplacesControlBytes(t *testing.T) {
	term, sim := newSimTerminal(t, 6, 2)
	term.DrawLine(0, []byte("a\tb\x01\n"))
	term.Show()

	assert.Equal(t, "a b?  ", screenRow(sim, 0))
}

func TestTerminalKeyEvents(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 3)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	term.Interrupt(42)

	var got []Event
	for len(got) < 3 {
		ev := term.PollEvent()
		if ev.Type == EventResize || ev.Type == EventNone {
			continue
		}
		got = append(got, ev)
	}

	assert.True(t, got[0].Key.Is('j'))
	assert.True(t, got[1].Key.IsKey(key.KeyEscape))
	assert.Equal(t, EventInterrupt, got[2].Type)
	assert.Equal(t, 42, got[2].Data)
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		k    tcell.Key
		r    rune
		want key.Event
	}{
		{"rune", tcell.KeyRune, 'q', key.Rune('q')},
		{"enter", tcell.KeyEnter, 0, key.Special(key.KeyEnter)},
		{"backspace", tcell.KeyBackspace, 0, key.Special(key.KeyBackspace)},
		{"backspace2", tcell.KeyBackspace2, 0, key.Special(key.KeyBackspace)},
		{"ctrl-s", tcell.KeyCtrlS, 0, key.NewRuneEvent('s', key.ModCtrl)},
		{"left", tcell.KeyLeft, 0, key.Special(key.KeyLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertKey(tt.k, tt.r, tcell.ModNone))
		})
	}
}

func TestConvertToTcellRoundTrip(t *testing.T) {
	for _, ev := range []key.Event{
		key.Rune('a'),
		key.Special(key.KeyEscape),
		key.Special(key.KeyBackspace),
		key.Special(key.KeyDown),
	} {
		k, r, m := convertToTcell(ev)
		assert.Equal(t, ev, convertKey(k, r, m), "%s", ev)
	}
}
