package mode

import (
	"strings"
	"testing"

	"github.com/dshills/padvi/internal/input/key"
)

func TestManagerRegister(t *testing.T) {
	m := NewManager()
	m.Register(NewNormalMode())

	if got := m.Get(ModeNormal); got == nil {
		t.Error("Get(normal) should return registered mode")
	}
	if got := m.Get(ModeInsert); got != nil {
		t.Errorf("Get(insert) = %v, want nil", got)
	}
	if err := m.SetInitialMode(ModeInsert); err == nil {
		t.Error("SetInitialMode with an unregistered mode should fail")
	}
}

func TestManagerSwitch(t *testing.T) {
	m := NewDefaultManager(64)
	if !m.IsMode(ModeNormal) {
		t.Fatalf("initial mode = %q, want normal", m.CurrentName())
	}

	var changes []string
	m.OnChange(func(f, n Mode) {
		changes = append(changes, f.Name()+">"+n.Name())
	})
	m.OnChange(nil)

	if err := m.Switch(ModeInsert); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if !m.IsMode(ModeInsert) {
		t.Errorf("current mode = %q, want insert", m.CurrentName())
	}
	_ = m.Switch(ModeNormal)

	if err := m.Switch("visual"); err == nil {
		t.Error("Switch to unknown mode should fail")
	}

	want := []string{"normal>insert", "insert>normal"}
	if strings.Join(changes, " ") != strings.Join(want, " ") {
		t.Errorf("callbacks = %v, want %v", changes, want)
	}
}

func TestManagerFirstSwitchSkipsCallbacks(t *testing.T) {
	m := NewManager()
	m.Register(NewNormalMode())

	called := false
	m.OnChange(func(_, _ Mode) { called = true })
	if err := m.Switch(ModeNormal); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if called {
		t.Error("callback should not run without a previous mode")
	}
	if m.CurrentName() != ModeNormal {
		t.Errorf("CurrentName() = %q", m.CurrentName())
	}
}

func TestManagerSwitchResetsPending(t *testing.T) {
	m := NewDefaultManager(64)
	m.HandleKey(key.Rune('d'), nil)
	if m.Normal().Pending() != 'd' {
		t.Fatal("d should fill the register")
	}
	_ = m.Switch(ModeCommand)
	_ = m.Switch(ModeNormal)
	if m.Normal().Pending() != 0 {
		t.Error("mode switch should clear the register")
	}
}

func TestManagerHandleKeyRoutesToCurrent(t *testing.T) {
	m := NewDefaultManager(8)
	if got := m.HandleKey(key.Rune('x'), nil); actionName(got) != ActionDeleteChar {
		t.Errorf("normal x = %q", actionName(got))
	}

	_ = m.Switch(ModeInsert)
	if got := m.HandleKey(key.Rune('x'), nil); actionName(got) != ActionInsertText {
		t.Errorf("insert x = %q", actionName(got))
	}

	_ = m.Switch(ModeCommand)
	m.HandleKey(key.Rune('x'), nil)
	if m.Command().Buffer() != "x" || m.Command().Capacity() != 8 {
		t.Errorf("command buffer = %q cap %d", m.Command().Buffer(), m.Command().Capacity())
	}

	if got := NewManager().HandleKey(key.Rune('x'), nil); got.Consumed {
		t.Error("manager without modes should ignore keys")
	}
}
