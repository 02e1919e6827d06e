package mode

import (
	"fmt"
	"sync"

	"github.com/dshills/padvi/internal/input/key"
)

// Manager manages editor modes and coordinates mode transitions.
type Manager struct {
	mu sync.RWMutex

	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode.
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback

	// context is reused for mode transitions.
	context *Context
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a new mode manager with no modes registered.
func NewManager() *Manager {
	return &Manager{
		modes:   make(map[string]Mode),
		context: NewContext(),
	}
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modes[name]
}

// Current returns the current mode.
// Returns nil if no mode is set.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CurrentName returns the name of the current mode.
// Returns empty string if no mode is set.
func (m *Manager) CurrentName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Switch changes to a different mode.
// Calls Exit() on the current mode and Enter() on the new mode, then
// notifies the OnChange callbacks.
func (m *Manager) Switch(name string) error {
	m.mu.Lock()

	newMode, ok := m.modes[name]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown mode: %s", name)
	}

	oldMode, callbacks, err := m.switchToLocked(newMode)
	m.mu.Unlock()

	if err != nil {
		return err
	}

	// Notify callbacks outside of lock
	if oldMode == nil {
		return nil
	}
	for _, cb := range callbacks {
		cb(oldMode, newMode)
	}

	return nil
}

// switchToLocked performs the mode switch (must hold lock).
// Returns the old mode and callbacks to notify.
func (m *Manager) switchToLocked(newMode Mode) (Mode, []ModeChangeCallback, error) {
	ctx := m.context

	oldMode := m.current

	// Exit current mode
	if oldMode != nil {
		ctx.NextMode = newMode.Name()
		if err := oldMode.Exit(ctx); err != nil {
			return nil, nil, fmt.Errorf("exit %s: %w", oldMode.Name(), err)
		}
	}

	// Enter new mode
	if oldMode != nil {
		ctx.PreviousMode = oldMode.Name()
	} else {
		ctx.PreviousMode = ""
	}
	ctx.NextMode = ""

	if err := newMode.Enter(ctx); err != nil {
		return nil, nil, fmt.Errorf("enter %s: %w", newMode.Name(), err)
	}

	// Update state
	m.current = newMode

	// Copy callbacks to call outside of lock
	callbacks := make([]ModeChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)

	return oldMode, callbacks, nil
}

// OnChange registers a callback run after every successful Switch away
// from a current mode. Callbacks run outside the manager lock, in
// registration order.
func (m *Manager) OnChange(callback ModeChangeCallback) {
	if callback == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// SetInitialMode sets the initial mode without triggering exit/enter.
// Should only be called once during initialization.
func (m *Manager) SetInitialMode(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}

	m.current = mode

	// Call Enter for initial setup
	ctx := m.context
	ctx.PreviousMode = ""
	return mode.Enter(ctx)
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil && m.current.Name() == name
}

// HandleKey passes a key event to the current mode.
func (m *Manager) HandleKey(event key.Event, ctx *Context) *Result {
	mode := m.Current()
	if mode == nil {
		return ignored()
	}
	if ctx == nil {
		ctx = m.context
	}
	return mode.HandleKey(event, ctx)
}

// NewDefaultManager creates a manager with normal, insert and command
// modes registered and normal mode active.
func NewDefaultManager(commandCapacity int) *Manager {
	m := NewManager()
	m.Register(NewNormalMode())
	m.Register(NewInsertMode())
	m.Register(NewCommandMode(commandCapacity))
	_ = m.SetInitialMode(ModeNormal) // normal mode Enter never fails
	return m
}

// Normal returns the registered normal mode, or nil.
func (m *Manager) Normal() *NormalMode {
	n, _ := m.Get(ModeNormal).(*NormalMode)
	return n
}

// Command returns the registered command mode, or nil.
func (m *Manager) Command() *CommandMode {
	c, _ := m.Get(ModeCommand).(*CommandMode)
	return c
}
