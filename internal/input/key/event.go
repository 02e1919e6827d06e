package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Rune is shorthand for an unmodified character event.
func Rune(r rune) Event { return NewRuneEvent(r, ModNone) }

// Special is shorthand for an unmodified special key event.
func Special(k Key) Event { return NewSpecialEvent(k, ModNone) }

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without
// Ctrl, Alt or Meta held.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Is reports whether the event is the unmodified character r.
func (e Event) Is(r rune) bool {
	return e.IsRune() && !e.IsModified() && e.Rune == r
}

// IsKey reports whether the event is the special key k, ignoring Shift.
func (e Event) IsKey(k Key) bool {
	return e.Key == k && e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// Bytes returns the UTF-8 encoding of a character event, or nil.
func (e Event) Bytes() []byte {
	if !e.IsRune() || !utf8.ValidRune(e.Rune) {
		return nil
	}
	return utf8.AppendRune(nil, e.Rune)
}

// String returns a Vim-like representation such as "a", "<Esc>" or "<C-s>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var name string
	switch e.Key {
	case KeyRune:
		name = string(e.Rune)
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}
	if mods := e.Modifiers.String(); mods != "" {
		return "<" + mods + "-" + name + ">"
	}
	return "<" + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
