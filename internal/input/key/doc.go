// Package key defines the key events the editor consumes.
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift and Meta flags
//   - Event: a single key press
//
// Columns in the editor are byte offsets, so a character event is
// inserted as the bytes of its UTF-8 encoding.
package key
