// Package mode provides the modal editing system.
//
// Three modes are registered by default:
//   - Normal mode: navigation and line commands
//   - Insert mode: text input
//   - Command mode: the ":" command line
//
// A mode turns each key event into a Result holding at most one Action.
// Modes never touch the document; the editor executes the actions,
// including the "mode.*" actions that switch modes through the Manager.
//
// # Two-key commands
//
// Normal mode keeps a one-slot pending register for dd, gg, yy, >> and
// <<. The first key fills the register. The matching second key clears
// it and yields the command; any other key clears it and is consumed.
//
// # Mode Lifecycle
//
// When switching modes:
// 1. Current mode's Exit() is called
// 2. New mode's Enter() is called
// 3. Mode change callbacks are notified
package mode
