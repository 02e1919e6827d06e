// Package editor holds the state of one editing session and applies
// mode actions to it.
//
// An Editor owns the Document, the Cursor, the Viewport, the mode manager
// and the yank register. Each key is interpreted by the current mode,
// the resulting action is executed against the document, and the
// display sink is brought up to date before HandleKey returns, so the
// sink always mirrors a consistent document.
//
// The Editor is not safe for concurrent use; the event loop owns it.
package editor
