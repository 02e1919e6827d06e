package editor

import "errors"

// Errors returned by the editor.
var (
	// ErrQuit is returned by HandleKey when the session should end.
	ErrQuit = errors.New("quit")

	// ErrNoFileName is reported when saving a document without a path.
	ErrNoFileName = errors.New("no file name")
)
