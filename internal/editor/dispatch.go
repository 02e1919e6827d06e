package editor

import "github.com/dshills/padvi/internal/input/mode"

// handlerFunc executes one action against the editor.
type handlerFunc func(e *Editor, a *mode.Action) error

// handlers maps action names to their implementation.
var handlers map[string]handlerFunc

func init() {
	handlers = map[string]handlerFunc{
		mode.ActionModeNormal:  (*Editor).enterNormal,
		mode.ActionModeInsert:  (*Editor).enterInsert,
		mode.ActionModeCommand: (*Editor).enterCommand,

		mode.ActionCursorLeft:      motion((*Editor).moveLeft),
		mode.ActionCursorRight:     motion((*Editor).moveRight),
		mode.ActionCursorUp:        motion((*Editor).moveUp),
		mode.ActionCursorDown:      motion((*Editor).moveDown),
		mode.ActionCursorFileStart: motion((*Editor).moveFirst),
		mode.ActionCursorFileEnd:   motion((*Editor).moveLast),

		mode.ActionInsertText:  (*Editor).insertText,
		mode.ActionInsertTab:   edit((*Editor).insertTab),
		mode.ActionNewline:     edit((*Editor).splitLine),
		mode.ActionBackspace:   edit((*Editor).deleteCh),
		mode.ActionDeleteChar:  edit((*Editor).deleteUnder),
		mode.ActionDeleteLine:  edit((*Editor).deleteLine),
		mode.ActionYankLine:    edit((*Editor).yankLine),
		mode.ActionPaste:       (*Editor).paste,
		mode.ActionIndentLine:  edit((*Editor).indentLine),
		mode.ActionOutdentLine: edit((*Editor).outdentLine),

		mode.ActionCommandUpdate:  (*Editor).commandUpdate,
		mode.ActionCommandReject:  (*Editor).commandReject,
		mode.ActionCommandExecute: (*Editor).commandExecute,
	}
}

// motion adapts a cursor movement that cannot fail.
func motion(fn func(e *Editor)) handlerFunc {
	return func(e *Editor, _ *mode.Action) error {
		fn(e)
		return nil
	}
}

// edit adapts an argument-free edit.
func edit(fn func(e *Editor) error) handlerFunc {
	return func(e *Editor, _ *mode.Action) error {
		return fn(e)
	}
}
