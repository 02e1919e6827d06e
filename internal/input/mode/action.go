package mode

import "fmt"

// Action represents a command to be executed by the editor.
type Action struct {
	Name string
	Args map[string]any
}

// Action names.
const (
	ActionModeNormal  = "mode.normal"
	ActionModeInsert  = "mode.insert"
	ActionModeCommand = "mode.command"

	ActionCursorLeft      = "cursor.left"
	ActionCursorRight     = "cursor.right"
	ActionCursorUp        = "cursor.up"
	ActionCursorDown      = "cursor.down"
	ActionCursorFileStart = "cursor.file_start"
	ActionCursorFileEnd   = "cursor.file_end"

	ActionInsertText  = "editor.insert_text"
	ActionInsertTab   = "editor.insert_tab"
	ActionNewline     = "editor.newline"
	ActionBackspace   = "editor.backspace"
	ActionDeleteChar  = "editor.delete_char"
	ActionDeleteLine  = "editor.delete_line"
	ActionYankLine    = "editor.yank_line"
	ActionPaste       = "editor.paste"
	ActionIndentLine  = "editor.indent"
	ActionOutdentLine = "editor.outdent"

	ActionCommandUpdate  = "command.update"
	ActionCommandReject  = "command.reject"
	ActionCommandExecute = "command.execute"
)

// Insert positions carried by ActionModeInsert.
const (
	InsertAtCursor    = "cursor"
	InsertLineStart   = "line_start"
	InsertAfter       = "after"
	InsertLineEnd     = "line_end"
	InsertLineBelow   = "new_line_below"
	InsertLineAbove   = "new_line_above"
	insertPositionArg = "position"
)

// String returns the action argument for key, or "".
func (a *Action) String(key string) string {
	if a == nil || a.Args == nil {
		return ""
	}
	s, _ := a.Args[key].(string)
	return s
}

// Bool returns the action argument for key, or false.
func (a *Action) Bool(key string) bool {
	if a == nil || a.Args == nil {
		return false
	}
	b, _ := a.Args[key].(bool)
	return b
}

// Position returns the insert position of an ActionModeInsert.
func (a *Action) Position() string {
	if p := a.String(insertPositionArg); p != "" {
		return p
	}
	return InsertAtCursor
}

// GoString implements fmt.GoStringer for test output.
func (a *Action) GoString() string {
	if a == nil {
		return "<nil>"
	}
	if len(a.Args) == 0 {
		return a.Name
	}
	return fmt.Sprintf("%s%v", a.Name, a.Args)
}
