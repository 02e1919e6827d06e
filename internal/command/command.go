// Package command parses the ":" command line.
//
// The grammar is fixed and checked in order:
//
//	w        save
//	<digits> jump to a line (1-based, clamped)
//	wq       save and quit
//	q, q!    quit
//	other    quit, or Unknown in strict mode
//
// An empty line does nothing.
package command

import (
	"fmt"
	"math"
)

// Kind identifies a parsed command.
type Kind uint8

const (
	// None is an empty command line.
	None Kind = iota
	// Save writes the document and keeps running.
	Save
	// Jump moves the cursor to Command.Row.
	Jump
	// SaveQuit writes the document and then quits.
	SaveQuit
	// Quit ends the session without saving.
	Quit
	// Unknown is an unrecognized command in strict mode.
	Unknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Save:
		return "save"
	case Jump:
		return "jump"
	case SaveQuit:
		return "save-quit"
	case Quit:
		return "quit"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Command is the result of parsing a command line.
type Command struct {
	Kind Kind

	// Row is the 0-based target row of a Jump.
	Row int

	// Text is the command line as typed.
	Text string
}

// Options control parsing.
type Options struct {
	// Strict reports unrecognized commands as Unknown instead of Quit.
	Strict bool
}

// Parse interprets a command line against a document of lineCount lines.
func Parse(text string, lineCount int, opts Options) Command {
	cmd := Command{Text: text}

	switch {
	case text == "":
		cmd.Kind = None
	case text == "w":
		cmd.Kind = Save
	case isDigit(text[0]):
		cmd.Kind = Jump
		cmd.Row = JumpTarget(leadingNumber(text), lineCount)
	case text == "wq":
		cmd.Kind = SaveQuit
	case text == "q", text == "q!":
		cmd.Kind = Quit
	case opts.Strict:
		cmd.Kind = Unknown
	default:
		cmd.Kind = Quit
	}
	return cmd
}

// JumpTarget converts a 1-based line number to a row in a document of
// lineCount lines. Numbers past the end select the last row and 0
// selects the first.
func JumpTarget(n, lineCount int) int {
	switch {
	case n >= lineCount:
		return max(lineCount-1, 0)
	case n > 0:
		return n - 1
	default:
		return 0
	}
}

// leadingNumber parses the run of decimal digits at the start of s,
// saturating instead of overflowing.
func leadingNumber(s string) int {
	n := 0
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		digit := int(s[i] - '0')
		if n > (math.MaxInt-digit)/10 {
			return math.MaxInt
		}
		n = n*10 + digit
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
