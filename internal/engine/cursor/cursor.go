package cursor

import (
	"fmt"

	"github.com/dshills/padvi/internal/engine/document"
)

// Cursor is the logical editing position in a document.
type Cursor struct {
	doc  *document.Document
	row  int
	col  int
	line document.Handle
}

// New creates a cursor at the first line, column zero.
func New(doc *document.Document) *Cursor {
	return &Cursor{doc: doc, line: doc.Head()}
}

// Row returns the 0-based index of the current line.
func (c *Cursor) Row() int { return c.row }

// Col returns the byte column in the current line.
func (c *Cursor) Col() int { return c.col }

// Line returns the handle of the current line.
func (c *Cursor) Line() document.Handle { return c.line }

// Document returns the document the cursor moves in.
func (c *Cursor) Document() *document.Document { return c.doc }

// Set places the cursor on line h at row and col without validation.
// Callers must pass a row matching h.
func (c *Cursor) Set(h document.Handle, row, col int) {
	c.line, c.row, c.col = h, row, col
}

// SetCol sets the column without clamping.
func (c *Cursor) SetCol(col int) { c.col = col }

// maxCol returns the right-most column allowed on the current line.
func (c *Cursor) maxCol(insert bool) int {
	l := c.doc.Line(c.line)
	if l == nil {
		return 0
	}
	lci := l.LastContentIndex()
	if insert && !l.IsBlank() {
		return lci + 1
	}
	return lci
}

// Clamp pulls the column back into the bounds for the given mode.
func (c *Cursor) Clamp(insert bool) {
	if m := c.maxCol(insert); c.col > m {
		c.col = m
	}
	if c.col < 0 {
		c.col = 0
	}
}

// MoveUp moves to the previous line. Returns false at the first line.
func (c *Cursor) MoveUp() bool {
	prev := c.doc.Prev(c.line)
	if c.row == 0 || prev == document.NoLine {
		return false
	}
	c.line = prev
	c.row--
	c.Clamp(false)
	return true
}

// MoveDown moves to the next line. Returns false at the last line.
func (c *Cursor) MoveDown() bool {
	next := c.doc.Next(c.line)
	if c.row >= c.doc.Count()-1 || next == document.NoLine {
		return false
	}
	c.line = next
	c.row++
	c.Clamp(false)
	return true
}

// MoveLeft moves one column left, stopping at zero.
func (c *Cursor) MoveLeft() bool {
	if c.col == 0 {
		return false
	}
	c.col--
	return true
}

// MoveRight moves one column right within the bounds for the mode.
func (c *Cursor) MoveRight(insert bool) bool {
	if c.col >= c.maxCol(insert) {
		return false
	}
	c.col++
	return true
}

// GoTo moves to row, keeping the column within Normal mode bounds.
// Rows outside the document are ignored.
func (c *Cursor) GoTo(row int) bool {
	h := c.doc.At(row)
	if h == document.NoLine {
		return false
	}
	c.line, c.row = h, row
	c.Clamp(false)
	return true
}

// First moves to the first line.
func (c *Cursor) First() {
	c.GoTo(0)
}

// Last moves to the last line with the column on its last character.
func (c *Cursor) Last() {
	c.line = c.doc.Tail()
	c.row = c.doc.Count() - 1
	c.col = c.doc.LastContentIndex(c.line)
}

// Validate checks that the row matches the line handle's position and
// that the column lies within the line.
func (c *Cursor) Validate() error {
	l := c.doc.Line(c.line)
	if l == nil {
		return fmt.Errorf("cursor on invalid line %d", c.line)
	}
	if idx := c.doc.Index(c.line); idx != c.row {
		return fmt.Errorf("cursor row %d, line is at %d", c.row, idx)
	}
	if c.col < 0 || c.col > l.Len() {
		return fmt.Errorf("cursor column %d outside [0, %d]", c.col, l.Len())
	}
	return nil
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.row, c.col)
}
