// Package cursor tracks the editing position inside a document.
//
// A Cursor holds the row of the current line, a byte column into that
// line, and the line's handle. The row always equals the handle's
// position in the document; every movement updates both together so the
// editor never has to walk the chain to find where it is.
//
// Column bounds depend on the mode: Normal mode keeps the cursor on a
// character ([0, LastContentIndex]), while Insert mode also allows the
// slot just past the last character ([0, LastContentIndex+1]).
//
// Out-of-range movement is a silent no-op.
package cursor
