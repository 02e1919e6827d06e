// Package indent computes and applies leading-space indentation.
//
// All widths are in spaces; tabs are never produced.
package indent

import (
	"bytes"

	"github.com/dshills/padvi/internal/engine/document"
)

// DefaultWidth is the indent unit used when none is configured.
const DefaultWidth = 4

// Auto returns the indentation for a line following prev: the first
// non-space column of prev, plus one unit when prev opens a block.
// A missing prev yields 0.
func Auto(doc *document.Document, prev document.Handle, width int) int {
	if doc.Line(prev) == nil {
		return 0
	}
	n := doc.FirstNonSpace(prev)
	if doc.EndsWithOpener(prev) {
		n += width
	}
	return n
}

// Indent shifts the line right to the next multiple of width and
// returns the new first non-space column.
func Indent(doc *document.Document, h document.Handle, width int) (int, error) {
	l := doc.Line(h)
	if l == nil {
		return 0, document.ErrInvalidHandle
	}
	if width <= 0 {
		return l.FirstNonSpace(), nil
	}
	s := l.FirstNonSpace()
	add := width - s%width

	text := make([]byte, 0, l.Len()+add)
	text = append(text, bytes.Repeat([]byte{' '}, add)...)
	text = append(text, l.View()...)
	if err := l.Replace(text); err != nil {
		return s, err
	}
	doc.SetModified(true)
	return l.FirstNonSpace(), nil
}

// Outdent shifts the line left to the previous multiple of width and
// returns the new first non-space column. Unindented lines are left as is.
func Outdent(doc *document.Document, h document.Handle, width int) (int, error) {
	l := doc.Line(h)
	if l == nil {
		return 0, document.ErrInvalidHandle
	}
	if width <= 0 {
		return l.FirstNonSpace(), nil
	}
	s := l.FirstNonSpace()
	drop := s % width
	if drop == 0 {
		if s/width == 0 {
			return s, nil
		}
		drop = width
	}

	if err := l.Replace(l.View()[drop:]); err != nil {
		return s, err
	}
	doc.SetModified(true)
	return l.FirstNonSpace(), nil
}

// Spaces returns n space bytes.
func Spaces(n int) []byte {
	if n <= 0 {
		return nil
	}
	return bytes.Repeat([]byte{' '}, n)
}
