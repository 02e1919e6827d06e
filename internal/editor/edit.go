package editor

import (
	"bytes"

	"github.com/dshills/padvi/internal/engine/document"
	"github.com/dshills/padvi/internal/engine/indent"
	"github.com/dshills/padvi/internal/input/mode"
)

// insertText inserts the bytes of a typed character at the cursor.
func (e *Editor) insertText(a *mode.Action) error {
	return e.insertBytes([]byte(a.String("text")))
}

// insertTab inserts one indent unit of spaces.
func (e *Editor) insertTab() error {
	return e.insertBytes(indent.Spaces(e.opts.IndentWidth))
}

// insertBytes inserts text at the cursor and moves past it. Either all
// of text goes in or, on failure, none of it does.
func (e *Editor) insertBytes(text []byte) error {
	h := e.cur.Line()
	if err := e.doc.Line(h).Insert(e.cur.Col(), text); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.cur.SetCol(e.cur.Col() + len(text))
	e.drawRow(e.cur.Row(), h)
	return nil
}

// deleteCh removes the byte before the cursor. At column zero the line
// is joined onto the previous one; at the very start of the document
// nothing happens.
func (e *Editor) deleteCh() error {
	h, row, col := e.cur.Line(), e.cur.Row(), e.cur.Col()
	l := e.doc.Line(h)

	if col > 0 {
		if err := l.RemoveByte(col - 1); err != nil {
			return err
		}
		e.doc.SetModified(true)
		e.cur.SetCol(col - 1)
		e.drawRow(row, h)
		return nil
	}
	if row == 0 {
		return nil
	}
	return e.joinUp()
}

// joinUp merges the current line into the previous one, overwriting the
// previous line's newline, and leaves the cursor at the join point.
func (e *Editor) joinUp() error {
	h, row := e.cur.Line(), e.cur.Row()
	prev := e.doc.Prev(h)
	p, l := e.doc.Line(prev), e.doc.Line(h)

	oldLen := p.Len()
	if err := p.Grow(l.Len()); err != nil {
		return err
	}
	if err := p.Truncate(oldLen - 1); err != nil {
		return err
	}
	if err := p.Append(l.View()); err != nil {
		return err
	}
	if _, err := e.doc.Remove(h); err != nil {
		return err
	}

	e.deleteRow(row)
	e.drawRow(row-1, prev)
	e.cur.Set(prev, row-1, oldLen-1)
	return nil
}

// deleteUnder removes the character under the cursor. On the newline,
// or past the end of the line, it behaves like deleteCh.
func (e *Editor) deleteUnder() error {
	h, col := e.cur.Line(), e.cur.Col()
	l := e.doc.Line(h)

	var err error
	if col < l.Len() && l.ByteAt(col) != '\n' {
		if err = l.RemoveByte(col); err == nil {
			e.doc.SetModified(true)
			e.drawRow(e.cur.Row(), h)
		}
	} else {
		err = e.deleteCh()
	}
	e.cur.Clamp(false)
	return err
}

// splitLine breaks the current line at the cursor. The text after the
// cursor moves to a new line below, indented when auto-indent is on.
func (e *Editor) splitLine() error {
	h, row, col := e.cur.Line(), e.cur.Row(), e.cur.Col()
	l := e.doc.Line(h)

	orig := l.Bytes()
	tail := orig[col:]
	if err := l.Truncate(col); err != nil {
		return err
	}
	if err := l.Append([]byte{'\n'}); err != nil {
		return err
	}

	width := 0
	content := tail
	if e.opts.AutoIndent {
		width = indent.Auto(e.doc, h, e.opts.IndentWidth)
		content = append(indent.Spaces(width), bytes.TrimLeft(tail, " ")...)
	}

	nh, err := e.doc.InsertBetween(content, h, e.doc.Next(h))
	if err != nil {
		// The head's buffer still holds room for its old content.
		_ = l.Truncate(0)
		_ = l.Append(orig)
		return err
	}
	e.doc.SetModified(true)
	e.drawRow(row, h)
	e.insertRow(row+1, nh)
	e.cur.Set(nh, row+1, width)
	return nil
}

// deleteLine moves the current line into the yank register and removes
// it. The last remaining line is emptied instead.
func (e *Editor) deleteLine() error {
	h, row := e.cur.Line(), e.cur.Row()
	l := e.doc.Line(h)
	e.setYank(l.Bytes())

	if e.doc.Count() == 1 {
		if err := l.Replace([]byte{'\n'}); err != nil {
			return err
		}
		e.doc.SetModified(true)
		e.drawRow(row, h)
		e.cur.Set(h, row, 0)
		return nil
	}

	wasHead := h == e.doc.Head()
	nh, err := e.doc.Remove(h)
	if err != nil {
		return err
	}
	e.deleteRow(row)
	if !wasHead {
		row--
	}
	e.cur.Set(nh, row, e.cur.Col())
	e.cur.Clamp(false)
	return nil
}

// yankLine copies the current line into the yank register.
func (e *Editor) yankLine() error {
	e.setYank(e.doc.Line(e.cur.Line()).Bytes())
	return nil
}

func (e *Editor) setYank(text []byte) {
	e.yank = text
	e.hasYank = true
}

// paste inserts the yank register as a new line below ("after") or
// above the cursor and moves onto it.
func (e *Editor) paste(a *mode.Action) error {
	if !e.hasYank {
		return nil
	}
	h, row := e.cur.Line(), e.cur.Row()
	after := a.Bool("after")

	prev, next, newRow := e.doc.Prev(h), h, row
	if after {
		prev, next, newRow = h, e.doc.Next(h), row+1
	}

	nh, err := e.doc.InsertBetween(bytes.Clone(e.yank), prev, next)
	if err != nil {
		return err
	}
	if prev != document.NoLine {
		e.drawRow(newRow-1, prev)
	}
	e.insertRow(newRow, nh)
	e.cur.Set(nh, newRow, 0)
	return nil
}

// indentLine shifts the current line right by one indent unit (>>).
func (e *Editor) indentLine() error {
	col, err := indent.Indent(e.doc, e.cur.Line(), e.opts.IndentWidth)
	if err != nil {
		return err
	}
	e.cur.SetCol(col)
	e.cur.Clamp(false)
	e.drawRow(e.cur.Row(), e.cur.Line())
	return nil
}

// outdentLine shifts the current line left by one indent unit (<<).
func (e *Editor) outdentLine() error {
	col, err := indent.Outdent(e.doc, e.cur.Line(), e.opts.IndentWidth)
	if err != nil {
		return err
	}
	e.cur.SetCol(col)
	e.cur.Clamp(false)
	e.drawRow(e.cur.Row(), e.cur.Line())
	return nil
}
