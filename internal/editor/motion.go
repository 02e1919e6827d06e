package editor

import (
	"github.com/dshills/padvi/internal/engine/document"
	"github.com/dshills/padvi/internal/engine/indent"
	"github.com/dshills/padvi/internal/input/mode"
)

func (e *Editor) moveLeft() {
	e.cur.MoveLeft()
}

func (e *Editor) moveRight() {
	e.cur.MoveRight(e.inInsert())
}

func (e *Editor) moveUp() {
	e.cur.MoveUp()
}

func (e *Editor) moveDown() {
	e.cur.MoveDown()
}

func (e *Editor) moveFirst() {
	e.cur.First()
}

func (e *Editor) moveLast() {
	e.cur.Last()
}

// enterNormal leaves Insert or Command mode. From Insert the cursor
// steps back one column so it rests on a character.
func (e *Editor) enterNormal(_ *mode.Action) error {
	if e.inInsert() {
		if c := e.cur.Col(); c > 0 {
			e.cur.SetCol(c - 1)
		}
		e.cur.Clamp(false)
	}
	return e.modes.Switch(mode.ModeNormal)
}

func (e *Editor) enterCommand(_ *mode.Action) error {
	return e.modes.Switch(mode.ModeCommand)
}

// enterInsert positions the cursor for the insert command and switches
// to Insert mode.
func (e *Editor) enterInsert(a *mode.Action) error {
	h := e.cur.Line()
	l := e.doc.Line(h)

	switch a.Position() {
	case mode.InsertLineStart:
		e.cur.SetCol(l.FirstNonSpace())
	case mode.InsertAfter:
		if !l.IsBlank() {
			e.cur.SetCol(e.cur.Col() + 1)
		}
	case mode.InsertLineEnd:
		if l.IsBlank() {
			e.cur.SetCol(0)
		} else {
			e.cur.SetCol(l.LastContentIndex() + 1)
		}
	case mode.InsertLineBelow:
		if err := e.openLine(true); err != nil {
			return err
		}
	case mode.InsertLineAbove:
		if err := e.openLine(false); err != nil {
			return err
		}
	}
	e.cur.Clamp(true)
	return e.modes.Switch(mode.ModeInsert)
}

// openLine inserts an indented empty line below or above the cursor
// and moves onto it. The indentation follows the line that will precede
// the new one.
func (e *Editor) openLine(below bool) error {
	h := e.cur.Line()
	row := e.cur.Row()

	prev, next, newRow := h, e.doc.Next(h), row+1
	if !below {
		prev, next, newRow = e.doc.Prev(h), h, row
	}

	width := 0
	if e.opts.AutoIndent {
		width = indent.Auto(e.doc, prev, e.opts.IndentWidth)
	}
	content := append(indent.Spaces(width), '\n')

	nh, err := e.doc.InsertBetween(content, prev, next)
	if err != nil {
		return err
	}
	if prev != document.NoLine {
		e.drawRow(newRow-1, prev)
	}
	e.insertRow(newRow, nh)
	e.cur.Set(nh, newRow, width)
	return nil
}
