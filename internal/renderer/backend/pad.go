package backend

import "bytes"

// Pad holds the displayed text of every document row, like an
// off-screen curses pad. Rows are stored without their trailing newline.
type Pad struct {
	rows [][]byte
}

// NewPad creates an empty pad.
func NewPad() *Pad {
	return &Pad{}
}

// Len returns the number of rows.
func (p *Pad) Len() int {
	return len(p.rows)
}

// Row returns the text of a row, or nil when out of range.
func (p *Pad) Row(row int) []byte {
	if row < 0 || row >= len(p.rows) {
		return nil
	}
	return p.rows[row]
}

// Set replaces a row, extending the pad with empty rows when needed.
func (p *Pad) Set(row int, text []byte) {
	if row < 0 {
		return
	}
	for len(p.rows) <= row {
		p.rows = append(p.rows, nil)
	}
	p.rows[row] = append(p.rows[row][:0], bytes.TrimSuffix(text, []byte{'\n'})...)
}

// Insert opens an empty row at row.
func (p *Pad) Insert(row int) {
	if row < 0 {
		return
	}
	if row >= len(p.rows) {
		p.Set(row, nil)
		return
	}
	p.rows = append(p.rows, nil)
	copy(p.rows[row+1:], p.rows[row:])
	p.rows[row] = nil
}

// Delete removes a row.
func (p *Pad) Delete(row int) {
	if row < 0 || row >= len(p.rows) {
		return
	}
	copy(p.rows[row:], p.rows[row+1:])
	p.rows[len(p.rows)-1] = nil
	p.rows = p.rows[:len(p.rows)-1]
}

// Truncate drops every row at or after n.
func (p *Pad) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(p.rows) {
		clear(p.rows[n:])
		p.rows = p.rows[:n]
	}
}

// Lines returns the text of every row as strings.
func (p *Pad) Lines() []string {
	out := make([]string, len(p.rows))
	for i, r := range p.rows {
		out[i] = string(r)
	}
	return out
}
