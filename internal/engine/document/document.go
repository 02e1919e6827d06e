package document

import (
	"errors"
	"fmt"

	"github.com/dshills/padvi/internal/engine/line"
)

// Errors returned by document operations.
var (
	ErrInvalidHandle = errors.New("invalid line handle")
	ErrLastLine      = errors.New("cannot remove the only line")
	ErrCorrupt       = errors.New("document chain corrupt")
)

// Handle addresses a line record in the document arena.
// Handles stay valid until the line they name is removed.
type Handle int32

// NoLine is the absent handle, used at chain boundaries.
const NoLine Handle = -1

// record is one arena slot.
type record struct {
	line *line.Line
	prev Handle
	next Handle
	live bool
}

// Document is an ordered, doubly-linked sequence of lines stored in an
// arena. It is not safe for concurrent use; the editor loop owns it.
type Document struct {
	records []record
	free    []Handle

	head  Handle
	tail  Handle
	count int

	path     string
	modified bool

	// lineLimit bounds the buffer capacity of every line.
	lineLimit int
}

// New creates a document holding a single empty line. Lines may grow to
// line.DefaultMaxCapacity bytes until SetLineLimit says otherwise.
func New(path string) *Document {
	d := &Document{path: path, lineLimit: line.DefaultMaxCapacity}
	_ = d.Load(nil) // a lone newline always fits
	return d
}

// Load replaces the document content with the given lines, in order.
// An empty sequence yields a single line containing only a newline.
// A line too long for the line limit fails the load with
// line.ErrOutOfMemory and leaves the document as it was.
func (d *Document) Load(lines [][]byte) error {
	if len(lines) == 0 {
		lines = [][]byte{{'\n'}}
	}
	buffers := make([]*line.Line, len(lines))
	for i, text := range lines {
		l, err := line.New(text, d.lineLimit)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		buffers[i] = l
	}

	d.free = d.free[:0]
	d.head, d.tail, d.count = NoLine, NoLine, 0
	d.records = make([]record, 0, len(buffers))
	for _, l := range buffers {
		h := d.alloc(l)
		d.link(h, d.tail, NoLine)
	}
	d.modified = false
	return nil
}

// SetLineLimit sets the buffer ceiling for every line, present and
// future. A non-positive limit selects line.DefaultMaxCapacity.
func (d *Document) SetLineLimit(limit int) {
	if limit <= 0 {
		limit = line.DefaultMaxCapacity
	}
	d.lineLimit = limit
	for h := d.head; h != NoLine; h = d.records[h].next {
		d.records[h].line.SetLimit(limit)
	}
}

// LineLimit returns the buffer ceiling applied to lines.
func (d *Document) LineLimit() int { return d.lineLimit }

// alloc places l in a free arena slot and returns its handle.
func (d *Document) alloc(l *line.Line) Handle {
	if n := len(d.free); n > 0 {
		h := d.free[n-1]
		d.free = d.free[:n-1]
		d.records[h] = record{line: l, prev: NoLine, next: NoLine, live: true}
		return h
	}
	d.records = append(d.records, record{line: l, prev: NoLine, next: NoLine, live: true})
	return Handle(len(d.records) - 1)
}

// link splices h between prev and next, updating boundaries and count.
func (d *Document) link(h, prev, next Handle) {
	r := &d.records[h]
	r.prev, r.next = prev, next
	if prev != NoLine {
		d.records[prev].next = h
	} else {
		d.head = h
	}
	if next != NoLine {
		d.records[next].prev = h
	} else {
		d.tail = h
	}
	d.count++
}

func (d *Document) valid(h Handle) bool {
	return h >= 0 && int(h) < len(d.records) && d.records[h].live
}

// InsertBetween creates a line holding content and splices it between
// prev and next; either may be NoLine at a boundary, but when both are
// given they must be adjacent.
//
// The newline invariant is kept: a tail that gains a successor gets a
// trailing newline, as does content that will not be the new tail.
func (d *Document) InsertBetween(content []byte, prev, next Handle) (Handle, error) {
	if prev != NoLine && !d.valid(prev) {
		return NoLine, fmt.Errorf("insert after %d: %w", prev, ErrInvalidHandle)
	}
	if next != NoLine && !d.valid(next) {
		return NoLine, fmt.Errorf("insert before %d: %w", next, ErrInvalidHandle)
	}
	if prev != NoLine && d.records[prev].next != next {
		return NoLine, fmt.Errorf("insert between %d and %d: lines are not adjacent: %w", prev, next, ErrInvalidHandle)
	}
	if prev == NoLine && next != NoLine && d.records[next].prev != NoLine {
		return NoLine, fmt.Errorf("insert before %d: not the head: %w", next, ErrInvalidHandle)
	}

	text := content
	if next != NoLine && (len(text) == 0 || text[len(text)-1] != '\n') {
		text = append(append(make([]byte, 0, len(content)+1), content...), '\n')
	}
	l, err := line.New(text, d.lineLimit)
	if err != nil {
		return NoLine, err
	}
	if prev != NoLine && !d.records[prev].line.HasNewline() {
		if err := d.records[prev].line.Append([]byte{'\n'}); err != nil {
			return NoLine, err
		}
	}

	h := d.alloc(l)
	d.link(h, prev, next)
	d.modified = true
	return h, nil
}

// Remove splices h out of the chain and returns the line that should
// become current: the next line when h was the head, otherwise the
// previous one. The only remaining line cannot be removed.
func (d *Document) Remove(h Handle) (Handle, error) {
	if !d.valid(h) {
		return NoLine, fmt.Errorf("remove %d: %w", h, ErrInvalidHandle)
	}
	if d.count == 1 {
		return NoLine, ErrLastLine
	}

	r := d.records[h]
	if r.prev != NoLine {
		d.records[r.prev].next = r.next
	} else {
		d.head = r.next
	}
	if r.next != NoLine {
		d.records[r.next].prev = r.prev
	} else {
		d.tail = r.prev
	}
	d.records[h] = record{prev: NoLine, next: NoLine}
	d.free = append(d.free, h)
	d.count--
	d.modified = true

	if r.prev == NoLine {
		return r.next, nil
	}
	return r.prev, nil
}

// Line returns the line stored at h, or nil for an invalid handle.
func (d *Document) Line(h Handle) *line.Line {
	if !d.valid(h) {
		return nil
	}
	return d.records[h].line
}

// Next returns the handle following h, or NoLine.
func (d *Document) Next(h Handle) Handle {
	if !d.valid(h) {
		return NoLine
	}
	return d.records[h].next
}

// Prev returns the handle preceding h, or NoLine.
func (d *Document) Prev(h Handle) Handle {
	if !d.valid(h) {
		return NoLine
	}
	return d.records[h].prev
}

// Head returns the first line.
func (d *Document) Head() Handle { return d.head }

// Tail returns the last line.
func (d *Document) Tail() Handle { return d.tail }

// Count returns the number of lines.
func (d *Document) Count() int { return d.count }

// Path returns the source path.
func (d *Document) Path() string { return d.path }

// SetPath sets the source path.
func (d *Document) SetPath(path string) { d.path = path }

// Modified reports whether the document changed since load or save.
func (d *Document) Modified() bool { return d.modified }

// SetModified sets the modified flag.
func (d *Document) SetModified(m bool) { d.modified = m }

// At returns the handle of the line at row, walking from the nearer end.
func (d *Document) At(row int) Handle {
	if row < 0 || row >= d.count {
		return NoLine
	}
	if row <= d.count/2 {
		h := d.head
		for i := 0; i < row; i++ {
			h = d.records[h].next
		}
		return h
	}
	h := d.tail
	for i := d.count - 1; i > row; i-- {
		h = d.records[h].prev
	}
	return h
}

// Index returns the row of h, or -1 when h is not in the chain.
func (d *Document) Index(h Handle) int {
	if !d.valid(h) {
		return -1
	}
	row := 0
	for p := d.records[h].prev; p != NoLine; p = d.records[p].prev {
		row++
	}
	return row
}

// Lines returns copies of every line's content, in order.
func (d *Document) Lines() [][]byte {
	out := make([][]byte, 0, d.count)
	for h := d.head; h != NoLine; h = d.records[h].next {
		out = append(out, d.records[h].line.Bytes())
	}
	return out
}

// Each calls fn for every line in order until fn returns false.
func (d *Document) Each(fn func(row int, h Handle, l *line.Line) bool) {
	row := 0
	for h := d.head; h != NoLine; h = d.records[h].next {
		if !fn(row, h, d.records[h].line) {
			return
		}
		row++
	}
}

// FirstNonSpace returns the first non-space offset of the line at h.
func (d *Document) FirstNonSpace(h Handle) int {
	if l := d.Line(h); l != nil {
		return l.FirstNonSpace()
	}
	return 0
}

// LastContentIndex returns the last content offset of the line at h.
func (d *Document) LastContentIndex(h Handle) int {
	if l := d.Line(h); l != nil {
		return l.LastContentIndex()
	}
	return 0
}

// EndsWithOpener reports whether the line at h opens a block.
func (d *Document) EndsWithOpener(h Handle) bool {
	if l := d.Line(h); l != nil {
		return l.EndsWithOpener()
	}
	return false
}

// Validate checks the chain invariants: at least one line, consistent
// links in both directions, count matching the reachable lines, and a
// trailing newline on every line but the tail.
func (d *Document) Validate() error {
	if d.count < 1 {
		return fmt.Errorf("count %d: %w", d.count, ErrCorrupt)
	}
	if !d.valid(d.head) || !d.valid(d.tail) {
		return fmt.Errorf("head %d tail %d: %w", d.head, d.tail, ErrCorrupt)
	}
	if d.records[d.head].prev != NoLine || d.records[d.tail].next != NoLine {
		return fmt.Errorf("boundary links: %w", ErrCorrupt)
	}

	n := 0
	prev := NoLine
	for h := d.head; h != NoLine; h = d.records[h].next {
		if !d.valid(h) {
			return fmt.Errorf("dead handle %d at row %d: %w", h, n, ErrCorrupt)
		}
		if d.records[h].prev != prev {
			return fmt.Errorf("row %d back link %d, want %d: %w", n, d.records[h].prev, prev, ErrCorrupt)
		}
		if h != d.tail && !d.records[h].line.HasNewline() {
			return fmt.Errorf("row %d lacks trailing newline: %w", n, ErrCorrupt)
		}
		prev = h
		n++
		if n > len(d.records) {
			return fmt.Errorf("cycle detected: %w", ErrCorrupt)
		}
	}
	if prev != d.tail {
		return fmt.Errorf("chain ends at %d, tail is %d: %w", prev, d.tail, ErrCorrupt)
	}
	if n != d.count {
		return fmt.Errorf("reachable %d, count %d: %w", n, d.count, ErrCorrupt)
	}
	return nil
}
