package line

import (
	"errors"
	"fmt"
)

// Errors returned by line operations.
var (
	ErrOutOfMemory = errors.New("line buffer exhausted")
	ErrOutOfRange  = errors.New("offset out of range")
)

// DefaultMaxCapacity is the buffer ceiling used when no limit is given.
const DefaultMaxCapacity = 1 << 30

// Line is a growable byte buffer holding one line of text,
// including its trailing newline when present.
//
// len(buf) is the capacity and is always a power of two strictly
// greater than length, leaving room for an implicit terminator.
// Growth never takes the capacity past limit.
type Line struct {
	buf    []byte
	length int
	limit  int
}

// New creates a line holding a copy of text whose buffer may grow to at
// most limit bytes. A non-positive limit selects DefaultMaxCapacity.
// Text that does not fit under the limit yields ErrOutOfMemory.
func New(text []byte, limit int) (*Line, error) {
	if limit <= 0 {
		limit = DefaultMaxCapacity
	}
	c := capacityFor(len(text))
	if c > limit {
		return nil, fmt.Errorf("line of %d bytes: %w", len(text), ErrOutOfMemory)
	}
	l := &Line{buf: make([]byte, c), limit: limit}
	l.length = copy(l.buf, text)
	return l, nil
}

// capacityFor returns the smallest power of two greater than n.
func capacityFor(n int) int {
	c := 1
	for c <= n {
		c <<= 1
	}
	return c
}

// Len returns the number of bytes in the line, newline included.
func (l *Line) Len() int {
	return l.length
}

// Cap returns the current buffer capacity.
func (l *Line) Cap() int {
	return len(l.buf)
}

// Limit returns the largest capacity the buffer may grow to.
func (l *Line) Limit() int {
	return l.limit
}

// SetLimit changes the growth ceiling. A non-positive limit selects
// DefaultMaxCapacity. Content already held is kept even when it exceeds
// the new limit; only further growth is refused.
func (l *Line) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultMaxCapacity
	}
	l.limit = limit
}

// View returns the line content without copying.
// The slice is only valid until the next mutation.
func (l *Line) View() []byte {
	return l.buf[:l.length]
}

// Bytes returns a copy of the line content.
func (l *Line) Bytes() []byte {
	out := make([]byte, l.length)
	copy(out, l.buf[:l.length])
	return out
}

// String returns the line content as a string.
func (l *Line) String() string {
	return string(l.buf[:l.length])
}

// ByteAt returns the byte at offset i, or 0 if i is out of range.
func (l *Line) ByteAt(i int) byte {
	if i < 0 || i >= l.length {
		return 0
	}
	return l.buf[i]
}

// HasNewline reports whether the line ends with a newline byte.
func (l *Line) HasNewline() bool {
	return l.length > 0 && l.buf[l.length-1] == '\n'
}

// IsBlank reports whether the line has no content besides a newline.
func (l *Line) IsBlank() bool {
	return l.length == 0 || (l.length == 1 && l.buf[0] == '\n')
}

// Grow makes room for extra more bytes, doubling the capacity until
// length+extra+1 fits. The line is left untouched on failure.
func (l *Line) Grow(extra int) error {
	if extra < 0 {
		return fmt.Errorf("grow by %d: %w", extra, ErrOutOfRange)
	}
	need := l.length + extra + 1
	if need <= len(l.buf) {
		return nil
	}
	c := len(l.buf)
	if c == 0 {
		c = 1
	}
	for c < need {
		if c > l.limit/2 {
			return fmt.Errorf("grow to %d bytes: %w", need, ErrOutOfMemory)
		}
		c <<= 1
	}
	nb := make([]byte, c)
	copy(nb, l.buf[:l.length])
	l.buf = nb
	return nil
}

// Insert inserts text at offset at, shifting the rest right. Room for
// all of text is reserved first, so on failure the line is unchanged.
func (l *Line) Insert(at int, text []byte) error {
	if at < 0 || at > l.length {
		return fmt.Errorf("insert at %d of %d: %w", at, l.length, ErrOutOfRange)
	}
	n := len(text)
	if err := l.Grow(n); err != nil {
		return err
	}
	copy(l.buf[at+n:l.length+n], l.buf[at:l.length])
	copy(l.buf[at:], text)
	l.length += n
	return nil
}

// RemoveByte removes the byte at offset at, shifting the rest left.
func (l *Line) RemoveByte(at int) error {
	if at < 0 || at >= l.length {
		return fmt.Errorf("remove at %d of %d: %w", at, l.length, ErrOutOfRange)
	}
	copy(l.buf[at:l.length-1], l.buf[at+1:l.length])
	l.length--
	l.buf[l.length] = 0
	return nil
}

// Replace resets the line to hold exactly text.
func (l *Line) Replace(text []byte) error {
	c := capacityFor(len(text))
	if c > l.limit {
		return fmt.Errorf("replace with %d bytes: %w", len(text), ErrOutOfMemory)
	}
	nb := make([]byte, c)
	l.length = copy(nb, text)
	l.buf = nb
	return nil
}

// Append adds text at the end of the line.
func (l *Line) Append(text []byte) error {
	if err := l.Grow(len(text)); err != nil {
		return err
	}
	copy(l.buf[l.length:], text)
	l.length += len(text)
	return nil
}

// Truncate shortens the line to n bytes, zero-filling the dropped tail.
func (l *Line) Truncate(n int) error {
	if n < 0 || n > l.length {
		return fmt.Errorf("truncate to %d of %d: %w", n, l.length, ErrOutOfRange)
	}
	clear(l.buf[n:l.length])
	l.length = n
	return nil
}

// LastContentIndex returns the offset of the last byte before the
// trailing newline, clamped to zero. An empty line yields 0.
func (l *Line) LastContentIndex() int {
	if l.length == 0 {
		return 0
	}
	i := l.length - 1
	if l.buf[i] == '\n' {
		i--
	}
	if i < 0 {
		return 0
	}
	return i
}

// contentLen returns the number of bytes excluding the trailing newline.
func (l *Line) contentLen() int {
	if l.HasNewline() {
		return l.length - 1
	}
	return l.length
}

// FirstNonSpace returns the offset of the first byte that is not a space.
// A line made only of spaces yields LastContentIndex.
func (l *Line) FirstNonSpace() int {
	n := l.contentLen()
	for i := 0; i < n; i++ {
		if l.buf[i] != ' ' {
			return i
		}
	}
	return l.LastContentIndex()
}

// EndsWithOpener reports whether the last significant byte, ignoring
// trailing spaces and the newline, opens a block.
func (l *Line) EndsWithOpener() bool {
	for i := l.length - 1; i >= 0; i-- {
		switch l.buf[i] {
		case ' ', '\n':
			continue
		case ':', '[', '(', '{':
			return true
		default:
			return false
		}
	}
	return false
}
