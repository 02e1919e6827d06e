// Package viewport maps document rows to the visible screen window.
package viewport

import "sync"

// StatusRows is the number of screen rows reserved below the text area.
const StatusRows = 1

// Viewport is the visible window of document rows, [MinRow, MaxRow].
// MaxRow-MinRow+1 always equals Height; the window may extend past the
// end of a document shorter than the screen.
type Viewport struct {
	mu sync.RWMutex

	minRow int
	height int
	width  int
}

// New creates a viewport showing height rows starting at row 0.
// Height and width are clamped to a minimum of 1.
func New(height, width int) *Viewport {
	v := &Viewport{}
	v.setSize(height, width)
	return v
}

// FromScreen creates a viewport for a screen of the given size,
// reserving the status rows.
func FromScreen(screenRows, screenCols int) *Viewport {
	return New(screenRows-StatusRows, screenCols)
}

func (v *Viewport) setSize(height, width int) {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	v.height = height
	v.width = width
}

// MinRow returns the first visible document row.
func (v *Viewport) MinRow() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.minRow
}

// MaxRow returns the last visible document row.
func (v *Viewport) MaxRow() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.minRow + v.height - 1
}

// Height returns the number of visible text rows.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// Width returns the number of visible columns.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Contains reports whether row is inside the window.
func (v *Viewport) Contains(row int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return row >= v.minRow && row <= v.minRow+v.height-1
}

// ScreenRow converts a document row to a screen row.
// Returns -1 if the row is not visible.
func (v *Viewport) ScreenRow(row int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if row < v.minRow || row > v.minRow+v.height-1 {
		return -1
	}
	return row - v.minRow
}

// Resize adapts the window to a new screen size. MinRow is kept and
// MaxRow recomputed; call Sync afterwards to bring the cursor row back
// into view.
func (v *Viewport) Resize(screenRows, screenCols int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setSize(screenRows-StatusRows, screenCols)
}
