package viewport

// Sync shifts the window by the smallest amount that makes row visible,
// preserving its height. Returns true if the window moved.
func (v *Viewport) Sync(row int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if row < 0 {
		row = 0
	}
	maxRow := v.minRow + v.height - 1
	switch {
	case row < v.minRow:
		v.minRow -= v.minRow - row
		return true
	case row > maxRow:
		v.minRow += row - maxRow
		return true
	}
	return false
}

// ScrollTo places row at the top of the window.
func (v *Viewport) ScrollTo(row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if row < 0 {
		row = 0
	}
	v.minRow = row
}
