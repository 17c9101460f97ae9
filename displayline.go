package vtcore

// DisplayLine is a fixed-width row of cells plus the double-width,
// double-height, and reverse-video line flags §3 and §4.2 describe.
// Length always equals the configured terminal width; Insert and
// Delete shift a run of cells within that width and never grow or
// shrink it.
type DisplayLine struct {
	cells        []Cell
	doubleWidth  bool
	doubleHeight DoubleHeight
	reverseColor bool
}

// NewDisplayLine returns a blank line of the given physical width.
func NewDisplayLine(width int) *DisplayLine {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &DisplayLine{cells: cells}
}

// Length returns the line's fixed physical width.
func (l *DisplayLine) Length() int {
	return len(l.cells)
}

// CharAt returns the cell at index i. Out-of-range indices return a
// blank cell rather than panicking, matching the total-consume
// guarantee of §7.
func (l *DisplayLine) CharAt(i int) Cell {
	if i < 0 || i >= len(l.cells) {
		return NewCell()
	}
	return l.cells[i]
}

// Replace overwrites the cell at index i.
func (l *DisplayLine) Replace(i int, cell Cell) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	l.cells[i] = cell
}

// SetBlank resets the cell at index i to a true blank.
func (l *DisplayLine) SetBlank(i int) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	l.cells[i].Reset()
}

// SetChar overwrites the code point of the cell at index i, leaving
// its attributes and image reference untouched.
func (l *DisplayLine) SetChar(i int, codePoint rune) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	l.cells[i].CodePoint = codePoint
}

// SetAttr overwrites the attributes of the cell at index i.
func (l *DisplayLine) SetAttr(i int, attrs Attributes) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	l.cells[i].Attrs = attrs
}

// Insert shifts cells [i, width-2] right by one, dropping the
// rightmost cell, then writes cell at index i.
func (l *DisplayLine) Insert(i int, cell Cell) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	for c := len(l.cells) - 1; c > i; c-- {
		l.cells[c] = l.cells[c-1]
	}
	l.cells[i] = cell
}

// Delete shifts cells [i+1, width-1] left by one, then fills the
// vacated rightmost slot with fill.
func (l *DisplayLine) Delete(i int, fill Cell) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	for c := i; c < len(l.cells)-1; c++ {
		l.cells[c] = l.cells[c+1]
	}
	l.cells[len(l.cells)-1] = fill
}

// IsImage reports whether any cell on the line carries an image
// fragment reference.
func (l *DisplayLine) IsImage() bool {
	for _, c := range l.cells {
		if c.Image != nil {
			return true
		}
	}
	return false
}

// ClearImages drops every cell's image reference, bounding memory for
// scrollback lines older than 3x the screen height (§5).
func (l *DisplayLine) ClearImages() {
	for i := range l.cells {
		l.cells[i].Image = nil
		l.cells[i].WidthRole = CellWidthNone
	}
}

func (l *DisplayLine) DoubleWidth() bool           { return l.doubleWidth }
func (l *DisplayLine) SetDoubleWidth(v bool)       { l.doubleWidth = v }
func (l *DisplayLine) DoubleHeightRole() DoubleHeight { return l.doubleHeight }
func (l *DisplayLine) SetDoubleHeightRole(v DoubleHeight) { l.doubleHeight = v }
func (l *DisplayLine) ReverseColor() bool          { return l.reverseColor }
func (l *DisplayLine) SetReverseColor(v bool)      { l.reverseColor = v }

// Clear resets every cell on the line to blank and drops the
// double-width/double-height/reverse flags, matching ED(2)'s
// requirement to also clear those per-line flags.
func (l *DisplayLine) Clear() {
	for i := range l.cells {
		l.cells[i].Reset()
	}
	l.doubleWidth = false
	l.doubleHeight = DoubleHeightNone
	l.reverseColor = false
}

// Copy returns a deep copy: an independent cells slice with
// independently-copyable Cell values (their Image pointers, if any,
// are shared, matching Cell.Copy's semantics).
func (l *DisplayLine) Copy() *DisplayLine {
	cells := make([]Cell, len(l.cells))
	copy(cells, l.cells)
	return &DisplayLine{
		cells:        cells,
		doubleWidth:  l.doubleWidth,
		doubleHeight: l.doubleHeight,
		reverseColor: l.reverseColor,
	}
}
