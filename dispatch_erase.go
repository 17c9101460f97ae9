package vtcore

// blankCellFor returns the fill cell erase operations use: a true blank
// under the VT10x policy, or a space carrying the current drawing
// attributes under the xterm back-color-erase policy (§4.6).
func (t *Terminal) blankCellFor() Cell {
	c := NewCell()
	if t.erasePolicy == EraseXTerm {
		c.CodePoint = ' '
		c.Attrs = t.state.Saveable.Attrs
	}
	return c
}

// eraseLine erases columns [start, end] inclusive of the cursor's row.
// honorProtected skips cells DECSCA marked protected.
func (t *Terminal) eraseLine(start, end int, honorProtected bool) {
	line := t.lineAt(t.state.Saveable.CursorY)
	if line == nil {
		return
	}
	fill := t.blankCellFor()
	for c := start; c <= end && c < line.Length(); c++ {
		if c < 0 {
			continue
		}
		if honorProtected && line.CharAt(c).Attrs.Protect {
			continue
		}
		line.Replace(c, fill)
	}
	t.markDirty()
}

// eraseScreen erases the inclusive rectangle from (topRow, topCol) to
// (botRow, botCol).
func (t *Terminal) eraseScreen(topRow, topCol, botRow, botCol int, honorProtected bool) {
	fill := t.blankCellFor()
	for y := topRow; y <= botRow && y < len(t.display); y++ {
		if y < 0 {
			continue
		}
		line := t.display[y]
		cs, ce := 0, line.Length()-1
		if y == topRow {
			cs = topCol
		}
		if y == botRow {
			ce = botCol
		}
		for c := cs; c <= ce && c < line.Length(); c++ {
			if c < 0 {
				continue
			}
			if honorProtected && line.CharAt(c).Attrs.Protect {
				continue
			}
			line.Replace(c, fill)
		}
	}
	t.markDirty()
}

// eraseWholeDisplay implements ED(2): clears every cell and also clears
// each line's double-width/double-height/reverse flags (§8).
func (t *Terminal) eraseWholeDisplay() {
	for _, line := range t.display {
		line.Clear()
	}
	t.markDirty()
}

func (t *Terminal) insertChars(n int) {
	if n <= 0 {
		n = 1
	}
	line := t.lineAt(t.state.Saveable.CursorY)
	if line == nil {
		return
	}
	fill := t.blankCellFor()
	for i := 0; i < n; i++ {
		line.Insert(t.state.Saveable.CursorX, fill)
	}
	t.markDirty()
}

func (t *Terminal) deleteChars(n int) {
	if n <= 0 {
		n = 1
	}
	line := t.lineAt(t.state.Saveable.CursorY)
	if line == nil {
		return
	}
	fill := t.blankCellFor()
	for i := 0; i < n; i++ {
		line.Delete(t.state.Saveable.CursorX, fill)
	}
	t.markDirty()
}

func (t *Terminal) eraseChars(n int) {
	if n <= 0 {
		n = 1
	}
	end := t.state.Saveable.CursorX + n - 1
	t.eraseLine(t.state.Saveable.CursorX, end, false)
}

func (t *Terminal) insertLines(n int) {
	if n <= 0 {
		n = 1
	}
	y := t.state.Saveable.CursorY
	if y < t.scrollTop || y > t.scrollBottom {
		return
	}
	t.scrollDownFrom(y, t.scrollBottom, n)
}

func (t *Terminal) deleteLines(n int) {
	if n <= 0 {
		n = 1
	}
	y := t.state.Saveable.CursorY
	if y < t.scrollTop || y > t.scrollBottom {
		return
	}
	t.scrollUpFrom(y, t.scrollBottom, n)
}

// scrollUpRegion/scrollDownRegion implement §4.6 scroll_up/scroll_down:
// if n >= region height the region is erased instead of shifted.
func (t *Terminal) scrollUpRegion(top, bottom, n int) {
	t.scrollUpFrom(top, bottom, n)
}

func (t *Terminal) scrollDownRegion(top, bottom, n int) {
	t.scrollDownFrom(top, bottom, n)
}

// newScrolledInLine builds the line that scrolls into view at the edge
// of a scroll region, filled with blankCellFor's cell: a true blank under
// EraseVT10x, the current drawing attributes (back-color-erase) under
// EraseXTerm.
func (t *Terminal) newScrolledInLine(reverse bool) *DisplayLine {
	line := NewDisplayLine(t.width)
	fill := t.blankCellFor()
	for c := 0; c < line.Length(); c++ {
		line.Replace(c, fill)
	}
	line.SetReverseColor(reverse)
	return line
}

func (t *Terminal) scrollUpFrom(top, bottom, n int) {
	height := bottom - top + 1
	if n >= height {
		t.eraseScreen(top, 0, bottom, t.width-1, false)
		return
	}
	fillReverse := t.mode&ModeReverseVideo != 0
	for i := 0; i < n; i++ {
		for y := top; y < bottom; y++ {
			t.display[y] = t.display[y+1]
		}
		t.display[bottom] = t.newScrolledInLine(fillReverse)
	}
	t.markDirty()
}

func (t *Terminal) scrollDownFrom(top, bottom, n int) {
	height := bottom - top + 1
	if n >= height {
		t.eraseScreen(top, 0, bottom, t.width-1, false)
		return
	}
	fillReverse := t.mode&ModeReverseVideo != 0
	for i := 0; i < n; i++ {
		for y := bottom; y > top; y-- {
			t.display[y] = t.display[y-1]
		}
		t.display[top] = t.newScrolledInLine(fillReverse)
	}
	t.markDirty()
}

func (t *Terminal) decaln() {
	for _, line := range t.display {
		for c := 0; c < line.Length(); c++ {
			line.SetChar(c, 'E')
		}
	}
	t.markDirty()
}
