package vtcore

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Terminal) clearPendingWrap() {
	t.pendingWrapArmed = false
}

// cursorUp/Down/Left/Right move the cursor n rows/columns, optionally
// honoring the scroll region as the clamp boundary (§4.6).
func (t *Terminal) cursorUp(n int, honorRegion bool) {
	if n <= 0 {
		n = 1
	}
	lo := 0
	if honorRegion && t.state.Saveable.CursorY >= t.scrollTop {
		lo = t.scrollTop
	}
	t.state.Saveable.CursorY = clamp(t.state.Saveable.CursorY-n, lo, t.height-1)
	t.clearPendingWrap()
	t.notifyCursor()
}

func (t *Terminal) cursorDown(n int, honorRegion bool) {
	if n <= 0 {
		n = 1
	}
	hi := t.height - 1
	if honorRegion && t.state.Saveable.CursorY <= t.scrollBottom {
		hi = t.scrollBottom
	}
	t.state.Saveable.CursorY = clamp(t.state.Saveable.CursorY+n, 0, hi)
	t.clearPendingWrap()
	t.notifyCursor()
}

func (t *Terminal) cursorLeft(n int) {
	if n <= 0 {
		n = 1
	}
	t.state.Saveable.CursorX = clamp(t.state.Saveable.CursorX-n, 0, t.effectiveRightMargin())
	t.clearPendingWrap()
	t.notifyCursor()
}

func (t *Terminal) cursorRight(n int) {
	if n <= 0 {
		n = 1
	}
	t.state.Saveable.CursorX = clamp(t.state.Saveable.CursorX+n, 0, t.effectiveRightMargin())
	t.clearPendingWrap()
	t.notifyCursor()
}

// cursorPosition implements CUP/HVP: row/col are 0-based here (callers
// convert from the 1-based wire parameters). Origin mode offsets row by
// scroll_region_top and confines it to the region.
func (t *Terminal) cursorPosition(row, col int) {
	margin := t.effectiveRightMargin()
	col = clamp(col, 0, margin)
	if t.mode&ModeOrigin != 0 {
		row = clamp(row+t.scrollTop, t.scrollTop, t.scrollBottom)
	} else {
		row = clamp(row, 0, t.height-1)
	}
	t.state.Saveable.CursorX = col
	t.state.Saveable.CursorY = row
	t.clearPendingWrap()
	t.notifyCursor()
}

func (t *Terminal) cursorCol(col int) {
	t.cursorPosition(t.state.Saveable.CursorY, col)
}

func (t *Terminal) cursorRow(row int) {
	t.cursorPosition(row, t.state.Saveable.CursorX)
}

func (t *Terminal) notifyCursor() {
	t.listener.CursorMoved(t.state.Saveable.CursorX, t.state.Saveable.CursorY)
}

// saveCursor/restoreCursor implement DECSC/DECRC: a plain value copy,
// never aliased with current_state (§9).
func (t *Terminal) saveCursor() {
	t.saved.Saveable = t.state.Saveable
	t.saved.Saveable.OriginMode = t.mode&ModeOrigin != 0
	t.saved.Saveable.LineWrap = t.mode&ModeLineWrap != 0
}

func (t *Terminal) restoreCursor() {
	t.state.Saveable = t.saved.Saveable
	t.setFlag(ModeOrigin, t.state.Saveable.OriginMode)
	t.setFlag(ModeLineWrap, t.state.Saveable.LineWrap)
	t.state.Saveable.CursorX = clamp(t.state.Saveable.CursorX, 0, t.effectiveRightMargin())
	t.state.Saveable.CursorY = clamp(t.state.Saveable.CursorY, 0, t.height-1)
	t.clearPendingWrap()
	t.notifyCursor()
}

// advanceToNextTabStop moves the cursor to the first stop strictly
// greater than cursor_x, or the right margin if none exists.
func (t *Terminal) advanceToNextTabStop() {
	x := t.state.Saveable.CursorX
	margin := t.effectiveRightMargin()
	next := margin
	for c := x + 1; c <= margin; c++ {
		if t.tabStops[c] {
			next = c
			break
		}
	}
	t.state.Saveable.CursorX = next
	t.notifyCursor()
}

func (t *Terminal) retreatToPrevTabStop(n int) {
	if n <= 0 {
		n = 1
	}
	x := t.state.Saveable.CursorX
	for ; n > 0; n-- {
		found := 0
		for c := x - 1; c >= 0; c-- {
			if t.tabStops[c] {
				found = c
				break
			}
		}
		x = found
	}
	t.state.Saveable.CursorX = x
	t.notifyCursor()
}

func (t *Terminal) horizontalTabSet() {
	t.tabStops[t.state.Saveable.CursorX] = true
}

func (t *Terminal) clearTabs(mode int) {
	switch mode {
	case 0:
		delete(t.tabStops, t.state.Saveable.CursorX)
	case 3:
		t.tabStops = make(map[int]bool)
	}
}

// linefeed implements LF/IND: when the scroll region spans the whole
// screen and the cursor sits at the bottom, the top line is promoted to
// scrollback instead of a generic scroll_up (§4.6).
func (t *Terminal) linefeed() {
	if t.state.Saveable.CursorY == t.scrollBottom {
		if t.scrollTop == 0 && t.scrollBottom == t.height-1 {
			t.promoteTopLineToScrollback()
		} else {
			t.scrollUpRegion(t.scrollTop, t.scrollBottom, 1)
		}
	} else if t.state.Saveable.CursorY < t.height-1 {
		t.state.Saveable.CursorY++
	}
	t.notifyCursor()
	t.markDirty()
}

func (t *Terminal) promoteTopLineToScrollback() {
	top := t.display[0]
	t.scrollback.Push(top)
	copy(t.display, t.display[1:])
	t.display[len(t.display)-1] = t.newBlankLine()
}

func (t *Terminal) newBlankLine() *DisplayLine {
	l := NewDisplayLine(t.width)
	if t.mode&ModeReverseVideo != 0 {
		l.SetReverseColor(true)
	}
	return l
}

func (t *Terminal) reverseIndex() {
	if t.state.Saveable.CursorY == t.scrollTop {
		t.scrollDownRegion(t.scrollTop, t.scrollBottom, 1)
	} else if t.state.Saveable.CursorY > 0 {
		t.state.Saveable.CursorY--
	}
	t.notifyCursor()
	t.markDirty()
}

func (t *Terminal) newline(withCR bool) {
	if withCR {
		t.state.Saveable.CursorX = 0
	}
	t.linefeed()
}
