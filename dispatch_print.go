package vtcore

// printRune implements the §4.5 print algorithm for one mapped code
// point arriving from GROUND.
func (t *Terminal) printRune(r rune) {
	margin := t.effectiveRightMargin()

	// Step 2: VT100 delayed autowrap.
	if t.state.Saveable.CursorX == margin && t.mode&ModeLineWrap != 0 {
		if !t.pendingWrapArmed {
			t.pendingWrapArmed = true
		} else {
			t.pendingWrapArmed = false
			t.newline(true)
			t.state.Saveable.CursorX = 0
		}
	}

	width := runeWidth(r)
	if width == 2 {
		t.printWideRune(r, margin)
		return
	}

	t.writeCellAtCursor(r)
	if !t.pendingWrapArmed {
		if t.state.Saveable.CursorX < margin {
			t.state.Saveable.CursorX++
		} else {
			t.pendingWrapArmed = true
		}
	}
	t.markDirty()
}

// printWideRune implements step 3: a double-width rune occupies two
// cells. If the second cell would land past the margin, both halves
// move to the next line instead of splitting across the wrap boundary.
func (t *Terminal) printWideRune(r rune, margin int) {
	line := t.lineAt(t.state.Saveable.CursorY)
	if line == nil {
		return
	}

	if t.state.Saveable.CursorX+1 > margin {
		t.newline(true)
		t.state.Saveable.CursorX = 0
		line = t.lineAt(t.state.Saveable.CursorY)
		if line == nil {
			return
		}
	}

	x := t.state.Saveable.CursorX
	left := NewCell()
	left.CodePoint = r
	left.Attrs = t.state.Saveable.Attrs
	left.WidthRole = CellWidthLeft

	right := NewCell()
	right.CodePoint = r
	right.Attrs = t.state.Saveable.Attrs
	right.WidthRole = CellWidthRight

	if t.glyphRenderer != nil {
		t.assignGlyphHalves(&left, &right, r)
	}

	if t.mode&ModeInsert != 0 {
		line.Insert(x, right)
		line.Insert(x, left)
	} else {
		line.Replace(x, left)
		if x+1 < line.Length() {
			line.Replace(x+1, right)
		}
	}

	t.state.Saveable.CursorX = clamp(x+2, 0, margin)
	t.markDirty()
}

// assignGlyphHalves rasterizes r once through the glyph renderer and,
// if that succeeds, gives the two cells the left and right UV halves
// under one new image ID. The raster itself is not kept. It runs for
// every wide character printed while a glyph renderer is installed.
func (t *Terminal) assignGlyphHalves(left, right *Cell, r rune) {
	_, err := t.glyphRenderer.Glyph(r)
	if err != nil {
		return
	}
	id := nextImageID()
	left.Image = &CellImageRef{ImageID: id, U0: 0, V0: 0, U1: 0.5, V1: 1}
	right.Image = &CellImageRef{ImageID: id, U0: 0.5, V0: 0, U1: 1, V1: 1}
}

func (t *Terminal) writeCellAtCursor(r rune) {
	line := t.lineAt(t.state.Saveable.CursorY)
	if line == nil {
		return
	}
	cell := NewCell()
	cell.CodePoint = r
	cell.Attrs = t.state.Saveable.Attrs

	if t.mode&ModeInsert != 0 {
		line.Insert(t.state.Saveable.CursorX, cell)
	} else {
		line.Replace(t.state.Saveable.CursorX, cell)
	}
}

// executeControl runs a C0 control code (below 0x20) from GROUND
// (§4.6). C1 bytes other than the introducers consumeByte intercepts
// are not executed.
func (t *Terminal) executeControl(b byte) {
	switch b {
	case 0x07: // BEL
		t.bell()
	case 0x08: // BS
		t.cursorLeft(1)
	case 0x09: // HT
		t.advanceToNextTabStop()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		t.linefeed()
	case 0x0D: // CR
		t.state.Saveable.CursorX = 0
		t.clearPendingWrap()
		t.notifyCursor()
	case 0x0E: // SO
		t.state.charset.shiftOut = true
	case 0x0F: // SI
		t.state.charset.shiftOut = false
	}
}

func (t *Terminal) bell() {
	// No audible output; observers that care can watch for a dirty
	// notification following a BEL if they track it themselves.
}
