package vtcore

// setMode applies DECSET (set=true) / DECRST (set=false) for every
// parameter in the current CSI, distinguishing DEC-private (leading
// `?`) from ANSI mode numbers per §4.6.
func (t *Terminal) setMode(set bool) {
	private := t.parser.privateMarker() == '?'
	for i := 0; i < t.parser.numParams; i++ {
		n := t.parser.param(i, 0)
		if private {
			t.setPrivateMode(n, set)
		} else {
			t.setANSIMode(n, set)
		}
	}
}

func (t *Terminal) setANSIMode(n int, set bool) {
	switch n {
	case 4: // IRM
		t.setFlag(ModeInsert, set)
	case 20: // LNM
		t.setFlag(ModeNewLine, set)
	}
}

func (t *Terminal) setFlag(m TerminalMode, set bool) {
	if set {
		t.mode |= m
	} else {
		t.mode &^= m
	}
}

func (t *Terminal) setPrivateMode(n int, set bool) {
	switch n {
	case 1: // DECCKM
		if set {
			t.arrowMode = ArrowKeyVT100Application
		} else {
			t.arrowMode = ArrowKeyANSI
		}
	case 2: // DECANM
		t.state.vt52 = !set
	case 3: // DECCOLM
		t.decColumnMode(set)
	case 4: // DECSCLM — smooth scroll, accepted and ignored (non-goal)
	case 5: // DECSCNM
		t.setFlag(ModeReverseVideo, set)
		t.markDirty()
	case 6: // DECOM
		t.setFlag(ModeOrigin, set)
		t.cursorPosition(0, 0)
	case 7: // DECAWM
		t.setFlag(ModeLineWrap, set)
	case 25: // DECTCEM
		t.setFlag(ModeCursorVisible, set)
		t.markDirty()
	case 80: // DECSDM — fixed (non-inverted) polarity: set disables scrolling
		t.setFlag(ModeSixelScrolling, !set)
	case 1000:
		if set {
			t.mouseProtocol = MouseNormal
		} else {
			t.mouseProtocol = MouseOff
		}
	case 1002:
		if set {
			t.mouseProtocol = MouseButtonEvent
		} else {
			t.mouseProtocol = MouseOff
		}
	case 1003:
		if set {
			t.mouseProtocol = MouseAnyEvent
		} else {
			t.mouseProtocol = MouseOff
		}
	case 1005:
		if set {
			t.mouseEncoding = MouseEncodingUTF8
		}
	case 1006:
		if set {
			t.mouseEncoding = MouseEncodingSGR
		}
	case 1016:
		if set {
			t.mouseEncoding = MouseEncodingSGRPixels
		}
	case 1047, 1049:
		t.toggleAltScreen(set, n == 1049)
	case 1048:
		if set {
			t.saveCursor()
		} else {
			t.restoreCursor()
		}
	case 1070: // sixel shared palette — accepted and ignored, no separate palette kept
	case 2026:
		t.setFlag(ModeSynchronizedUpdate, set)
		if !set {
			t.flushIfDirty()
		}
	case 2004:
		t.setFlag(ModeBracketedPaste, set)
	}
}

// decColumnMode implements DECCOLM (Open Question 1): the xterm
// profile takes the width from columnsBackend when one is installed;
// otherwise, and always for the VT profiles, the width is 132 on set
// and 80 on reset. Both paths reset the scroll region to the full
// screen and home the cursor (§8).
func (t *Terminal) decColumnMode(set bool) {
	width := 80
	if set {
		width = 132
	}
	if t.deviceType == DeviceXTerm && t.columnsBackend != nil {
		width = t.columnsBackend()
	}
	t.resizeWidth(width)
	t.setFlag(ModeColumns132, set)
	t.scrollTop = 0
	t.scrollBottom = t.height - 1
	t.cursorPosition(0, 0)
	t.eraseWholeDisplay()
}

func (t *Terminal) resizeWidth(width int) {
	if width == t.width {
		return
	}
	t.width = width
	t.rightMargin = width - 1
	newDisplay := make([]*DisplayLine, t.height)
	for i := range newDisplay {
		newDisplay[i] = NewDisplayLine(width)
	}
	t.display = newDisplay
	t.resetTabStops()
}

// toggleAltScreen implements the alt-screen private modes without a
// secondary buffer: entering saves the cursor and, when clearOnEnter is
// set (mode 1049), erases the display; 1047 saves without erasing.
// Leaving restores the cursor.
func (t *Terminal) toggleAltScreen(set, clearOnEnter bool) {
	if set {
		t.saveCursor()
		if clearOnEnter {
			t.eraseWholeDisplay()
		}
	} else {
		t.restoreCursor()
	}
}

func (t *Terminal) setActiveCharset(slot CharsetSlot, variant NRCSVariant) {
	t.state.Saveable.Charsets[slot] = variant
}
