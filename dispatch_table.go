package vtcore

// escCharsetDesignators maps a charset-designation final byte to the
// NRCS variant it selects (§4.3).
var escCharsetDesignators = map[byte]NRCSVariant{
	'B': NRCSUSASCII,
	'A': NRCSUK,
	'0': NRCSDECSpecialGraphics,
	'1': NRCSVT52SpecialGraphics,
	'<': NRCSDECSupplemental,
	'4': NRCSDutch,
	'C': NRCSFinnish,
	'5': NRCSFinnish,
	'R': NRCSFrench,
	'Q': NRCSFrenchCanadian,
	'K': NRCSGerman,
	'Y': NRCSItalian,
	'E': NRCSNorwegian,
	'6': NRCSNorwegian,
	'Z': NRCSSpanish,
	'H': NRCSSwedish,
	'7': NRCSSwedish,
	'=': NRCSSwiss,
}

// dispatchEsc handles a finalized ESC sequence; collect holds any
// 0x20-0x2F intermediate bytes gathered before the final byte.
func (t *Terminal) dispatchEsc(final byte, collect []byte) {
	if len(collect) > 0 {
		switch collect[0] {
		case '(':
			t.setCharsetFromFinal(G0Slot, final)
			return
		case ')':
			t.setCharsetFromFinal(G1Slot, final)
			return
		case '*':
			t.setCharsetFromFinal(G2Slot, final)
			return
		case '+':
			t.setCharsetFromFinal(G3Slot, final)
			return
		case '#':
			if final == '8' {
				t.decaln()
			}
			return
		case ' ': // S7C1T / S8C1T (§4.6 "Reports" 7-bit/8-bit response mode)
			switch final {
			case 'F':
				t.s8c1t = false
			case 'G':
				t.s8c1t = true
			}
			return
		}
	}

	switch final {
	case 'D': // IND
		t.linefeed()
	case 'E': // NEL
		t.newline(true)
	case 'H': // HTS
		t.horizontalTabSet()
	case 'M': // RI
		t.reverseIndex()
	case 'N': // SS2
		t.state.charset.singleShift = SingleShiftG2
	case 'O': // SS3
		t.state.charset.singleShift = SingleShiftG3
	case 'Z': // DECID
		t.deviceAttributes()
	case 'c': // RIS
		t.resetToInitialState()
	case '=': // DECPAM
		t.mode |= ModeKeypadApplication
	case '>': // DECPNM
		t.mode &^= ModeKeypadApplication
	case '7': // DECSC
		t.saveCursor()
	case '8': // DECRC
		t.restoreCursor()
	case '\\': // ST outside a string: no-op
	}
}

func (t *Terminal) setCharsetFromFinal(slot CharsetSlot, final byte) {
	if v, ok := escCharsetDesignators[final]; ok {
		t.setActiveCharset(slot, v)
	}
}

// dispatchCSI handles a finalized CSI sequence by its final byte.
func (t *Terminal) dispatchCSI(final byte) {
	n0 := t.parser.param(0, 0)
	n1 := t.parser.param(0, 1)
	intermediate := t.parser.intermediate()

	switch final {
	case '@':
		t.insertChars(n1)
	case 'A':
		t.cursorUp(n1, true)
	case 'B':
		t.cursorDown(n1, true)
	case 'C':
		t.cursorRight(n1)
	case 'D':
		t.cursorLeft(n1)
	case 'E':
		t.cursorDown(n1, false)
		t.state.Saveable.CursorX = 0
	case 'F':
		t.cursorUp(n1, false)
		t.state.Saveable.CursorX = 0
	case 'G', '`':
		t.cursorCol(n1 - 1)
	case 'H', 'f':
		t.cursorPosition(t.parser.param(0, 1)-1, t.parser.param(1, 1)-1)
	case 'I':
		if n1 <= 0 {
			n1 = 1
		}
		for i := 0; i < n1; i++ {
			t.advanceToNextTabStop()
		}
	case 'J':
		t.erase(n0, true)
	case 'K':
		t.erase(n0, false)
	case 'L':
		t.insertLines(n1)
	case 'M':
		t.deleteLines(n1)
	case 'P':
		t.deleteChars(n1)
	case 'S':
		if n1 <= 0 {
			n1 = 1
		}
		t.scrollUpRegion(t.scrollTop, t.scrollBottom, n1)
	case 'T':
		if n1 <= 0 {
			n1 = 1
		}
		t.scrollDownRegion(t.scrollTop, t.scrollBottom, n1)
	case 'X':
		t.eraseChars(n1)
	case 'Z':
		t.retreatToPrevTabStop(n1)
	case 'a':
		t.cursorRight(n1)
	case 'c':
		t.deviceAttributes()
	case 'd':
		t.cursorRow(n1 - 1)
	case 'e':
		t.cursorDown(n1, false)
	case 'g':
		t.clearTabs(n0)
	case 'h':
		t.setMode(true)
	case 'l':
		t.setMode(false)
	case 'm':
		t.applySGR()
	case 'n':
		t.deviceStatusReport(n0)
	case 'q':
		switch {
		case intermediate == '"':
			t.decsca(n0)
		case t.parser.privateMarker() == '>':
			t.xtversion()
		}
	case 'r':
		t.decstbm()
	case 's':
		t.saveCursor()
	case 'u':
		t.restoreCursor()
	case 'x':
		t.decreqtparm(n0)
	case 'y':
		if intermediate == '$' {
			t.decrqm(t.parser.isPrivateMarker(), t.parser.param(0, 0))
		}
	case 'p':
		if intermediate == '!' {
			t.softReset()
		}
	}
}

func (t *Terminal) erase(mode int, screen bool) {
	switch mode {
	case 0:
		if screen {
			t.eraseScreen(t.state.Saveable.CursorY, t.state.Saveable.CursorX, t.height-1, t.width-1, false)
		} else {
			t.eraseLine(t.state.Saveable.CursorX, t.width-1, false)
		}
	case 1:
		if screen {
			t.eraseScreen(0, 0, t.state.Saveable.CursorY, t.state.Saveable.CursorX, false)
		} else {
			t.eraseLine(0, t.state.Saveable.CursorX, false)
		}
	case 2:
		if screen {
			t.eraseWholeDisplay()
		} else {
			t.eraseLine(0, t.width-1, false)
		}
	case 3:
		if screen {
			t.eraseWholeDisplay()
			t.scrollback = NewScrollback(t.scrollbackMax)
			t.scrollback.SetImageHorizon(t.height * 3)
		}
	}
}

func (t *Terminal) decsca(n int) {
	t.state.Saveable.Attrs.Protect = n == 1 || n == 2
}

// decstbm implements DECSTBM: sets the scroll region and homes the
// cursor per origin mode.
func (t *Terminal) decstbm() {
	top := t.parser.param(0, 1) - 1
	bottom := t.parser.param(1, t.height) - 1
	top = clamp(top, 0, t.height-1)
	bottom = clamp(bottom, 0, t.height-1)
	if top >= bottom {
		top, bottom = 0, t.height-1
	}
	t.scrollTop = top
	t.scrollBottom = bottom
	t.cursorPosition(0, 0)
}

// softReset implements DECSTR: resets modes and attributes without
// touching the display contents.
func (t *Terminal) softReset() {
	t.state.Saveable.Attrs.Reset()
	t.state.Saveable.OriginMode = false
	t.mode &^= ModeOrigin
	t.mode |= ModeLineWrap
	t.scrollTop = 0
	t.scrollBottom = t.height - 1
	t.state.Saveable.CursorX = 0
	t.state.Saveable.CursorY = 0
	t.clearPendingWrap()
}

// dispatchVT52 handles a VT52-submode ESC final byte (§1 "VT52 mode").
func (t *Terminal) dispatchVT52(final byte) {
	switch final {
	case 'A':
		t.cursorUp(1, false)
	case 'B':
		t.cursorDown(1, false)
	case 'C':
		t.cursorRight(1)
	case 'D':
		t.cursorLeft(1)
	case 'H':
		t.cursorPosition(0, 0)
	case 'I':
		t.reverseIndex()
	case 'J':
		t.eraseScreen(t.state.Saveable.CursorY, t.state.Saveable.CursorX, t.height-1, t.width-1, false)
	case 'K':
		t.eraseLine(t.state.Saveable.CursorX, t.width-1, false)
	case 'Z':
		t.writeOut([]byte("\x1b/Z"))
	case '=':
		t.mode |= ModeKeypadApplication
	case '>':
		t.mode &^= ModeKeypadApplication
	}
}
