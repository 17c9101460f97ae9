package vtcore

// applySGR walks the CSI parameter list for the 'm' final byte,
// mutating the current drawing attributes (§4.6 "Attributes (SGR)").
// A private `>` marker makes the whole sequence a no-op.
func (t *Terminal) applySGR() {
	if t.parser.privateMarker() == '>' {
		return
	}
	attrs := &t.state.Saveable.Attrs
	n := t.parser.numParams
	if n == 0 {
		attrs.Reset()
		return
	}
	for i := 0; i < n; i++ {
		p := t.parser.param(i, 0)
		switch {
		case p == 0:
			attrs.Reset()
		case p == 1:
			attrs.Bold = true
		case p == 22:
			attrs.Bold = false
		case p == 4:
			attrs.Underline = true
		case p == 24:
			attrs.Underline = false
		case p == 5:
			attrs.Blink = true
		case p == 25:
			attrs.Blink = false
		case p == 7:
			attrs.Reverse = true
		case p == 27:
			attrs.Reverse = false
		case p >= 30 && p <= 37:
			attrs.SetForegroundPalette(uint8(p - 30))
		case p == 38:
			i = t.applyExtendedColor(i, true)
		case p == 39:
			attrs.Fg = DefaultColor
		case p >= 40 && p <= 47:
			attrs.SetBackgroundPalette(uint8(p - 40))
		case p == 48:
			i = t.applyExtendedColor(i, false)
		case p == 49:
			attrs.Bg = DefaultColor
		case p >= 90 && p <= 97:
			attrs.SetForegroundPalette(uint8(p-90) + 8)
		case p >= 100 && p <= 107:
			attrs.SetBackgroundPalette(uint8(p-100) + 8)
		}
	}
}

// applyExtendedColor consumes the 38/48 multi-parameter color selector
// starting at index i (which holds the 38 or 48 itself), returning the
// index of the last parameter consumed.
func (t *Terminal) applyExtendedColor(i int, fg bool) int {
	attrs := &t.state.Saveable.Attrs
	n := t.parser.numParams
	if i+1 >= n {
		return i
	}
	mode := t.parser.param(i+1, 0)
	switch mode {
	case 5:
		if i+2 >= n {
			return i + 1
		}
		idx := uint8(t.parser.param(i+2, 0))
		if fg {
			attrs.SetForegroundPalette(idx)
		} else {
			attrs.SetBackgroundPalette(idx)
		}
		return i + 2
	case 2:
		if i+4 >= n {
			return n - 1
		}
		r := uint8(t.parser.param(i+2, 0))
		g := uint8(t.parser.param(i+3, 0))
		b := uint8(t.parser.param(i+4, 0))
		if fg {
			attrs.SetForegroundRGB(r, g, b)
		} else {
			attrs.SetBackgroundRGB(r, g, b)
		}
		return i + 4
	}
	return i + 1
}
