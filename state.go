package vtcore

// CharsetSlot selects one of the four assignable character-set slots.
type CharsetSlot uint8

const (
	G0Slot CharsetSlot = iota
	G1Slot
	G2Slot
	G3Slot
)

// SaveableState is the subset of terminal state DECSC/DECRC copies:
// cursor position, origin mode, the four G-set assignments and which
// slot is invoked into GL/GR, the current drawing attributes, and
// line-wrap. The single-shift and shift-out state live in charsetState
// and are not saved. It is a plain value record; Save is a copy,
// Restore copies back, with no aliasing between the live and saved
// slots.
type SaveableState struct {
	CursorX, CursorY int
	OriginMode       bool
	Charsets         [4]NRCSVariant
	ActiveGL         CharsetSlot
	ActiveGR         CharsetSlot
	Attrs            Attributes
	LineWrap         bool
}

// defaultSaveableState returns the factory-reset saveable state: G0
// and GL default to US-ASCII, GR defaults to the G1 slot (also
// US-ASCII until reassigned), cursor at home, line wrap enabled.
func defaultSaveableState() SaveableState {
	return SaveableState{
		Charsets: [4]NRCSVariant{
			NRCSUSASCII, NRCSUSASCII, NRCSUSASCII, NRCSUSASCII,
		},
		ActiveGL: G0Slot,
		ActiveGR: G1Slot,
		LineWrap: true,
	}
}

// charsetState holds the parts of character-set selection that are
// NOT part of SaveableState: the one-shot SS2/SS3 armed state and the
// shift-out (SO/SI) toggle, both of which are session-scoped rather
// than save/restore scoped in the real hardware this emulates.
type charsetState struct {
	shiftOut    bool
	singleShift SingleShift
}

// resolveCharsetByte implements §4.3's selection rule for a single
// input byte, given whether the active profile is in VT52 mode.
func resolveCharsetByte(st *SaveableState, cs *charsetState, vt52 bool, b byte) rune {
	if vt52 {
		slot := G0Slot
		if cs.shiftOut {
			slot = G1Slot
		}
		if b >= 0x80 {
			return mapCharset(NRCSUSASCII, b)
		}
		return mapCharset(st.Charsets[slot], b)
	}

	if cs.singleShift != SingleShiftNone {
		slot := G2Slot
		if cs.singleShift == SingleShiftG3 {
			slot = G3Slot
		}
		cs.singleShift = SingleShiftNone
		return mapCharset(st.Charsets[slot], b)
	}

	slot := st.ActiveGL
	if cs.shiftOut {
		slot = G1Slot
	}
	if b >= 0x80 {
		slot = st.ActiveGR
	}
	return mapCharset(st.Charsets[slot], b)
}
