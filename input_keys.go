package vtcore

import "fmt"

// KeyModifiers is a bitmask of modifier keys held during a key event.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
)

// xtermModifierParam implements the xterm modifier-encoding table from
// §4.7: shift=2, alt=3, alt+shift=4, ctrl=5, ctrl+shift=6, ctrl+alt=7,
// ctrl+alt+shift=8. Returns 0 when no modifier is set (no parameter
// should be appended).
func xtermModifierParam(m KeyModifiers) int {
	switch m {
	case ModShift:
		return 2
	case ModAlt:
		return 3
	case ModAlt | ModShift:
		return 4
	case ModCtrl:
		return 5
	case ModCtrl | ModShift:
		return 6
	case ModCtrl | ModAlt:
		return 7
	case ModCtrl | ModAlt | ModShift:
		return 8
	default:
		return 0
	}
}

// Key identifies a logical key the input translator can encode. Named
// keys beyond plain runes (arrows, function keys, navigation) are
// listed explicitly; a plain character key is carried in Rune.
type Key uint8

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyEnter
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyEvent is one logical keypress the caller wants translated to
// outbound bytes.
type KeyEvent struct {
	Key       Key
	Rune      rune
	Modifiers KeyModifiers
}

// EncodeKey implements §4.7's keyboard translation, returning the bytes
// that should be written to the outbound stream. Returns nil when
// full-duplex is disabled (local-echo devices emit nothing here).
func (t *Terminal) EncodeKey(ev KeyEvent) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode&ModeFullDuplex == 0 {
		return nil
	}
	return t.encodeKeyLocked(ev)
}

func (t *Terminal) encodeKeyLocked(ev KeyEvent) []byte {
	if ev.Key == KeyRune {
		return t.encodeRuneKey(ev)
	}

	switch ev.Key {
	case KeyUp, KeyDown, KeyRight, KeyLeft:
		return t.encodeArrowKey(ev)
	case KeyHome:
		return t.encodeVariableFinal('H', ev.Modifiers, "1")
	case KeyEnd:
		return t.encodeVariableFinal('F', ev.Modifiers, "4")
	case KeyInsert:
		return t.encodeTildeKey(2, ev.Modifiers)
	case KeyDelete:
		return t.encodeTildeKey(3, ev.Modifiers)
	case KeyPageUp:
		return t.encodeTildeKey(5, ev.Modifiers)
	case KeyPageDown:
		return t.encodeTildeKey(6, ev.Modifiers)
	case KeyBackspace:
		if t.deviceType == DeviceVT100 || t.deviceType == DeviceVT102 {
			return []byte{0x08}
		}
		return []byte{0x7F}
	case KeyTab:
		return []byte{0x09}
	case KeyBacktab:
		if t.deviceType == DeviceXTerm {
			return []byte("\x1b[Z")
		}
		return nil
	case KeyEnter:
		if t.mode&ModeNewLine != 0 {
			return []byte("\r\n")
		}
		return []byte{0x0D}
	case KeyF1, KeyF2, KeyF3, KeyF4:
		return t.encodePF(ev.Key, ev.Modifiers)
	case KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10:
		return t.encodeFunctionKey(ev.Key, ev.Modifiers)
	case KeyF11:
		return t.encodeTildeKey(23, ev.Modifiers)
	case KeyF12:
		return t.encodeTildeKey(24, ev.Modifiers)
	}
	return nil
}

func (t *Terminal) encodeRuneKey(ev KeyEvent) []byte {
	r := ev.Rune
	if ev.Modifiers&ModCtrl != 0 && r >= 0x40 && r < 0x80 {
		b := byte(r) & 0x1F
		if ev.Modifiers&ModAlt != 0 {
			return []byte{0x1B, b}
		}
		return []byte{b}
	}
	if ev.Modifiers&ModAlt != 0 {
		return append([]byte{0x1B}, []byte(string(r))...)
	}
	return []byte(string(r))
}

func (t *Terminal) encodeArrowKey(ev KeyEvent) []byte {
	var final byte
	switch ev.Key {
	case KeyUp:
		final = 'A'
	case KeyDown:
		final = 'B'
	case KeyRight:
		final = 'C'
	case KeyLeft:
		final = 'D'
	}
	if t.state.vt52 {
		return []byte{0x1B, final}
	}
	if t.deviceType == DeviceXTerm {
		if mp := xtermModifierParam(ev.Modifiers); mp != 0 {
			return []byte(fmt.Sprintf("\x1b[1;%d%c", mp, final))
		}
	}
	switch t.arrowMode {
	case ArrowKeyVT100Application:
		return []byte(fmt.Sprintf("\x1bO%c", final))
	default:
		return []byte(fmt.Sprintf("\x1b[%c", final))
	}
}

func (t *Terminal) encodeVariableFinal(final byte, mods KeyModifiers, defaultParam string) []byte {
	if t.deviceType == DeviceXTerm {
		if mp := xtermModifierParam(mods); mp != 0 {
			return []byte(fmt.Sprintf("\x1b[%s;%d%c", defaultParam, mp, final))
		}
	}
	return []byte(fmt.Sprintf("\x1b[%c", final))
}

func (t *Terminal) encodeTildeKey(code int, mods KeyModifiers) []byte {
	if mp := xtermModifierParam(mods); mp != 0 && t.deviceType == DeviceXTerm {
		return []byte(fmt.Sprintf("\x1b[%d;%d~", code, mp))
	}
	return []byte(fmt.Sprintf("\x1b[%d~", code))
}

func (t *Terminal) encodePF(key Key, mods KeyModifiers) []byte {
	final := byte('P') + byte(key-KeyF1)
	if mp := xtermModifierParam(mods); mp != 0 && t.deviceType == DeviceXTerm {
		return []byte(fmt.Sprintf("\x1b[1;%d%c", mp, final))
	}
	return []byte(fmt.Sprintf("\x1bO%c", final))
}

// vt220FunctionCodes maps F5-F10 to the numbers of the VT220/xterm
// `ESC[nn~` tilde form; VT100/VT102 instead use ESC O with a final letter.
var vt220FunctionCodes = map[Key]int{
	KeyF5: 15, KeyF6: 17, KeyF7: 18, KeyF8: 19, KeyF9: 20, KeyF10: 21,
}

func (t *Terminal) encodeFunctionKey(key Key, mods KeyModifiers) []byte {
	code := vt220FunctionCodes[key]
	if t.deviceType == DeviceVT100 || t.deviceType == DeviceVT102 {
		final := byte('t') + byte(key-KeyF5)
		return []byte(fmt.Sprintf("\x1bO%c", final))
	}
	return t.encodeTildeKey(code, mods)
}
