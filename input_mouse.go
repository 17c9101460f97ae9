package vtcore

import "fmt"

// MouseButton identifies which button (or wheel direction) a mouse
// event reports.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone
	MouseButtonWheelUp
	MouseButtonWheelDown
)

// MouseEventKind distinguishes press/release/motion for the
// button-event and any-event protocols.
type MouseEventKind uint8

const (
	MouseEventPress MouseEventKind = iota
	MouseEventRelease
	MouseEventMotion
)

// MouseEvent is one logical mouse action the caller wants translated
// to outbound bytes per the active mouse protocol/encoding (§4.7).
type MouseEvent struct {
	Kind      MouseEventKind
	Button    MouseButton
	X, Y      int // zero-based column/row
	PixelX    int
	PixelY    int
	Modifiers KeyModifiers
}

// EncodeMouse implements §4.7's mouse translation, returning the bytes
// that should be written to the outbound stream, or nil when the
// active protocol doesn't report this event.
func (t *Terminal) EncodeMouse(ev MouseEvent) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.encodeMouseLocked(ev)
}

func (t *Terminal) encodeMouseLocked(ev MouseEvent) []byte {
	switch t.mouseProtocol {
	case MouseOff:
		return nil
	case MouseX10:
		if ev.Kind != MouseEventPress {
			return nil
		}
	case MouseNormal:
		if ev.Kind == MouseEventMotion {
			return nil
		}
	case MouseButtonEvent:
		if ev.Kind == MouseEventMotion && ev.Button == MouseButtonNone {
			return nil
		}
	case MouseAnyEvent:
		// all events reported
	}

	cb := mouseButtonCode(ev)
	switch t.mouseEncoding {
	case MouseEncodingSGR:
		return encodeSGRMouse(cb, ev.X+1, ev.Y+1, ev.Kind == MouseEventRelease)
	case MouseEncodingSGRPixels:
		return encodeSGRMouse(cb, ev.PixelX, ev.PixelY, ev.Kind == MouseEventRelease)
	case MouseEncodingUTF8:
		return encodeUTF8Mouse(cb, ev.X+1, ev.Y+1)
	default:
		return encodeX10Mouse(cb, ev.X+1, ev.Y+1)
	}
}

// mouseButtonCode builds the Cb byte value (sans the 32 offset) per the
// xterm mouse-tracking button+modifier encoding.
func mouseButtonCode(ev MouseEvent) int {
	var cb int
	switch ev.Button {
	case MouseButtonLeft:
		cb = 0
	case MouseButtonMiddle:
		cb = 1
	case MouseButtonRight:
		cb = 2
	case MouseButtonNone:
		cb = 3
	case MouseButtonWheelUp:
		cb = 64
	case MouseButtonWheelDown:
		cb = 65
	}
	if ev.Kind == MouseEventMotion {
		cb |= 32
	}
	if ev.Modifiers&ModShift != 0 {
		cb |= 4
	}
	if ev.Modifiers&ModAlt != 0 {
		cb |= 8
	}
	if ev.Modifiers&ModCtrl != 0 {
		cb |= 16
	}
	return cb
}

// encodeX10Mouse produces the original X10 binary-coordinate report.
// Coordinates beyond 223 (255-32) saturate rather than wrap, since the
// format has no escape for larger values.
func encodeX10Mouse(cb, col, row int) []byte {
	clampCoord := func(v int) byte {
		if v > 223 {
			v = 223
		}
		if v < 1 {
			v = 1
		}
		return byte(v + 32)
	}
	return []byte{0x1B, '[', 'M', byte(cb + 32), clampCoord(col), clampCoord(row)}
}

func encodeUTF8Mouse(cb, col, row int) []byte {
	out := []byte{0x1B, '[', 'M', byte(cb + 32)}
	out = append(out, encodeMouseUTF8Coord(col)...)
	out = append(out, encodeMouseUTF8Coord(row)...)
	return out
}

// encodeMouseUTF8Coord encodes a coordinate as UTF-8 the way xterm's
// extended X10 mode does: value+32 as a Unicode code point.
func encodeMouseUTF8Coord(v int) []byte {
	return []byte(string(rune(v + 32)))
}

func encodeSGRMouse(cb, col, row int, release bool) []byte {
	final := byte('M')
	if release {
		final = 'm'
	}
	return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", cb, col, row, final))
}
