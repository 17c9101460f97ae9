package vtcore

import (
	"encoding/hex"
	"fmt"
)

// csiIntro returns the CSI introducer: 7-bit "ESC [" normally, or the
// 8-bit C1 CSI (0x9B) when s8c1t is set (§4.6 "Reports").
func (t *Terminal) csiIntro() string {
	if t.s8c1t {
		return "\x9b"
	}
	return "\x1b["
}

func (t *Terminal) dcsIntro() string {
	if t.s8c1t {
		return "\x90"
	}
	return "\x1bP"
}

func (t *Terminal) oscIntro() string {
	if t.s8c1t {
		return "\x9d"
	}
	return "\x1b]"
}

func (t *Terminal) stringTerm() string {
	if t.s8c1t {
		return "\x9c"
	}
	return "\x1b\\"
}

// deviceAttributes answers DA (primary, no private marker) and the
// xterm secondary ('>') variant. Any other marker, including the
// tertiary '=', gets the primary reply.
func (t *Terminal) deviceAttributes() {
	marker := t.parser.privateMarker()
	switch marker {
	case '>':
		t.writeOut([]byte(fmt.Sprintf("%s>1;10;0c", t.csiIntro())))
	default:
		var resp string
		switch t.deviceType {
		case DeviceVT100:
			resp = "?1;2c"
		case DeviceVT102:
			resp = "?6c"
		case DeviceVT220:
			resp = "?62;1;2;6;8;9;15;18;21;22c"
		case DeviceXTerm:
			resp = "?64;1;2;6;9;15;18;21;22c"
		}
		t.writeOut([]byte(t.csiIntro() + resp))
	}
}

// deviceStatusReport answers DSR: 5 = status OK, 6 = cursor position.
func (t *Terminal) deviceStatusReport(n int) {
	switch n {
	case 5:
		t.writeOut([]byte(t.csiIntro() + "0n"))
	case 6:
		row := t.state.Saveable.CursorY + 1
		col := t.state.Saveable.CursorX + 1
		if t.mode&ModeOrigin != 0 {
			row -= t.scrollTop
		}
		t.writeOut([]byte(fmt.Sprintf("%s%d;%dR", t.csiIntro(), row, col)))
	case 15:
		t.writeOut([]byte(t.csiIntro() + "?13n")) // printer not connected
	case 25:
		t.writeOut([]byte(t.csiIntro() + "?21n")) // user-defined keys locked
	}
}

// decreqtparm answers DECREQTPARM with a canned parity/speed report.
func (t *Terminal) decreqtparm(n int) {
	reply := 2
	if n == 0 {
		reply = 3
	}
	t.writeOut([]byte(fmt.Sprintf("%s%d;1;1;128;128;1;0x", t.csiIntro(), reply)))
}

func (t *Terminal) xtversion() {
	name := "vtcore(1.0.0)"
	t.writeOut([]byte(t.dcsIntro() + ">|" + name + t.stringTerm()))
}

// handleXTGETTCAP answers hex-encoded terminfo-capability queries for
// `TN` and `RGB` (§6); anything else is reported as an invalid request.
func (t *Terminal) handleXTGETTCAP(body []byte) {
	// body is what followed the "#q" introducer: one hex-encoded name,
	// decoded as a whole.
	names := string(body)
	nameBytes, err := hex.DecodeString(names)
	if err != nil {
		t.writeOut([]byte(t.dcsIntro() + "0+r" + t.stringTerm()))
		return
	}
	var value string
	switch string(nameBytes) {
	case "TN":
		value = "xterm-256color"
	case "RGB":
		value = "truecolor"
	default:
		t.writeOut([]byte(t.dcsIntro() + "0+r" + t.stringTerm()))
		return
	}
	resp := t.dcsIntro() + "1+r" + names + "=" + hex.EncodeToString([]byte(value)) + t.stringTerm()
	t.writeOut([]byte(resp))
}

// decrqm answers DECRQM: current mode state (0=not recognized,
// 1=set, 2=reset, 3=permanently set, 4=permanently reset).
func (t *Terminal) decrqm(private bool, mode int) {
	state := 2
	if private {
		switch mode {
		case 1:
			if t.arrowMode == ArrowKeyVT100Application {
				state = 1
			}
		case 6:
			if t.mode&ModeOrigin != 0 {
				state = 1
			}
		case 7:
			if t.mode&ModeLineWrap != 0 {
				state = 1
			}
		case 25:
			if t.mode&ModeCursorVisible != 0 {
				state = 1
			}
		case 2026:
			if t.mode&ModeSynchronizedUpdate != 0 {
				state = 1
			}
		default:
			state = 0
		}
	} else {
		switch mode {
		case 4:
			if t.mode&ModeInsert != 0 {
				state = 1
			}
		case 20:
			if t.mode&ModeNewLine != 0 {
				state = 1
			}
		default:
			state = 0
		}
	}
	marker := ""
	if private {
		marker = "?"
	}
	t.writeOut([]byte(fmt.Sprintf("%s%s%d;%d$y", t.csiIntro(), marker, mode, state)))
}
