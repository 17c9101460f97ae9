package vtcore

import "testing"

func TestModeDECCKMSwitchesArrowFamily(t *testing.T) {
	term := New()
	feed(term, "\x1b[?1h")
	if term.arrowMode != ArrowKeyVT100Application {
		t.Errorf("expected application arrow mode after DECCKM set")
	}
	feed(term, "\x1b[?1l")
	if term.arrowMode != ArrowKeyANSI {
		t.Errorf("expected ANSI arrow mode after DECCKM reset")
	}
}

func TestModeDECCOLMResetsRegionAndHome(t *testing.T) {
	term := New()
	feed(term, "\x1b[5;10r\x1b[1;1H\x1b[?3h")
	if term.scrollTop != 0 || term.scrollBottom != term.height-1 {
		t.Errorf("expected full-screen scroll region after DECCOLM, got (%d,%d)", term.scrollTop, term.scrollBottom)
	}
	if term.state.Saveable.CursorX != 0 || term.state.Saveable.CursorY != 0 {
		t.Errorf("expected cursor home after DECCOLM")
	}
	if term.width != 132 {
		t.Errorf("expected width 132 after DECCOLM set, got %d", term.width)
	}
}

func TestModeIdempotentSetTwice(t *testing.T) {
	term := New()
	feed(term, "\x1b[?25l\x1b[?25l")
	if term.mode&ModeCursorVisible != 0 {
		t.Error("expected cursor invisible after double DECRST")
	}
	feed(term, "\x1b[?25h\x1b[?25h")
	if term.mode&ModeCursorVisible == 0 {
		t.Error("expected cursor visible after double DECSET")
	}
}

func TestModeMouseProtocolSwitch(t *testing.T) {
	term := New()
	feed(term, "\x1b[?1000h")
	if term.mouseProtocol != MouseNormal {
		t.Errorf("expected normal mouse protocol, got %v", term.mouseProtocol)
	}
	feed(term, "\x1b[?1000l")
	if term.mouseProtocol != MouseOff {
		t.Errorf("expected mouse off, got %v", term.mouseProtocol)
	}
}

func TestModeSGRMouseEncoding(t *testing.T) {
	term := New()
	feed(term, "\x1b[?1006h")
	if term.mouseEncoding != MouseEncodingSGR {
		t.Errorf("expected SGR mouse encoding, got %v", term.mouseEncoding)
	}
}

func TestModeAltScreen1049SaveAndRestore(t *testing.T) {
	term := New()
	feed(term, "\x1b[10;10H")
	feed(term, "\x1b[?1049h")
	feed(term, "\x1b[1;1HXYZ")
	feed(term, "\x1b[?1049l")
	if term.state.Saveable.CursorX != 9 || term.state.Saveable.CursorY != 9 {
		t.Errorf("expected cursor restored to (9,9), got (%d,%d)", term.state.Saveable.CursorY, term.state.Saveable.CursorX)
	}
}
