package vtcore

import "testing"

func TestDispatchEscCharsetDesignation(t *testing.T) {
	term := New()
	feed(term, "\x1b(0") // designate G0 as DEC special graphics
	if term.state.Saveable.Charsets[G0Slot] != NRCSDECSpecialGraphics {
		t.Errorf("expected G0 = DEC special graphics, got %v", term.state.Saveable.Charsets[G0Slot])
	}
}

func TestDispatchEscRISResetsModes(t *testing.T) {
	term := New()
	feed(term, "\x1b[4h") // insert mode on
	feed(term, "\x1bc")   // RIS
	if term.mode&ModeInsert != 0 {
		t.Error("expected insert mode cleared by RIS")
	}
}

func TestDispatchCSIDECSTRSoftReset(t *testing.T) {
	term := New()
	feed(term, "\x1b[5;10r\x1b[?6h")
	feed(term, "\x1b[!p") // DECSTR
	if term.scrollTop != 0 || term.scrollBottom != term.height-1 {
		t.Errorf("expected scroll region reset by DECSTR, got (%d,%d)", term.scrollTop, term.scrollBottom)
	}
	if term.mode&ModeOrigin != 0 {
		t.Error("expected origin mode cleared by DECSTR")
	}
}

func TestDispatchCSIDECSCAProtect(t *testing.T) {
	term := New()
	feed(term, "\x1b[1\"q")
	if !term.state.Saveable.Attrs.Protect {
		t.Error("expected DECSCA(1) to set protect attribute")
	}
	feed(term, "\x1b[2\"q")
	if !term.state.Saveable.Attrs.Protect {
		t.Error("expected DECSCA(2) to also set protect attribute")
	}
	feed(term, "\x1b[0\"q")
	if term.state.Saveable.Attrs.Protect {
		t.Error("expected DECSCA(0) to clear protect attribute")
	}
}

func TestDispatchVT52ModeSwitch(t *testing.T) {
	term := New()
	feed(term, "\x1b[?2l") // DECANM reset: enter VT52 mode
	if !term.state.vt52 {
		t.Error("expected vt52 mode entered")
	}
	feed(term, "\x1bA") // VT52 cursor up
	if term.state.Saveable.CursorY < 0 {
		t.Error("cursor y should not go negative")
	}
}
