package vtcore

import (
	"bytes"
	"strings"
	"testing"
)

func TestDeviceAttributesPrimaryByDeviceType(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithDeviceType(DeviceVT100), WithResponse(&buf))
	feed(term, "\x1b[c")
	if !strings.Contains(buf.String(), "?1;2c") {
		t.Errorf("expected VT100 DA reply, got %q", buf.String())
	}
}

func TestDeviceStatusReportCursorPosition(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	feed(term, "\x1b[5;5H")
	buf.Reset()
	feed(term, "\x1b[6n")
	if buf.String() != "\x1b[5;5R" {
		t.Errorf("expected cursor position report, got %q", buf.String())
	}
}

func TestDeviceStatusReportOK(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	feed(term, "\x1b[5n")
	if buf.String() != "\x1b[0n" {
		t.Errorf("expected status-ok report, got %q", buf.String())
	}
}

func TestXTGETTCAPKnownCapability(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	// XTGETTCAP is DCS with intermediate '#' and final 'q'; "TN" in hex is 544e
	feed(term, "\x1bP#q544e\x1b\\")
	if !strings.Contains(buf.String(), "1+r544e=") {
		t.Errorf("expected TN capability reply, got %q", buf.String())
	}
}

func TestDECRQMReportsModeState(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	feed(term, "\x1b[?25h")
	buf.Reset()
	feed(term, "\x1b[?25$y")
	if buf.String() != "\x1b[?25;1$y" {
		t.Errorf("expected set-state report, got %q", buf.String())
	}
}

func TestS8C1TSwitchesIntroducers(t *testing.T) {
	term := New()
	if term.csiIntro() != "\x1b[" {
		t.Errorf("expected 7-bit CSI intro by default")
	}
	term.s8c1t = true
	if term.csiIntro() != "\x9b" {
		t.Errorf("expected 8-bit CSI intro after s8c1t set")
	}
}

func TestS8C1TToggleViaEscapeSequence(t *testing.T) {
	term := New()
	feed(term, "\x1b G") // S8C1T
	if !term.s8c1t {
		t.Error("expected s8c1t set after ESC SP G")
	}
	feed(term, "\x1b F") // S7C1T
	if term.s8c1t {
		t.Error("expected s8c1t cleared after ESC SP F")
	}
}

func TestXTVERSIONReply(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	feed(term, "\x1b[>q")
	if !strings.HasPrefix(buf.String(), "\x1bP>|") {
		t.Errorf("expected XTVERSION DCS reply, got %q", buf.String())
	}
}
