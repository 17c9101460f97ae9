package vtcore

import (
	"bytes"
	"strings"
	"testing"
)

func TestOSCSetTitle(t *testing.T) {
	term := New()
	feed(term, "\x1b]2;my title\x07")
	if term.title != "my title" {
		t.Errorf("title = %q, want my title", term.title)
	}
}

func TestOSC4SetAndQueryPalette(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	feed(term, "\x1b]4;5;rgb:aa/bb/cc\x07")
	if term.palette[5].R != 0xaa || term.palette[5].G != 0xbb || term.palette[5].B != 0xcc {
		t.Fatalf("palette[5] = %+v, want aa/bb/cc", term.palette[5])
	}
	buf.Reset()
	feed(term, "\x1b]4;5;?\x07")
	if !strings.Contains(buf.String(), "rgb:aaaa/bbbb/cccc") {
		t.Errorf("expected palette query reply, got %q", buf.String())
	}
}

func TestOSCQueryDefaultForeground(t *testing.T) {
	var buf bytes.Buffer
	term := New(WithResponse(&buf))
	feed(term, "\x1b]10;?\x07")
	if !strings.HasPrefix(buf.String(), "\x1b]10;rgb:") {
		t.Errorf("expected OSC 10 reply, got %q", buf.String())
	}
}

func TestParseColorSpecRejectsNonHex(t *testing.T) {
	if _, ok := parseColorSpec("blue"); ok {
		t.Error("expected named color spec to be rejected")
	}
	c, ok := parseColorSpec("rgb:10/20/30")
	if !ok || c.R != 0x10 || c.G != 0x20 || c.B != 0x30 {
		t.Errorf("parseColorSpec = %+v,%v, want 10/20/30,true", c, ok)
	}
}

func TestHandlePMRecognizedNoPanic(t *testing.T) {
	term := New()
	feed(term, "\x1b^hideMousePointer\x1b\\")
	feed(term, "\x1b^showMousePointer\x1b\\")
}
