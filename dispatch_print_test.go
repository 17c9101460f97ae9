package vtcore

import (
	"strings"
	"testing"
)

func TestPrintInsertModeShiftsCells(t *testing.T) {
	term := New()
	feed(term, "\x1b[1;1HABC")
	feed(term, "\x1b[4h\x1b[1;1HX") // insert mode: X pushed in, others shift right
	got := rowText(term, 0)
	if got[:4] != "XABC" {
		t.Errorf("row = %q, want XABC prefix", got[:4])
	}
}

func TestPrintWideRuneOccupiesTwoCells(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	feed(term, "\x1b[1;1H中")
	left := term.display[0].CharAt(0)
	right := term.display[0].CharAt(1)
	if left.CodePoint != '中' || left.WidthRole != CellWidthLeft {
		t.Errorf("left cell = %+v, want CJK left half", left)
	}
	if right.WidthRole != CellWidthRight {
		t.Errorf("right cell = %+v, want CJK right half", right)
	}
	if term.state.Saveable.CursorX != 2 {
		t.Errorf("cursor x = %d, want 2", term.state.Saveable.CursorX)
	}
}

func TestPrintWideRuneWrapsWhenStraddlingMargin(t *testing.T) {
	term := New(WithSize(4, 3), WithDeviceType(DeviceXTerm))
	feed(term, strings.Repeat("A", 3)+"中")
	if got := rowText(term, 0); got != "AAA " {
		t.Errorf("row 0 = %q, want AAA padded", got)
	}
	left := term.display[1].CharAt(0)
	if left.CodePoint != '中' {
		t.Errorf("expected wide rune to move to next row instead of splitting, got %+v", left)
	}
}

func TestExecuteControlBackspaceAndCR(t *testing.T) {
	term := New()
	feed(term, "\x1b[1;5HX\x08\x08Y")
	got := rowText(term, 0)
	if got[3] != 'Y' {
		t.Errorf("expected Y two columns left of the cursor position after X, row=%q", got)
	}
	feed(term, "\r")
	if term.state.Saveable.CursorX != 0 {
		t.Errorf("expected cursor x=0 after CR, got %d", term.state.Saveable.CursorX)
	}
}
