package vtcore

import "testing"

func TestCursorUpDownClampToScreen(t *testing.T) {
	term := New()
	feed(term, "\x1b[1;1H\x1b[5A") // already at top, can't go further up
	if term.state.Saveable.CursorY != 0 {
		t.Errorf("cursor y = %d, want 0", term.state.Saveable.CursorY)
	}
	feed(term, "\x1b[999B")
	if term.state.Saveable.CursorY != term.height-1 {
		t.Errorf("cursor y = %d, want %d", term.state.Saveable.CursorY, term.height-1)
	}
}

func TestCursorPositionOriginMode(t *testing.T) {
	term := New()
	feed(term, "\x1b[5;10r")  // scroll region rows 5-10 (1-based)
	feed(term, "\x1b[?6h")    // DECOM on
	feed(term, "\x1b[1;1H")   // CUP(1,1) should land at region top
	if term.state.Saveable.CursorY != 4 || term.state.Saveable.CursorX != 0 {
		t.Errorf("cursor = (%d,%d), want (4,0)", term.state.Saveable.CursorY, term.state.Saveable.CursorX)
	}
}

func TestCursorOriginModeClampsToRegion(t *testing.T) {
	term := New()
	feed(term, "\x1b[5;10r\x1b[?6h")
	feed(term, "\x1b[20;1H") // attempt to move below region bottom
	if term.state.Saveable.CursorY > 9 {
		t.Errorf("cursor y = %d, should be clamped within region", term.state.Saveable.CursorY)
	}
}

func TestTabStopsAdvanceAndClear(t *testing.T) {
	term := New()
	feed(term, "\t")
	if term.state.Saveable.CursorX != 8 {
		t.Errorf("cursor x = %d, want 8 after first tab", term.state.Saveable.CursorX)
	}
	feed(term, "\x1b[3g") // clear all tab stops
	feed(term, "\x1b[1;1H\t")
	if term.state.Saveable.CursorX != term.width-1 {
		t.Errorf("cursor x = %d, want %d (no tab stops left)", term.state.Saveable.CursorX, term.width-1)
	}
}

func TestLinefeedScrollsAtBottomMargin(t *testing.T) {
	term := New(WithSize(5, 3))
	feed(term, "AAA\r\nBBB\r\nCCC\r\n")
	if got := rowText(term, 1); got[:3] != "CCC" {
		t.Errorf("row 1 = %q, want CCC...", got)
	}
	if term.scrollback.Len() == 0 {
		t.Error("expected scrolled-off line pushed to scrollback")
	}
}

func TestTabAndScrollFinalsDefaultOmittedParamToOne(t *testing.T) {
	term := New(WithSize(10, 3))
	feed(term, "AAA\r\nBBB\r\nCCC")
	feed(term, "\x1b[1;1H\x1b[I") // CHT with no parameter: advance one tab stop
	if term.state.Saveable.CursorX == 0 {
		t.Error("expected CHT with omitted parameter to advance by one tab stop")
	}

	term2 := New(WithSize(10, 3))
	feed(term2, "AAA\r\nBBB\r\nCCC")
	feed(term2, "\x1b[S") // SU with no parameter: scroll up by one
	if rowText(term2, 0)[:3] != "BBB" {
		t.Errorf("expected SU with omitted parameter to scroll by one, row 0 = %q", rowText(term2, 0))
	}

	term3 := New(WithSize(10, 3))
	feed(term3, "AAA\r\nBBB\r\nCCC")
	feed(term3, "\x1b[T") // SD with no parameter: scroll down by one
	if rowText(term3, 2)[:3] != "BBB" {
		t.Errorf("expected SD with omitted parameter to scroll by one, row 2 = %q", rowText(term3, 2))
	}
}

func TestReverseIndexScrollsDown(t *testing.T) {
	term := New(WithSize(5, 3))
	feed(term, "\x1b[1;1HTOP")
	feed(term, "\x1b[1;1H\x1bM") // RI at top of screen: scroll down
	if got := rowText(term, 1); got[:3] != "TOP" {
		t.Errorf("row 1 = %q, want TOP after reverse index at top", got)
	}
}
