package vtcore

import "testing"

func TestEraseEDWholeScreenClearsDoubleWidth(t *testing.T) {
	term := New()
	term.display[0].SetDoubleWidth(true)
	feed(term, "\x1b[2J")
	if term.display[0].DoubleWidth() {
		t.Error("expected double-width flag cleared by ED(2)")
	}
	if !term.display[0].CharAt(0).IsBlank() {
		t.Error("expected blank cell after ED(2)")
	}
}

func TestEraseELDefaultErasesToEndOfLine(t *testing.T) {
	term := New()
	feed(term, "\x1b[1;1HHELLO\x1b[1;3H\x1b[K")
	got := rowText(term, 0)
	if got[:2] != "HE" {
		t.Errorf("row = %q, want HE prefix preserved", got[:2])
	}
	for x := 2; x < term.width; x++ {
		if !term.display[0].CharAt(x).IsBlank() {
			t.Errorf("cell %d should be erased by EL(0)", x)
		}
	}
}

func TestInsertDeleteChars(t *testing.T) {
	term := New()
	feed(term, "\x1b[1;1HABCDE\x1b[1;2H\x1b[2P") // delete 2 chars at col 2
	got := rowText(term, 0)
	if got[:3] != "ADE" {
		t.Errorf("row = %q, want ADE prefix", got[:3])
	}
}

func TestInsertLinesPushesDown(t *testing.T) {
	term := New(WithSize(5, 3))
	feed(term, "AAA\r\nBBB\r\nCCC")
	feed(term, "\x1b[1;1H\x1b[1L") // insert one blank line at top
	if got := rowText(term, 1); got[:3] != "AAA" {
		t.Errorf("row 1 = %q, want AAA pushed down", got)
	}
}

func TestScrollInLineCarriesBackColorErase(t *testing.T) {
	term := New(WithSize(5, 3), WithDeviceType(DeviceXTerm))
	feed(term, "\x1b[44m") // blue background
	term.scrollUpFrom(0, 2, 1)
	cell := term.display[2].CharAt(0)
	if cell.Attrs.Bg != PaletteColor(4) {
		t.Errorf("expected scrolled-in line to carry current background, got %+v", cell.Attrs.Bg)
	}
}

func TestScrollUpGENeRegionHeightErasesRegion(t *testing.T) {
	term := New(WithSize(5, 3))
	feed(term, "AAA\r\nBBB\r\nCCC")
	term.scrollUpFrom(0, 2, 10) // n >= region height: equivalent to erase
	for y := 0; y < 3; y++ {
		for x := 0; x < term.width; x++ {
			if !term.display[y].CharAt(x).IsBlank() {
				t.Errorf("cell (%d,%d) should be blank after large scroll-up", y, x)
			}
		}
	}
}
