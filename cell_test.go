package vtcore

import "testing"

func TestNewCell(t *testing.T) {
	cell := NewCell()

	if !cell.IsBlank() {
		t.Errorf("expected blank cell, got code point %d", cell.CodePoint)
	}
	if cell.Attrs != (Attributes{}) {
		t.Error("expected default attributes")
	}
	if cell.Image != nil {
		t.Error("expected no image reference")
	}
}

func TestCellReset(t *testing.T) {
	cell := NewCell()
	cell.CodePoint = 'A'
	cell.Attrs.Bold = true
	cell.Image = &CellImageRef{ImageID: 1}

	cell.Reset()

	if !cell.IsBlank() {
		t.Errorf("expected blank after reset, got code point %d", cell.CodePoint)
	}
	if cell.Attrs.Bold {
		t.Error("expected bold cleared after reset")
	}
	if cell.Image != nil {
		t.Error("expected image reference cleared after reset")
	}
}

func TestAttributesReset(t *testing.T) {
	var a Attributes
	a.SetForegroundPalette(1)
	a.Bold = true
	a.Underline = true

	a.Reset()

	if a != (Attributes{}) {
		t.Error("expected zero-value attributes after Reset")
	}
}

func TestAttributesEquality(t *testing.T) {
	var a, b Attributes
	a.SetForegroundRGB(1, 2, 3)
	b.SetForegroundRGB(1, 2, 3)

	if a != b {
		t.Error("expected equal Attributes to compare equal with ==")
	}

	b.Bold = true
	if a == b {
		t.Error("expected differing Attributes to compare unequal")
	}
}

func TestCellCopyIsIndependent(t *testing.T) {
	cell := NewCell()
	cell.CodePoint = 'X'
	cell.Attrs.Bold = true

	copied := cell.Copy()
	cell.CodePoint = 'Y'

	if copied.CodePoint != 'X' {
		t.Error("copy should be independent of later mutation")
	}
	if !copied.Attrs.Bold {
		t.Error("expected attributes to be copied")
	}
}

func TestCellSetTo(t *testing.T) {
	var dst Cell
	src := NewCell()
	src.CodePoint = 'Z'
	src.Attrs.Underline = true
	src.WidthRole = CellWidthLeft

	dst.SetTo(src)

	if dst.CodePoint != 'Z' || !dst.Attrs.Underline || dst.WidthRole != CellWidthLeft {
		t.Error("expected SetTo to copy code point, attributes, and width role")
	}
}

func TestCellEqual(t *testing.T) {
	a := NewCell()
	a.CodePoint = 'A'
	b := NewCell()
	b.CodePoint = 'A'

	if !a.Equal(b) {
		t.Error("expected identical cells to be Equal")
	}

	b.CodePoint = 'B'
	if a.Equal(b) {
		t.Error("expected differing cells to not be Equal")
	}
}
