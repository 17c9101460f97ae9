package vtcore

// CellWidthRole tags which slice of a multi-cell bitmap fragment a
// Cell's Image reference represents, per §3's "optional reference to
// a bitmap fragment and its left/right/center width role."
type CellWidthRole uint8

const (
	CellWidthNone CellWidthRole = iota
	CellWidthLeft
	CellWidthCenter
	CellWidthRight
)

// CellImageRef points a Cell at one fragment of a bitmap by ID
// (populated by the sixel decoder, an OSC 444/1337 image place, or a
// glyph-rendered wide character). The terminal keeps only this
// reference, not the bitmap's pixels. Normalized UV coordinates select
// the fragment's source rectangle.
type CellImageRef struct {
	ImageID uint32
	U0, V0  float32
	U1, V1  float32
}

// Attributes is the plain value record of drawing attributes §4.1
// describes: foreground/background (palette or RGB), and the five
// boolean flags. Two Attributes compare equal with == iff every
// field matches.
type Attributes struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Underline bool
	Blink     bool
	Reverse   bool
	Protect   bool
}

// Reset returns default colors and clears all flags.
func (a *Attributes) Reset() {
	*a = Attributes{}
}

// SetForegroundPalette sets the foreground to a palette SGR index.
func (a *Attributes) SetForegroundPalette(idx uint8) { a.Fg = PaletteColor(idx) }

// SetForegroundRGB sets the foreground to an explicit RGB triple.
func (a *Attributes) SetForegroundRGB(r, g, b uint8) { a.Fg = RGBColor(r, g, b) }

// SetBackgroundPalette sets the background to a palette SGR index.
func (a *Attributes) SetBackgroundPalette(idx uint8) { a.Bg = PaletteColor(idx) }

// SetBackgroundRGB sets the background to an explicit RGB triple.
func (a *Attributes) SetBackgroundRGB(r, g, b uint8) { a.Bg = RGBColor(r, g, b) }

// Cell is one glyph, its drawing attributes, and an optional bitmap
// fragment reference. A code point of 0 signals a blank (never
// written) cell. Cells are value-like and cheap to copy; Image is the
// only pointer field, shared rather than deep-copied by Copy.
type Cell struct {
	CodePoint rune
	Attrs     Attributes
	Image     *CellImageRef
	WidthRole CellWidthRole
}

// NewCell returns a blank cell with default attributes.
func NewCell() Cell {
	return Cell{}
}

// Reset clears the cell back to blank with default attributes,
// dropping any image reference.
func (c *Cell) Reset() {
	c.CodePoint = 0
	c.Attrs.Reset()
	c.Image = nil
	c.WidthRole = CellWidthNone
}

// IsBlank reports whether the cell has never been written, or was
// erased to a true blank by the VT10x erase policy.
func (c *Cell) IsBlank() bool {
	return c.CodePoint == 0
}

// SetTo copies both the code point and attributes of other into c,
// including its image reference and width role.
func (c *Cell) SetTo(other Cell) {
	*c = other
}

// Copy returns an independent copy of the cell. The Image pointer, if
// any, is shared — image fragments are immutable once placed.
func (c Cell) Copy() Cell {
	return c
}

// Equal reports whether two cells have the same code point, drawing
// attributes, width role, and image reference.
func (c Cell) Equal(other Cell) bool {
	if c.CodePoint != other.CodePoint || c.Attrs != other.Attrs || c.WidthRole != other.WidthRole {
		return false
	}
	return c.Image == other.Image
}
