package vtcore

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphRenderer rasterizes a single rune into a cellWidth x cellHeight
// bitmap. The terminal core uses it only for one narrow purpose (§4.5
// step 3): when a wide character is split by a column-boundary wrap, the
// left and right halves painted into adjacent cells must come from a
// real glyph raster rather than being approximated, so the renderer
// draws the full glyph once and the caller crops the half it needs.
type GlyphRenderer interface {
	// Glyph returns an image.Gray alpha mask of r at the renderer's
	// native cell size.
	Glyph(r rune) (*image.Gray, error)
	// CellSize reports the pixel dimensions the renderer rasterizes at.
	CellSize() (width, height int)
}

// BasicFontGlyphRenderer renders with golang.org/x/image/font/basicfont's
// built-in 7x13 bitmap face by default, or a loaded OpenType/TrueType
// face when one is supplied.
type BasicFontGlyphRenderer struct {
	face   font.Face
	width  int
	height int
}

// NewBasicFontGlyphRenderer returns a renderer using basicfont.Face7x13.
func NewBasicFontGlyphRenderer() *BasicFontGlyphRenderer {
	return &BasicFontGlyphRenderer{
		face:   basicfont.Face7x13,
		width:  7,
		height: 13,
	}
}

// NewOpenTypeGlyphRenderer loads an OpenType/TrueType font at the given
// point size and derives the cell size from its metrics.
func NewOpenTypeGlyphRenderer(fontBytes []byte, size float64) (*BasicFontGlyphRenderer, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
	if err != nil {
		return nil, err
	}
	metrics := face.Metrics()
	advance, _ := face.GlyphAdvance('M')
	width := advance.Ceil()
	if width <= 0 {
		width = int(size / 2)
	}
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if height <= 0 {
		height = int(size)
	}
	return &BasicFontGlyphRenderer{face: face, width: width, height: height}, nil
}

// CellSize implements GlyphRenderer.
func (g *BasicFontGlyphRenderer) CellSize() (int, int) {
	return g.width, g.height
}

// Glyph implements GlyphRenderer.
func (g *BasicFontGlyphRenderer) Glyph(r rune) (*image.Gray, error) {
	mask := image.NewGray(image.Rect(0, 0, g.width, g.height))
	dr, maskImg, maskP, advance, ok := g.face.Glyph(fixed.Point26_6{
		X: 0,
		Y: fixed.I(g.height - g.height/4),
	}, r)
	if !ok {
		return mask, nil
	}
	draw.DrawMask(mask, dr, image.White, image.Point{}, maskImg, maskP, draw.Over)
	_ = advance
	return mask, nil
}
