package vtcore

import "image/color"

// ColorMode tags how a Color value should be interpreted.
type ColorMode uint8

const (
	// ColorDefault means "use the terminal's default foreground/background".
	ColorDefault ColorMode = iota
	// ColorPalette means the color is a palette index (0-255).
	ColorPalette
	// ColorRGB means the color carries explicit 24-bit RGB components.
	ColorRGB
)

// Color is a comparable value: either the default color, a palette
// index, or a 24-bit RGB triple. It is a plain struct (never an
// interface), so two Attributes values compare equal with == iff
// every field matches, as the data model requires.
type Color struct {
	Mode  ColorMode
	Index uint8
	RGB   color.RGBA
}

// DefaultColor is the zero value: "use the terminal default".
var DefaultColor = Color{Mode: ColorDefault}

// PaletteColor builds a Color referring to palette slot idx.
func PaletteColor(idx uint8) Color {
	return Color{Mode: ColorPalette, Index: idx}
}

// RGBColor builds a Color carrying explicit RGB components.
func RGBColor(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, RGB: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// Resolve converts a Color to a concrete RGBA, resolving palette and
// default colors through backend. fg selects which default applies
// when the color is ColorDefault.
func (c Color) Resolve(backend ColorBackend, fg bool) color.RGBA {
	switch c.Mode {
	case ColorRGB:
		return c.RGB
	case ColorPalette:
		return backend.Palette(c.Index)
	default:
		if fg {
			return backend.DefaultForeground()
		}
		return backend.DefaultBackground()
	}
}

// ColorBackend resolves palette SGR indices and default colors to
// RGB. Implementations back the "backend" configuration option of §6
// (palette SGR index → RGB, consulted at reset-colors time).
type ColorBackend interface {
	// Palette returns the RGBA value of 256-color palette slot idx.
	Palette(idx uint8) color.RGBA
	// DefaultForeground returns the RGBA used for ColorDefault foreground.
	DefaultForeground() color.RGBA
	// DefaultBackground returns the RGBA used for ColorDefault background.
	DefaultBackground() color.RGBA
}

// StandardPalette is the default 256-entry xterm-compatible palette:
// 16 named colors (0-15, DOS/ANSI style), a 6x6x6 color cube
// (16-231), and a 24-step grayscale ramp (232-255), as named in §3's
// "Indexed color table of 256 entries, initialized from a DOS-style
// 0-15 plus xterm's 16-255 block."
var StandardPalette [256]color.RGBA

func init() {
	dos := [16]color.RGBA{
		{0, 0, 0, 255}, {205, 0, 0, 255}, {0, 205, 0, 255}, {205, 205, 0, 255},
		{0, 0, 238, 255}, {205, 0, 205, 255}, {0, 205, 205, 255}, {229, 229, 229, 255},
		{127, 127, 127, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
		{92, 92, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
	}
	copy(StandardPalette[0:16], dos[:])

	i := 16
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				StandardPalette[i] = color.RGBA{R: steps[r], G: steps[g], B: steps[b], A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		StandardPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultColorBackend resolves colors through StandardPalette with a
// light-gray-on-black default foreground/background, the factory
// default of the VT220/xterm devices this emulator targets.
type DefaultColorBackend struct{}

func (DefaultColorBackend) Palette(idx uint8) color.RGBA { return StandardPalette[idx] }
func (DefaultColorBackend) DefaultForeground() color.RGBA {
	return color.RGBA{229, 229, 229, 255}
}
func (DefaultColorBackend) DefaultBackground() color.RGBA {
	return color.RGBA{0, 0, 0, 255}
}
