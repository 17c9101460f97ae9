package vtcore

import "image/color"

// Sixel dimensional caps (§4.4 "Hard caps").
const (
	sixelMaxWidth  = 3840
	sixelMaxHeight = 6480
	sixelMaxRepeat = 32767
)

// sixelState is the sub-state-machine's scanner state.
type sixelState uint8

const (
	sixelInit sixelState = iota
	sixelGround
	sixelRaster
	sixelColor
	sixelRepeat
)

// SixelBitmap is the ARGB bitmap a sixel decode produces.
type SixelBitmap struct {
	Width, Height int
	// Pix holds Height*Width premultiplied-alpha-free RGBA quads,
	// row-major, matching image/color.RGBA's channel order.
	Pix []color.RGBA
}

// SixelDecoder implements §4.4's sixel sub-state-machine: a DCS body
// is scanned byte by byte and turned into an ARGB bitmap. The
// constructor takes an optional shared palette, a background color, and
// whether transparency is allowed; Decode takes the DCS parameters and
// body.
type SixelDecoder struct {
	state sixelState

	palette     [256]color.RGBA
	background  color.RGBA
	allowAlpha  bool
	transparent bool

	colorIndex int
	repeatN    int
	numBuf     int
	haveNum    bool
	colorParam []int

	x, y       int
	width      int
	height     int
	rasterW    int
	rasterH    int
	pix        map[int]map[int]color.RGBA
	maxDrawX   int
	maxDrawY   int
	aborted    bool
}

// NewSixelDecoder constructs a decoder. sharedPalette, if non-nil, is
// copied in as the initial 256-slot color table (STD 070's "shared
// palette" distinction); otherwise a default VGA-style 16-color
// ramp plus grayscale fill is used, matching classic sixel terminals.
func NewSixelDecoder(sharedPalette *[256]color.RGBA, background color.RGBA, allowAlpha bool) *SixelDecoder {
	d := &SixelDecoder{
		background: background,
		allowAlpha: allowAlpha,
		pix:        make(map[int]map[int]color.RGBA),
	}
	if sharedPalette != nil {
		d.palette = *sharedPalette
	} else {
		d.palette = defaultSixelPalette()
	}
	return d
}

func defaultSixelPalette() [256]color.RGBA {
	var p [256]color.RGBA
	vga := [16]color.RGBA{
		{0, 0, 0, 255}, {0, 0, 205, 255}, {205, 0, 0, 255}, {205, 0, 205, 255},
		{0, 205, 0, 255}, {0, 205, 205, 255}, {205, 205, 0, 255}, {205, 205, 205, 255},
		{0, 0, 0, 255}, {0, 0, 255, 255}, {255, 0, 0, 255}, {255, 0, 255, 255},
		{0, 255, 0, 255}, {0, 255, 255, 255}, {255, 255, 0, 255}, {255, 255, 255, 255},
	}
	copy(p[0:16], vga[:])
	for i := 16; i < 256; i++ {
		gray := uint8((i - 16) * 255 / 239)
		p[i] = color.RGBA{gray, gray, gray, 255}
	}
	return p
}

// Decode parses body (bytes 1b = '!','#','"','-','$', 0x3F-0x7E, and
// digits/';') and returns the resulting bitmap, or nil if the image
// aborted (malformed raster attributes or dimensional cap exceeded).
func (d *SixelDecoder) Decode(params []int, body []byte) *SixelBitmap {
	if len(params) >= 2 && params[1] == 1 && d.allowAlpha {
		d.transparent = true
	}

	d.state = sixelGround
	for i := 0; i < len(body) && !d.aborted; i++ {
		d.step(body[i])
	}
	if d.aborted {
		return nil
	}
	return d.toBitmap()
}

func (d *SixelDecoder) step(b byte) {
	switch d.state {
	case sixelRaster:
		d.stepRaster(b)
	case sixelColor:
		d.stepColor(b)
	case sixelRepeat:
		d.stepRepeat(b)
	default:
		d.stepGround(b)
	}
}

func (d *SixelDecoder) stepGround(b byte) {
	switch {
	case b == '!':
		d.state = sixelRepeat
		d.numBuf = 0
		d.haveNum = false
	case b == '#':
		d.state = sixelColor
		d.numBuf = 0
		d.haveNum = false
		d.colorParam = d.colorParam[:0]
	case b == '"':
		d.state = sixelRaster
		d.numBuf = 0
		d.haveNum = false
		d.colorParam = d.colorParam[:0]
	case b == '-':
		d.x = 0
		d.y += 6
		d.ensureSize(0, d.y+6)
	case b == '$':
		d.x = 0
	case b >= 0x3F && b <= 0x7E:
		d.drawSixelByte(b, 1)
	}
}

func (d *SixelDecoder) stepRepeat(b byte) {
	if b >= '0' && b <= '9' {
		d.numBuf = d.numBuf*10 + int(b-'0')
		d.haveNum = true
		return
	}
	n := d.numBuf
	if n < 1 {
		n = 1
	}
	if n > sixelMaxRepeat {
		n = sixelMaxRepeat
	}
	if n > sixelMaxWidth {
		n = sixelMaxWidth
	}
	d.repeatN = n
	d.state = sixelGround
	if b >= 0x3F && b <= 0x7E {
		d.drawSixelByte(b, n)
	}
	d.repeatN = 0
}

func (d *SixelDecoder) stepColor(b byte) {
	if b >= '0' && b <= '9' {
		d.numBuf = d.numBuf*10 + int(b-'0')
		d.haveNum = true
		return
	}
	if b == ';' {
		d.colorParam = append(d.colorParam, d.numBuf)
		d.numBuf = 0
		d.haveNum = false
		return
	}
	d.colorParam = append(d.colorParam, d.numBuf)
	d.applyColorParams()
	d.state = sixelGround
	d.step(b)
}

func (d *SixelDecoder) applyColorParams() {
	if len(d.colorParam) == 1 {
		n := d.colorParam[0]
		if n >= 0 && n < 256 {
			d.colorIndex = n
		}
		return
	}
	if len(d.colorParam) >= 5 {
		n, typ, v1, v2, v3 := d.colorParam[0], d.colorParam[1], d.colorParam[2], d.colorParam[3], d.colorParam[4]
		if n < 0 || n >= 256 {
			return
		}
		if typ == 2 {
			clamp := func(v int) uint8 {
				if v < 0 {
					v = 0
				}
				if v > 100 {
					v = 100
				}
				return uint8(v * 255 / 100)
			}
			d.palette[n] = color.RGBA{clamp(v1), clamp(v2), clamp(v3), 255}
		}
		d.colorIndex = n
	}
}

// stepRaster handles `"pan;pad;ph;pv`. Invalid forms (non-numeric
// separators other than ';') abort the decode, per §4.4.
func (d *SixelDecoder) stepRaster(b byte) {
	if b >= '0' && b <= '9' {
		d.numBuf = d.numBuf*10 + int(b-'0')
		d.haveNum = true
		return
	}
	if b == ';' {
		d.colorParam = append(d.colorParam, d.numBuf)
		d.numBuf = 0
		d.haveNum = false
		return
	}
	d.colorParam = append(d.colorParam, d.numBuf)
	if len(d.colorParam) >= 4 {
		ph, pv := d.colorParam[2], d.colorParam[3]
		if ph < 0 || pv < 0 {
			d.aborted = true
			return
		}
		d.rasterW, d.rasterH = ph, pv
		d.ensureSize(ph, pv)
	}
	d.state = sixelGround
	d.step(b)
}

// ensureSize records the extent reached so far (at least the raster
// size): width and height become exactly wantW/wantH when those are
// larger, with no fixed-step growth. Exceeding a hard cap aborts the
// decode.
func (d *SixelDecoder) ensureSize(wantW, wantH int) {
	if wantW > d.width {
		grow := d.repeatN
		if grow < 400 {
			grow = 400
		}
		d.width = wantW
		if d.width < d.rasterW {
			d.width = d.rasterW
		}
		_ = grow
	}
	if wantH > d.height {
		d.height = wantH
		if d.height < d.rasterH {
			d.height = d.rasterH
		}
	}
	if d.width > sixelMaxWidth || d.height > sixelMaxHeight {
		d.aborted = true
	}
}

// drawSixelByte draws one sixel column, bit k of (b-0x3F) setting
// pixel (x, yBase+k), advancing x by count. Every column reached counts
// toward the drawn width, whether or not it set a pixel.
func (d *SixelDecoder) drawSixelByte(b byte, count int) {
	if count <= 0 {
		count = 1
	}
	bits := b - 0x3F
	c := d.palette[d.colorIndex]

	growWidth := d.x + count
	if growWidth > sixelMaxWidth || d.y+6 > sixelMaxHeight {
		d.aborted = true
		return
	}
	d.ensureSize(growWidth, d.y+6)
	if d.aborted {
		return
	}

	for r := 0; r < count; r++ {
		for bit := 0; bit < 6; bit++ {
			if bits&(1<<uint(bit)) != 0 {
				py := d.y + bit
				px := d.x
				if d.pix[py] == nil {
					d.pix[py] = make(map[int]color.RGBA)
				}
				d.pix[py][px] = c
				if px > d.maxDrawX {
					d.maxDrawX = px
				}
				if py > d.maxDrawY {
					d.maxDrawY = py
				}
			}
		}
		if d.x > d.maxDrawX {
			d.maxDrawX = d.x
		}
		d.x++
	}
}

// toBitmap crops the output to
// max(drawn-width, raster-width) x max(drawn-height+1, raster-height)
// and fills the background per the transparency policy.
func (d *SixelDecoder) toBitmap() *SixelBitmap {
	width := d.maxDrawX + 1
	if width < d.rasterW {
		width = d.rasterW
	}
	height := d.maxDrawY + 1
	if height < d.rasterH {
		height = d.rasterH
	}
	if width <= 0 || height <= 0 {
		return &SixelBitmap{}
	}

	bmp := &SixelBitmap{Width: width, Height: height, Pix: make([]color.RGBA, width*height)}
	if !d.transparent {
		for i := range bmp.Pix {
			bmp.Pix[i] = d.background
		}
	}
	for y, row := range d.pix {
		if y < 0 || y >= height {
			continue
		}
		for x, c := range row {
			if x < 0 || x >= width {
				continue
			}
			bmp.Pix[y*width+x] = c
		}
	}
	return bmp
}
