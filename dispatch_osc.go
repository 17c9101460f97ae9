package vtcore

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// handleOSC dispatches an accumulated OSC payload by its leading Ps
// field (§4.6 "OSC handlers").
func (t *Terminal) handleOSC(payload []byte) {
	s := string(payload)
	ps, rest, _ := strings.Cut(s, ";")
	switch ps {
	case "0", "2":
		t.title = rest
	case "4":
		t.handleOSC4(rest)
	case "10":
		t.handleOSCQueryColor(rest, true)
	case "11":
		t.handleOSCQueryColor(rest, false)
	case "444":
		t.handleOSC444(rest)
	case "1337":
		t.handleOSC1337(rest)
	}
}

// handleOSC4 implements `4;idx;?` (query) and `4;idx;spec` (set).
func (t *Terminal) handleOSC4(rest string) {
	idxStr, spec, ok := strings.Cut(rest, ";")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx > 255 {
		return
	}
	if spec == "?" {
		c := t.palette[idx]
		resp := fmt.Sprintf("%s4;%d;rgb:%02x%02x/%02x%02x/%02x%02x%s",
			t.oscIntro(), idx, c.R, c.R, c.G, c.G, c.B, c.B, t.stringTerm())
		t.writeOut([]byte(resp))
		return
	}
	if c, ok := parseColorSpec(spec); ok {
		t.palette[idx] = c
		t.markDirty()
	}
}

func (t *Terminal) handleOSCQueryColor(rest string, fg bool) {
	if rest != "?" {
		return
	}
	var c color.RGBA
	if fg {
		c = t.colorBackend.DefaultForeground()
	} else {
		c = t.colorBackend.DefaultBackground()
	}
	ps := "10"
	if !fg {
		ps = "11"
	}
	resp := fmt.Sprintf("%s%s;rgb:%02x%02x/%02x%02x/%02x%02x%s",
		t.oscIntro(), ps, c.R, c.R, c.G, c.G, c.B, c.B, t.stringTerm())
	t.writeOut([]byte(resp))
}

// parseColorSpec parses `rgb:RR/GG/BB` hex form. Named colors are not
// implemented (no pack-provided name table matches xterm's full rgb.txt).
func parseColorSpec(spec string) (color.RGBA, bool) {
	if !strings.HasPrefix(spec, "rgb:") {
		return color.RGBA{}, false
	}
	parts := strings.Split(strings.TrimPrefix(spec, "rgb:"), "/")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}
	var vals [3]uint8
	for i, p := range parts {
		if len(p) > 2 {
			p = p[:2]
		}
		n, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{vals[0], vals[1], vals[2], 255}, true
}

// handleOSC444 places a Jexer-extension bitmap at the cursor.
func (t *Terminal) handleOSC444(rest string) {
	img, scroll, err := DecodeOSC444(rest)
	if err != nil || img == nil {
		return
	}
	t.placeImageAtCursor(img, scroll)
}

// handleOSC1337 decodes the iTerm2 inline-image subset. The payload is
// `key=value;...:base64data`.
func (t *Terminal) handleOSC1337(rest string) {
	if !strings.HasPrefix(rest, "File=") {
		return
	}
	body := strings.TrimPrefix(rest, "File=")
	keys, b64, ok := strings.Cut(body, ":")
	if !ok {
		return
	}
	params := ParseITermKeys(keys)
	img, err := DecodeITermPayload(params, b64)
	if err != nil || img == nil {
		return
	}
	t.placeImageAtCursor(img, !params.DoNotMoveCursor)
}

// placeImageAtCursor writes cell-sized image-fragment references into
// the display starting at the cursor, covering enough cells to fit the
// image at the terminal's configured cell pixel size.
func (t *Terminal) placeImageAtCursor(img *DecodedImage, scroll bool) {
	if t.cellWidth <= 0 || t.cellHeight <= 0 {
		return
	}
	cols := (img.Width + t.cellWidth - 1) / t.cellWidth
	rows := (img.Height + t.cellHeight - 1) / t.cellHeight
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	startX, startY := t.state.Saveable.CursorX, t.state.Saveable.CursorY
	for ry := 0; ry < rows; ry++ {
		y := startY + ry
		if y >= t.height {
			break
		}
		line := t.display[y]
		for rx := 0; rx < cols; rx++ {
			x := startX + rx
			if x >= line.Length() {
				break
			}
			cell := line.CharAt(x)
			cell.CodePoint = ' '
			cell.Image = &CellImageRef{
				ImageID: img.ID,
				U0:      float32(rx) / float32(cols),
				V0:      float32(ry) / float32(rows),
				U1:      float32(rx+1) / float32(cols),
				V1:      float32(ry+1) / float32(rows),
			}
			line.Replace(x, cell)
		}
	}
	if scroll {
		t.state.Saveable.CursorY = clamp(startY+rows, 0, t.height-1)
		t.state.Saveable.CursorX = 0
	}
	t.markDirty()
}

// handlePM recognizes the two documented privacy-message strings (§6).
func (t *Terminal) handlePM(body []byte) {
	switch string(body) {
	case "hideMousePointer", "showMousePointer":
		// Accepted and ignored; the core has no pointer to hide.
	}
}

// handleSixelDCS decodes a sixel DCS body (introduced by `q`) and
// places the resulting bitmap at the cursor.
func (t *Terminal) handleSixelDCS(body []byte) {
	params := make([]int, 0, t.parser.numParams)
	for i := 0; i < t.parser.numParams; i++ {
		params = append(params, t.parser.param(i, 0))
	}
	bg := t.colorBackend.DefaultBackground()
	allowAlpha := true
	dec := NewSixelDecoder(&t.palette, bg, allowAlpha)
	bmp := dec.Decode(params, body)
	if bmp == nil {
		return
	}
	img := &DecodedImage{ID: nextImageID(), Width: bmp.Width, Height: bmp.Height, Pix: bmp.Pix}
	t.placeImageAtCursor(img, t.mode&ModeSixelScrolling != 0)
}
