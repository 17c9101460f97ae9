package vtcore

import (
	"image/color"
	"io"
	"sync"
	"time"
)

// terminalState bundles the DECSC/DECRC-saveable state with the two
// session-scoped extensions that ride alongside it but are never
// saved/restored themselves (§9 "Saveable state").
type terminalState struct {
	Saveable SaveableState
	charset  charsetState
	vt52     bool
}

// DisplayListener observes display mutations. DisplayChanged is called
// with the current visible snapshot when the screen is dirty;
// CursorMoved is a lighter-weight signal for cursor-only movement.
type DisplayListener interface {
	DisplayChanged(snap *Snapshot)
	CursorMoved(x, y int)
}

// NoopDisplayListener implements DisplayListener with no-ops, for
// callers that only want to poll state directly.
type NoopDisplayListener struct{}

func (NoopDisplayListener) DisplayChanged(*Snapshot) {}
func (NoopDisplayListener) CursorMoved(int, int)     {}

// Snapshot is a point-in-time copy of the visible display, used both
// for listener notifications and for the synchronized-update freeze
// window (§5).
type Snapshot struct {
	Lines         []*DisplayLine
	CursorX       int
	CursorY       int
	CursorVisible bool
	Title         string
	takenAt       time.Time
}

// Terminal is the emulator core: it consumes a byte stream, maintains
// display/cursor/mode state, and emits outbound bytes for reports and
// input translation.
type Terminal struct {
	mu sync.Mutex

	deviceType DeviceType

	width, height int
	rightMargin   int
	scrollTop     int
	scrollBottom  int

	display    []*DisplayLine
	scrollback *Scrollback

	state terminalState
	saved terminalState

	mode          TerminalMode
	arrowMode     ArrowKeyMode
	mouseProtocol MouseProtocol
	mouseEncoding MouseEncoding
	erasePolicy   ErasePolicy

	tabStops map[int]bool

	palette      [256]color.RGBA
	colorBackend ColorBackend

	parser parserState

	dirty              bool
	withinSyncUpdate    bool
	frozenSnapshot      *Snapshot
	frozenAt            time.Time

	writer   io.Writer
	listener DisplayListener

	cellWidth, cellHeight int
	glyphRenderer         GlyphRenderer
	scrollbackMax         int

	title string
	s8c1t bool

	columnsBackend func() int

	pendingWrapArmed bool

	closed bool

	userEvents chan func(*Terminal)
	readerStop chan struct{}
}

// Option configures a Terminal at construction.
type Option func(*Terminal)

// WithDeviceType selects the emulated device profile.
func WithDeviceType(d DeviceType) Option {
	return func(t *Terminal) { t.deviceType = d }
}

// WithSize sets the initial display geometry.
func WithSize(width, height int) Option {
	return func(t *Terminal) {
		t.width = width
		t.height = height
	}
}

// WithScrollbackMax bounds retained scrollback lines.
func WithScrollbackMax(n int) Option {
	return func(t *Terminal) { t.scrollbackMax = n }
}

// WithCellSize sets the pixel geometry of one cell, used to size sixel
// and inline images in cells. SGR-pixels mouse reports do not use it:
// they carry MouseEvent.PixelX/PixelY as given.
func WithCellSize(w, h int) Option {
	return func(t *Terminal) {
		t.cellWidth = w
		t.cellHeight = h
	}
}

// WithDisplayListener installs the observer notified on dirty/cursor
// events.
func WithDisplayListener(l DisplayListener) Option {
	return func(t *Terminal) { t.listener = l }
}

// WithColorBackend installs the palette/default-color resolver.
func WithColorBackend(b ColorBackend) Option {
	return func(t *Terminal) { t.colorBackend = b }
}

// WithResponse installs the outbound byte sink for reports and
// translated input.
func WithResponse(w io.Writer) Option {
	return func(t *Terminal) { t.writer = w }
}

// WithGlyphRenderer installs the collaborator used to rasterize a wide
// character's halves; it is consulted for every wide character printed.
func WithGlyphRenderer(r GlyphRenderer) Option {
	return func(t *Terminal) { t.glyphRenderer = r }
}

// WithColumnsBackend installs the xterm-profile DECCOLM width query
// hook (Open Question 1): when set, the xterm device profile re-reads
// width from this hook on DECCOLM instead of hard-coding 80.
func WithColumnsBackend(fn func() int) Option {
	return func(t *Terminal) { t.columnsBackend = fn }
}

// New constructs a Terminal with the given options applied over
// VT220-compatible 80x24 defaults.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		deviceType:    DeviceVT220,
		width:         80,
		height:        24,
		scrollbackMax: DefaultScrollbackMax,
		cellWidth:     9,
		cellHeight:    16,
		listener:      NoopDisplayListener{},
		colorBackend:  DefaultColorBackend{},
		erasePolicy:   EraseVT10x,
		arrowMode:     ArrowKeyANSI,
	}
	for _, o := range opts {
		o(t)
	}
	t.palette = StandardPalette
	t.scrollback = NewScrollback(t.scrollbackMax)
	t.resetToInitialState()
	return t
}

// resolveColor turns a Cell's stored Color into a concrete RGBA, using
// the terminal's mutable 256-entry palette (OSC 4 redefinable) for
// indexed colors and the ColorBackend for the unset/default case.
func (t *Terminal) resolveColor(c Color, fg bool) color.RGBA {
	switch c.Mode {
	case ColorRGB:
		return c.RGB
	case ColorPalette:
		return t.palette[c.Index]
	default:
		if fg {
			return t.colorBackend.DefaultForeground()
		}
		return t.colorBackend.DefaultBackground()
	}
}

// resetToInitialState implements RIS: modes, attributes, charset
// assignments, scroll region, tab stops, and display all return to
// documented defaults (§8 invariant).
func (t *Terminal) resetToInitialState() {
	t.rightMargin = t.width - 1
	t.scrollTop = 0
	t.scrollBottom = t.height - 1

	t.state = terminalState{Saveable: defaultSaveableState()}
	t.saved = t.state

	t.mode = ModeCursorVisible | ModeLineWrap | ModeFullDuplex
	t.arrowMode = ArrowKeyANSI
	t.mouseProtocol = MouseOff
	t.mouseEncoding = MouseEncodingX10
	t.erasePolicy = t.defaultErasePolicy()

	t.resetTabStops()

	t.display = make([]*DisplayLine, t.height)
	for i := range t.display {
		t.display[i] = NewDisplayLine(t.width)
	}
	t.scrollback = NewScrollback(t.scrollbackMax)
	t.scrollback.SetImageHorizon(t.height * 3)

	t.title = ""
	t.s8c1t = false
	t.parser = parserState{}

	t.markDirty()
}

// defaultErasePolicy picks the device profile's erase-fill behavior:
// xterm performs back-color-erase, earlier DEC devices erase to a true
// blank regardless of the current drawing attributes (§4.6).
func (t *Terminal) defaultErasePolicy() ErasePolicy {
	if t.deviceType == DeviceXTerm {
		return EraseXTerm
	}
	return EraseVT10x
}

func (t *Terminal) resetTabStops() {
	t.tabStops = make(map[int]bool)
	for c := 0; c < t.width; c += 8 {
		t.tabStops[c] = true
	}
}

func (t *Terminal) markDirty() {
	t.dirty = true
}

// flushIfDirty notifies the display listener once per Write batch,
// honoring the synchronized-update freeze window (§5).
func (t *Terminal) flushIfDirty() {
	if !t.dirty {
		return
	}
	t.dirty = false

	if t.mode&ModeSynchronizedUpdate != 0 {
		if t.frozenSnapshot != nil && time.Since(t.frozenAt) < 125*time.Millisecond {
			return
		}
		t.frozenSnapshot = t.snapshotLocked()
		t.frozenAt = time.Now()
		t.listener.DisplayChanged(t.frozenSnapshot)
		return
	}
	t.frozenSnapshot = nil
	t.listener.DisplayChanged(t.snapshotLocked())
}

func (t *Terminal) snapshotLocked() *Snapshot {
	lines := make([]*DisplayLine, len(t.display))
	for i, l := range t.display {
		lines[i] = l.Copy()
	}
	return &Snapshot{
		Lines:         lines,
		CursorX:       t.state.Saveable.CursorX,
		CursorY:       t.state.Saveable.CursorY,
		CursorVisible: t.mode&ModeCursorVisible != 0,
		Title:         t.title,
		takenAt:       time.Now(),
	}
}

// Snapshot returns a copy of the currently visible display, bypassing
// the listener. Safe for concurrent use.
func (t *Terminal) Snapshot() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Close idempotently tears the terminal down, delivering a final
// display-changed notification (§5 cancellation).
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	if t.readerStop != nil {
		close(t.readerStop)
	}
	t.listener.DisplayChanged(t.snapshotLocked())
	return nil
}

func (t *Terminal) writeOut(p []byte) {
	if t.writer == nil {
		return
	}
	t.writer.Write(p)
}

// effectiveRightMargin halves the margin when the current cursor row
// is double-width (§4.5 print algorithm step 1).
func (t *Terminal) effectiveRightMargin() int {
	line := t.lineAt(t.state.Saveable.CursorY)
	if line != nil && line.DoubleWidth() {
		return (t.rightMargin+1)/2 - 1
	}
	return t.rightMargin
}

func (t *Terminal) lineAt(y int) *DisplayLine {
	if y < 0 || y >= len(t.display) {
		return nil
	}
	return t.display[y]
}
