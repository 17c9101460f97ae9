package vtcore

// Scrollback is an ordered deque of evicted DisplayLines, capped at
// maxLines (§3's scrollback_max, default 2000). Lines older than
// imageHorizon entries from the most recent push have any embedded
// bitmap fragments cleared to bound memory (§5).
type Scrollback struct {
	lines        []*DisplayLine
	maxLines     int
	imageHorizon int
}

// DefaultScrollbackMax is the default scrollback_max of §3.
const DefaultScrollbackMax = 2000

// NewScrollback returns an empty scrollback capped at maxLines. A
// non-positive maxLines disables scrollback entirely.
func NewScrollback(maxLines int) *Scrollback {
	return &Scrollback{maxLines: maxLines}
}

// SetImageHorizon sets how many of the newest lines may keep their
// image fragments; older lines have ClearImages called on push.
func (s *Scrollback) SetImageHorizon(n int) {
	s.imageHorizon = n
}

// Len returns the number of retained scrollback lines.
func (s *Scrollback) Len() int {
	return len(s.lines)
}

// MaxLines returns the configured cap.
func (s *Scrollback) MaxLines() int {
	return s.maxLines
}

// Line returns the scrollback line at index i (0 = oldest retained).
// Returns nil if out of range.
func (s *Scrollback) Line(i int) *DisplayLine {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// Push appends a line evicted from the top of the display, trimming
// from the front when over maxLines, then clearing image fragments on
// every line older than imageHorizon from the new tail.
func (s *Scrollback) Push(line *DisplayLine) {
	if s.maxLines <= 0 {
		return
	}
	s.lines = append(s.lines, line)
	if len(s.lines) > s.maxLines {
		s.lines = s.lines[len(s.lines)-s.maxLines:]
	}
	if s.imageHorizon > 0 && len(s.lines) > s.imageHorizon {
		for _, l := range s.lines[:len(s.lines)-s.imageHorizon] {
			if l.IsImage() {
				l.ClearImages()
			}
		}
	}
}
