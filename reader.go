package vtcore

import (
	"errors"
	"fmt"
	"io"
)

// defaultUserEventQueueSize bounds the inbound UI-event queue so a
// runaway producer can't grow memory unbounded; Post blocks once full,
// applying natural backpressure to the caller.
const defaultUserEventQueueSize = 256

// Run starts the reader driver on its own goroutine: it continuously
// pulls bytes from r, feeds the parser under the terminal's lock, and
// notifies the display listener (§4.8). It returns immediately; the
// driver stops when r returns an error/EOF or Close is called.
func (t *Terminal) Run(r io.Reader) {
	t.mu.Lock()
	if t.userEvents == nil {
		t.userEvents = make(chan func(*Terminal), defaultUserEventQueueSize)
	}
	stop := make(chan struct{})
	t.readerStop = stop
	t.mu.Unlock()

	go t.readLoop(r, stop)
}

// PostUserEvent enqueues fn to run under the parser lock at the top of
// the reader's next iteration, ahead of any pending input bytes — this
// gives UI-originated actions (resize, paste, input translation)
// priority over terminal output parsing per §5.
func (t *Terminal) PostUserEvent(fn func(*Terminal)) {
	t.mu.Lock()
	ch := t.userEvents
	t.mu.Unlock()
	if ch == nil {
		return
	}
	ch <- fn
}

func (t *Terminal) readLoop(r io.Reader, stop chan struct{}) {
	buf := make([]byte, 4096)
	for {
		select {
		case <-stop:
			return
		default:
		}

		t.drainUserEvents()

		n, err := r.Read(buf)
		if n > 0 {
			t.Write(buf[:n])
		}
		if err != nil {
			t.handleReadError(err)
			return
		}
	}
}

func (t *Terminal) drainUserEvents() {
	for {
		select {
		case fn := <-t.userEvents:
			t.mu.Lock()
			fn(t)
			t.mu.Unlock()
		default:
			return
		}
	}
}

// handleReadError implements §7's stream-level failure handling: a
// synthetic ANSI message is fed through the parser so the cause is
// visible on screen, then the terminal is closed.
func (t *Terminal) handleReadError(err error) {
	msg := syntheticStreamErrorMessage(err)
	t.Write([]byte(msg))
	t.Close()
}

// syntheticStreamErrorMessage renders err as an ANSI-formatted line
// (bold red) the reader writes to itself before tearing down, so a
// frozen screen still shows why the stream ended.
func syntheticStreamErrorMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return "\r\n\x1b[1;31m[stream closed: EOF]\x1b[0m\r\n"
	}
	return fmt.Sprintf("\r\n\x1b[1;31m[stream error: %s]\x1b[0m\r\n", err)
}
