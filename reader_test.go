package vtcore

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type countingListener struct {
	NoopDisplayListener
	changes int
}

func (c *countingListener) DisplayChanged(*Snapshot) { c.changes++ }

func TestRunConsumesBytesAndStopsOnEOF(t *testing.T) {
	listener := &countingListener{}
	term := New(WithDisplayListener(listener))
	r := strings.NewReader("hello")

	done := make(chan struct{})
	go func() {
		term.Run(r)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return goroutine control in time")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		term.mu.Lock()
		closed := term.closed
		term.mu.Unlock()
		if closed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("terminal never closed after EOF")
		}
		time.Sleep(5 * time.Millisecond)
	}

	snap := term.Snapshot()
	if !strings.Contains(lineText(snap.Lines[0]), "hello") {
		t.Errorf("expected written bytes on screen, got %q", lineText(snap.Lines[0]))
	}
}

func lineText(l *DisplayLine) string {
	var sb strings.Builder
	for i := 0; i < l.Length(); i++ {
		c := l.CharAt(i)
		if c.CodePoint == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.CodePoint)
	}
	return sb.String()
}

func TestHandleReadErrorWritesSyntheticMessage(t *testing.T) {
	term := New()
	term.handleReadError(errors.New("boom"))
	if !term.closed {
		t.Error("expected terminal closed after read error")
	}
	snap := term.Snapshot()
	found := false
	for _, line := range snap.Lines {
		if strings.Contains(lineText(line), "stream error") {
			found = true
		}
	}
	if !found {
		t.Error("expected synthetic stream-error message on screen")
	}
}

func TestSyntheticStreamErrorMessageEOF(t *testing.T) {
	msg := syntheticStreamErrorMessage(io.EOF)
	if !strings.Contains(msg, "EOF") {
		t.Errorf("expected EOF mention, got %q", msg)
	}
}
