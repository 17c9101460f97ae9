// Command vtreplay is a small demo that drives a vtcore.Terminal
// against a real PTY-backed shell: PTY output feeds the reader driver,
// and a subset of raw-mode host keystrokes are translated back into
// the PTY through the input translator.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/mnagy94/vtcore"
)

func main() {
	shellPath := flag.String("shell", defaultShell(), "shell to spawn inside the PTY")
	flag.Parse()

	cmd := exec.Command(*shellPath)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtreplay: start pty: %v\n", err)
		os.Exit(1)
	}
	defer ptmx.Close()

	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
		cols, rows = w, h
	}
	pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtreplay: raw mode: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	listener := &stdoutListener{}
	vt := vtcore.New(
		vtcore.WithDeviceType(vtcore.DeviceXTerm),
		vtcore.WithSize(cols, rows),
		vtcore.WithDisplayListener(listener),
		vtcore.WithResponse(ptmx),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		vt.Close()
		os.Exit(0)
	}()

	vt.Run(ptmx)

	keyLoop(os.Stdin, ptmx, vt)

	cmd.Wait()
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

// stdoutListener renders a vtcore.Snapshot to the real controlling
// terminal: clear, home, repaint every visible cell.
type stdoutListener struct {
	vtcore.NoopDisplayListener
}

func (l *stdoutListener) DisplayChanged(snap *vtcore.Snapshot) {
	var out []byte
	out = append(out, "\x1b[H\x1b[2J"...)
	for _, line := range snap.Lines {
		for i := 0; i < line.Length(); i++ {
			cell := line.CharAt(i)
			if cell.CodePoint == 0 {
				out = append(out, ' ')
				continue
			}
			out = append(out, []byte(string(cell.CodePoint))...)
		}
		out = append(out, '\r', '\n')
	}
	out = append(out, []byte(fmt.Sprintf("\x1b[%d;%dH", snap.CursorY+1, snap.CursorX+1))...)
	os.Stdout.Write(out)
}

// keyLoop reads raw keystrokes from stdin, translates the handful of
// sequences it recognizes (plain runes, Ctrl bytes, and the four
// arrow keys) into KeyEvents, and writes the translator's output to
// the PTY. Anything else passes through untranslated.
func keyLoop(stdin *os.File, ptmx *os.File, t *vtcore.Terminal) {
	buf := make([]byte, 256)
	for {
		n, err := stdin.Read(buf)
		if err != nil {
			return
		}
		for i := 0; i < n; i++ {
			b := buf[i]
			if b == 0x1b && i+2 < n && buf[i+1] == '[' {
				var key vtcore.Key
				switch buf[i+2] {
				case 'A':
					key = vtcore.KeyUp
				case 'B':
					key = vtcore.KeyDown
				case 'C':
					key = vtcore.KeyRight
				case 'D':
					key = vtcore.KeyLeft
				default:
					ptmx.Write(buf[i : i+3])
					i += 2
					continue
				}
				ptmx.Write(t.EncodeKey(vtcore.KeyEvent{Key: key}))
				i += 2
				continue
			}
			if b == 0x03 { // Ctrl+C: let the shell's job control see it
				ptmx.Write([]byte{b})
				continue
			}
			ev := vtcore.KeyEvent{Key: vtcore.KeyRune, Rune: rune(b)}
			if out := t.EncodeKey(ev); out != nil {
				ptmx.Write(out)
			} else {
				ptmx.Write([]byte{b})
			}
		}
	}
}
