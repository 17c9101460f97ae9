// Package vtcore provides a headless DEC/ANSI/xterm-compatible terminal
// emulator core.
//
// It emulates a terminal's internal state without any display surface,
// making it suitable for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Driving terminal-based automation and screen scraping
//   - Embedding a terminal view inside another UI toolkit
//
// # Quick Start
//
// Create a terminal and write escape sequences to it:
//
//	term := vtcore.New(vtcore.WithSize(80, 24))
//	term.Write([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!"))
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: the main emulator, processing bytes written to it
//   - [DisplayLine] and [Cell]: the 2D grid of cells with scrollback
//   - [Attributes] and [Color]: per-cell rendering state
//   - [SaveableState]: the cursor/charset/attribute snapshot DECSC/DECRC
//     swaps
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so raw bytes
// from a pty can be written directly:
//
//	term := vtcore.New(
//	    vtcore.WithSize(80, 24),
//	    vtcore.WithScrollbackMax(5000),
//	    vtcore.WithDisplayListener(listener),
//	    vtcore.WithResponse(ptyWriter),
//	)
//
//	cmd := exec.Command("bash")
//	ptmx, _ := pty.Start(cmd)
//	io.Copy(term, ptmx)
//
// # Concurrency
//
// All Terminal methods are safe for concurrent use; a single mutex guards
// the parser, dispatcher, and display state. The reader driver runs the
// parse loop on its own goroutine and delivers display updates through the
// [DisplayListener] callback rather than requiring callers to poll.
//
// # Supported sequences
//
// The terminal supports the core ECMA-48/DEC/xterm sequence set:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP) and save/restore
//     (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH) and insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM) with origin mode
//   - Character attributes (SGR) including indexed and true-color
//   - DEC private modes (DECSET/DECRST), synchronized update mode
//   - Device status reports (DSR), primary/secondary device attributes
//   - Alternate-screen emulation via save-cursor-plus-erase
//   - Mouse reporting (X10, normal, button-event, any-event; UTF-8, SGR,
//     and SGR-pixels encodings)
//   - Window title (OSC 0/2)
//   - Sixel graphics (DCS q) and the OSC 444 Jexer / OSC 1337 iTerm2
//     inline-image extensions
//
// Kitty graphics, OSC 8 hyperlinks, OSC 52 clipboard access, and OSC 133
// shell-integration markers are out of scope.
package vtcore
