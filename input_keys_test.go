package vtcore

import (
	"bytes"
	"testing"
)

func TestEncodeKeyCtrlLetter(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	got := term.EncodeKey(KeyEvent{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl})
	if !bytes.Equal(got, []byte{0x03}) {
		t.Errorf("expected ETX, got %v", got)
	}
}

func TestEncodeKeyAltRune(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	got := term.EncodeKey(KeyEvent{Key: KeyRune, Rune: 'x', Modifiers: ModAlt})
	if !bytes.Equal(got, []byte{0x1B, 'x'}) {
		t.Errorf("expected ESC x, got %v", got)
	}
}

func TestEncodeKeyArrowANSI(t *testing.T) {
	term := New(WithDeviceType(DeviceVT220))
	got := term.EncodeKey(KeyEvent{Key: KeyUp})
	if string(got) != "\x1b[A" {
		t.Errorf("expected ESC[A, got %q", got)
	}
}

func TestEncodeKeyArrowApplication(t *testing.T) {
	term := New(WithDeviceType(DeviceVT220))
	term.arrowMode = ArrowKeyVT100Application
	got := term.EncodeKey(KeyEvent{Key: KeyUp})
	if string(got) != "\x1bOA" {
		t.Errorf("expected ESCOA, got %q", got)
	}
}

func TestEncodeKeyArrowXTermModifier(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	got := term.EncodeKey(KeyEvent{Key: KeyRight, Modifiers: ModShift})
	if string(got) != "\x1b[1;2C" {
		t.Errorf("expected modified sequence, got %q", got)
	}
}

func TestEncodeKeyBackspaceByDevice(t *testing.T) {
	vt100 := New(WithDeviceType(DeviceVT100))
	if got := vt100.EncodeKey(KeyEvent{Key: KeyBackspace}); !bytes.Equal(got, []byte{0x08}) {
		t.Errorf("expected BS on VT100, got %v", got)
	}
	xterm := New(WithDeviceType(DeviceXTerm))
	if got := xterm.EncodeKey(KeyEvent{Key: KeyBackspace}); !bytes.Equal(got, []byte{0x7F}) {
		t.Errorf("expected DEL on xterm, got %v", got)
	}
}

func TestEncodeKeyEnterNewlineMode(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	term.mode |= ModeNewLine
	got := term.EncodeKey(KeyEvent{Key: KeyEnter})
	if string(got) != "\r\n" {
		t.Errorf("expected CRLF, got %q", got)
	}
}

func TestEncodeKeyFunctionKeysF1ToF4(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	got := term.EncodeKey(KeyEvent{Key: KeyF1})
	if string(got) != "\x1bOP" {
		t.Errorf("expected PF1, got %q", got)
	}
}

func TestEncodeKeyF11F12Tilde(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	if got := term.EncodeKey(KeyEvent{Key: KeyF11}); string(got) != "\x1b[23~" {
		t.Errorf("expected ESC[23~, got %q", got)
	}
	if got := term.EncodeKey(KeyEvent{Key: KeyF12}); string(got) != "\x1b[24~" {
		t.Errorf("expected ESC[24~, got %q", got)
	}
}

func TestEncodeKeyFullDuplexOff(t *testing.T) {
	term := New(WithDeviceType(DeviceXTerm))
	term.mode &^= ModeFullDuplex
	got := term.EncodeKey(KeyEvent{Key: KeyRune, Rune: 'a'})
	if got != nil {
		t.Errorf("expected nil when full duplex is off, got %v", got)
	}
}
