package vtcore

import "testing"

func TestEncodeMouseOffProtocol(t *testing.T) {
	term := New()
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventPress, Button: MouseButtonLeft, X: 1, Y: 1})
	if got != nil {
		t.Errorf("expected nil with mouse tracking off, got %v", got)
	}
}

func TestEncodeMouseX10OnlyPress(t *testing.T) {
	term := New()
	term.mouseProtocol = MouseX10
	if got := term.EncodeMouse(MouseEvent{Kind: MouseEventRelease, Button: MouseButtonLeft}); got != nil {
		t.Errorf("expected nil release under X10, got %v", got)
	}
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventPress, Button: MouseButtonLeft, X: 0, Y: 0})
	want := []byte{0x1B, '[', 'M', 32, 33, 33}
	if string(got) != string(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEncodeMouseSGR(t *testing.T) {
	term := New()
	term.mouseProtocol = MouseNormal
	term.mouseEncoding = MouseEncodingSGR
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventPress, Button: MouseButtonLeft, X: 4, Y: 9})
	if string(got) != "\x1b[<0;5;10M" {
		t.Errorf("expected SGR press, got %q", got)
	}
	got = term.EncodeMouse(MouseEvent{Kind: MouseEventRelease, Button: MouseButtonLeft, X: 4, Y: 9})
	if string(got) != "\x1b[<0;5;10m" {
		t.Errorf("expected SGR release, got %q", got)
	}
}

func TestEncodeMouseSGRPixels(t *testing.T) {
	term := New()
	term.mouseProtocol = MouseNormal
	term.mouseEncoding = MouseEncodingSGRPixels
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventPress, Button: MouseButtonLeft, PixelX: 40, PixelY: 90})
	if string(got) != "\x1b[<0;40;90M" {
		t.Errorf("expected SGR-pixels press, got %q", got)
	}
}

func TestEncodeMouseWheel(t *testing.T) {
	term := New()
	term.mouseProtocol = MouseNormal
	term.mouseEncoding = MouseEncodingSGR
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventPress, Button: MouseButtonWheelUp, X: 0, Y: 0})
	if string(got) != "\x1b[<64;1;1M" {
		t.Errorf("expected wheel-up report, got %q", got)
	}
}

func TestEncodeMouseButtonEventMotionRequiresButton(t *testing.T) {
	term := New()
	term.mouseProtocol = MouseButtonEvent
	term.mouseEncoding = MouseEncodingSGR
	if got := term.EncodeMouse(MouseEvent{Kind: MouseEventMotion, Button: MouseButtonNone}); got != nil {
		t.Errorf("expected nil for button-less motion, got %v", got)
	}
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventMotion, Button: MouseButtonLeft, X: 0, Y: 0})
	if string(got) != "\x1b[<32;1;1M" {
		t.Errorf("expected motion-with-button report, got %q", got)
	}
}

func TestEncodeMouseAnyEventAllowsBareMotion(t *testing.T) {
	term := New()
	term.mouseProtocol = MouseAnyEvent
	term.mouseEncoding = MouseEncodingSGR
	got := term.EncodeMouse(MouseEvent{Kind: MouseEventMotion, Button: MouseButtonNone, X: 2, Y: 2})
	if string(got) != "\x1b[<35;3;3M" {
		t.Errorf("expected bare-motion report, got %q", got)
	}
}
