package vtcore

// DeviceType selects which of the four emulated device profiles is
// active. It is fixed at construction and determines identification
// replies and which protocol features are enabled (§6).
type DeviceType uint8

const (
	DeviceVT100 DeviceType = iota
	DeviceVT102
	DeviceVT220
	DeviceXTerm
)

// TerminalMode is a bitmask of the boolean modes §3 lists: insert,
// keypad, arrow key family, shift-out, S8C1T, new-line, reverse
// video, full duplex, cursor visibility, 132-column, printer
// controller, and sixel scrolling.
type TerminalMode uint32

const (
	ModeInsert TerminalMode = 1 << iota
	ModeKeypadApplication
	ModeArrowANSI
	ModeArrowVT100
	ModeShiftOut
	ModeS8C1T
	ModeNewLine
	ModeReverseVideo
	ModeFullDuplex
	ModeCursorVisible
	ModeColumns132
	ModePrinterController
	ModeLineWrap
	ModeOrigin
	ModeSixelScrolling
	ModeSynchronizedUpdate
	ModeBracketedPaste
)

// ArrowKeyMode selects which byte family arrow/navigation keys emit.
type ArrowKeyMode uint8

const (
	ArrowKeyANSI ArrowKeyMode = iota
	ArrowKeyVT100Application
	ArrowKeyVT52
)

// SingleShift is the one-shot GL substitution armed by SS2/SS3.
type SingleShift uint8

const (
	SingleShiftNone SingleShift = iota
	SingleShiftG2
	SingleShiftG3
)

// LockshiftMode is a persistent invocation of a G-set into GL or GR.
type LockshiftMode uint8

const (
	LockshiftNone LockshiftMode = iota
	LockshiftG2GL
	LockshiftG3GL
	LockshiftG1GR
	LockshiftG2GR
	LockshiftG3GR
)

// MouseProtocol selects which events are reported.
type MouseProtocol uint8

const (
	MouseOff MouseProtocol = iota
	MouseX10
	MouseNormal
	MouseButtonEvent
	MouseAnyEvent
)

// MouseEncoding selects the wire format of a mouse report.
type MouseEncoding uint8

const (
	MouseEncodingX10 MouseEncoding = iota
	MouseEncodingUTF8
	MouseEncodingSGR
	MouseEncodingSGRPixels
)

// DoubleHeight tags a DisplayLine's DECDHL role.
type DoubleHeight uint8

const (
	DoubleHeightNone DoubleHeight = iota
	DoubleHeightTop
	DoubleHeightBottom
)

// ErasePolicy selects how erase operations fill cleared cells.
type ErasePolicy uint8

const (
	// EraseVT10x clears to a true blank: glyph and attributes both reset.
	EraseVT10x ErasePolicy = iota
	// EraseXTerm performs back-color-erase: glyph set to space, attrs
	// set to the current drawing attributes.
	EraseXTerm
)
