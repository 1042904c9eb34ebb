package core

// Button is the single button code sampled once per step.
// Codes are mutually exclusive: simultaneous presses are not representable.
type Button uint8

const (
	ButtonNone   Button = iota
	ButtonLeft          // A, Left arrow - move piece left
	ButtonRight         // D, Right arrow - move piece right, confirm in menus
	ButtonRotate        // W, Up arrow - rotate piece, cursor up in menus
	ButtonDrop          // S, Down arrow - soft drop, cursor down in menus
)

// Menu aliases for the same physical buttons.
const (
	ButtonSelectUp   = ButtonRotate
	ButtonSelectDown = ButtonDrop
	ButtonConfirm    = ButtonRight
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonRotate:
		return "Rotate"
	case ButtonDrop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of the known codes.
func (b Button) Valid() bool {
	return b <= ButtonDrop
}

// InputSource yields the current button code.
type InputSource interface {
	CurrentButtons() Button
}

// ButtonLatch holds the most recent button event between two steps.
// Hosts without key-release events (terminals) press it on every key event;
// CurrentButtons consumes the latched code so an idle step reads ButtonNone.
type ButtonLatch struct {
	code Button
}

// Press latches b, replacing any earlier code from the same step.
func (l *ButtonLatch) Press(b Button) {
	l.code = b
}

// CurrentButtons returns the latched code and clears the latch.
func (l *ButtonLatch) CurrentButtons() Button {
	b := l.code
	l.code = ButtonNone
	return b
}

// Peek returns the latched code without consuming it.
func (l *ButtonLatch) Peek() Button {
	return l.code
}

// Held is an InputSource that reports the same code until changed.
// Useful for scripted input and tests.
type Held Button

// CurrentButtons implements InputSource.
func (h Held) CurrentButtons() Button {
	return Button(h)
}
