package core

// Button represents one of the console's physical buttons, abstracted
// from the keys the platform maps onto them.
type Button int

const (
	BtnLeft  Button = iota // D-pad left
	BtnRight               // D-pad right
	BtnUp                  // D-pad up
	BtnDown                // D-pad down
	BtnO                   // Primary action button
	BtnX                   // Secondary action button
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case BtnLeft:
		return "Left"
	case BtnRight:
		return "Right"
	case BtnUp:
		return "Up"
	case BtnDown:
		return "Down"
	case BtnO:
		return "O"
	case BtnX:
		return "X"
	default:
		return "Unknown"
	}
}

// InputFrame is the button state for a single simulation tick.
// The platform fills it from keyboard input; carts query it through
// IsPressed without knowing about the terminal.
type InputFrame struct {
	buttons map[Button]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		buttons: make(map[Button]bool),
	}
}

// Press marks a button as held for this frame.
func (f *InputFrame) Press(b Button) {
	if f.buttons == nil {
		f.buttons = make(map[Button]bool)
	}
	f.buttons[b] = true
}

// IsPressed reports whether the given button is held this frame.
func (f InputFrame) IsPressed(b Button) bool {
	if f.buttons == nil {
		return false
	}
	return f.buttons[b]
}

// Clear resets all buttons for the next frame.
func (f *InputFrame) Clear() {
	for b := range f.buttons {
		delete(f.buttons, b)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for b, v := range f.buttons {
		clone.buttons[b] = v
	}
	return clone
}
