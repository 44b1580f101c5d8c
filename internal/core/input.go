package core

// Intent is a semantic player command, abstracted from physical key presses.
// The front-end combines it with a Direction to build a world action.
type Intent int

const (
	IntentNone    Intent = iota
	IntentMove           // arrows, hjkl/yubn - walk one tile
	IntentWield          // g - pick up the top item
	IntentDrop           // p - put down the first wielded item
	IntentDig            // x - dig with a shovel
	IntentRead           // r - read a grave or gravestone
	IntentAnimate        // a - raise a corpse
	IntentSkip           // . or space - let one tick pass
	IntentCancel         // esc - leave a direction prompt or drop the running action
	IntentSave           // ctrl+s - write the save record
	IntentQuit           // q, ctrl+c - save and exit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMove:
		return "Move"
	case IntentWield:
		return "Wield"
	case IntentDrop:
		return "Drop"
	case IntentDig:
		return "Dig"
	case IntentRead:
		return "Read"
	case IntentAnimate:
		return "Animate"
	case IntentSkip:
		return "Skip"
	case IntentCancel:
		return "Cancel"
	case IntentSave:
		return "Save"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NeedsDirection reports whether the intent is followed by a direction prompt.
func (i Intent) NeedsDirection() bool {
	switch i {
	case IntentWield, IntentDrop, IntentDig, IntentRead, IntentAnimate:
		return true
	}
	return false
}

// InputFrame is the input collected during one UI frame.
type InputFrame struct {
	Intent Intent
	Dir    Direction
	HasDir bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an intent for this frame.
func (f *InputFrame) Set(i Intent) {
	f.Intent = i
}

// SetDir records a direction key for this frame.
func (f *InputFrame) SetDir(d Direction) {
	f.Dir = d
	f.HasDir = true
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	return f.Intent == i
}
