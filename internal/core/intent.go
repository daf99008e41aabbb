package core

// Intent is a named user request, decoupled from the key or button that
// produced it.
type Intent int

const (
	IntentNone Intent = iota
	IntentRotate
	IntentMoveLeft
	IntentMoveRight
	IntentMoveDown
	IntentStart
	IntentPause
	IntentResume
	IntentRestart
)

// String returns the intent name used in config files and logs.
func (i Intent) String() string {
	switch i {
	case IntentRotate:
		return "rotate"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentMoveDown:
		return "move_down"
	case IntentStart:
		return "start"
	case IntentPause:
		return "pause"
	case IntentResume:
		return "resume"
	case IntentRestart:
		return "restart"
	default:
		return "none"
	}
}

// IsMovement reports whether the intent moves the falling piece.
func (i Intent) IsMovement() bool {
	switch i {
	case IntentRotate, IntentMoveLeft, IntentMoveRight, IntentMoveDown:
		return true
	}
	return false
}

// MovementIntents lists the four intents driven by directional input.
var MovementIntents = []Intent{IntentRotate, IntentMoveLeft, IntentMoveRight, IntentMoveDown}

// ControlIntents lists the intents driven by control buttons.
var ControlIntents = []Intent{IntentStart, IntentPause, IntentResume, IntentRestart}
