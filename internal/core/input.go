package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the engine never sees keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - steer up
	ActionDown           // S, Down arrow, j - steer down
	ActionLeft           // A, Left arrow, h - steer left
	ActionRight          // D, Right arrow, l - steer right
	ActionPause          // P, Esc - pause/unpause
	ActionStop           // X - end the session, keep the program open
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionConfirm        // Enter - confirm in menus
	ActionBack           // B, Esc - back in menus
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionStop:
		return "Stop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
