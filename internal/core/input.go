package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge the pointer left
	ActionRight          // D, Right arrow - nudge the pointer right
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input collected for one simulation tick: the discrete
// actions triggered plus the latest pointer column, if the pointer moved.
type InputFrame struct {
	Actions map[Action]bool

	// PointerX is the pointer column in screen cells. Only meaningful when
	// HasPointer is set.
	PointerX   int
	HasPointer bool
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

// SetPointer records the pointer column for this frame.
func (f *InputFrame) SetPointer(x int) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
	f.HasPointer = false
}
