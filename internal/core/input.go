package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H - steer left
	ActionRight        // Right arrow, D, L - steer right
	ActionUp           // Up arrow, W, K - steer up
	ActionDown         // Down arrow, S, J - steer down
	ActionStart        // Space, Enter - start or restart a round
	ActionStop         // Escape, P - stop (pause) the round
	ActionQuit         // Q, Ctrl+C - exit; handled by the platform
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionStop:
		return "Stop"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame collects the actions triggered during one simulation tick.
// Actions keep their arrival order: pressing Left then Up within one frame
// must leave the snake moving up.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
// The backing array is dropped rather than reused since Bubble Tea models
// hold frames by value.
func (f *InputFrame) Clear() {
	f.actions = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.actions = append(clone.actions, f.actions...)
	return clone
}
