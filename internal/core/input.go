package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - held movement
	ActionRight          // D, Right arrow - held movement
	ActionUp             // W, Up arrow - held movement
	ActionDown           // S, Down arrow - held movement
	ActionFire           // Space - edge-triggered shot
	ActionRestart        // R, Enter - edge-triggered restart after game over
	ActionQuit           // Q, Esc, Ctrl+C - edge-triggered session exit
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
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the held movement directions.
func (a Action) IsDirection() bool {
	return a == ActionLeft || a == ActionRight || a == ActionUp || a == ActionDown
}

// InputFrame represents the player's input for a single simulation step.
// Direction actions are present while the key is held; Fire, Restart and
// Quit are present only on the step their key was first pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Movement returns the requested movement direction derived from the held
// direction actions. The result has length 0 or 1, so diagonals are not faster.
func (f InputFrame) Movement() Vec2 {
	var d Vec2
	if f.Has(ActionRight) {
		d.X++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if f.Has(ActionUp) {
		d.Y--
	}
	return d.Normalize()
}
