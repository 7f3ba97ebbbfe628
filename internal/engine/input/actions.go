package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a semantic input action, decoupled from physical key codes.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionJump
	ActionInteract
	ActionToggleView
	ActionSpeedUp
	ActionSpeedDown
	ActionQuit

	actionCount
)

// Bindings maps physical key codes to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings returns the standard WASD layout.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_W:      ActionMoveForward,
		sdl.SCANCODE_S:      ActionMoveBack,
		sdl.SCANCODE_A:      ActionStrafeLeft,
		sdl.SCANCODE_D:      ActionStrafeRight,
		sdl.SCANCODE_SPACE:  ActionJump,
		sdl.SCANCODE_E:      ActionInteract,
		sdl.SCANCODE_V:      ActionToggleView,
		sdl.SCANCODE_R:      ActionSpeedUp,
		sdl.SCANCODE_F:      ActionSpeedDown,
		sdl.SCANCODE_ESCAPE: ActionQuit,
	}
}

// Actions tracks which semantic actions are currently held.
type Actions struct {
	bindings Bindings
	held     [actionCount]bool
}

// NewActions creates an action table with the given bindings.
func NewActions(b Bindings) *Actions {
	return &Actions{bindings: b}
}

// HandleKey updates held state for the action bound to code, if any.
func (a *Actions) HandleKey(code sdl.Scancode, down bool) {
	act, ok := a.bindings[code]
	if !ok {
		return
	}
	a.held[act] = down
}

// Held reports whether the action is currently held.
func (a *Actions) Held(act Action) bool {
	if act <= ActionNone || act >= actionCount {
		return false
	}
	return a.held[act]
}

// Lookup returns the action bound to the scancode, or ActionNone.
func (a *Actions) Lookup(code sdl.Scancode) Action {
	return a.bindings[code]
}

// Reset clears all held state (e.g. on window focus loss).
func (a *Actions) Reset() {
	a.held = [actionCount]bool{}
}
