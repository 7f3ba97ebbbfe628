package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		code sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_W, ActionMoveForward},
		{sdl.SCANCODE_S, ActionMoveBack},
		{sdl.SCANCODE_A, ActionStrafeLeft},
		{sdl.SCANCODE_D, ActionStrafeRight},
		{sdl.SCANCODE_SPACE, ActionJump},
		{sdl.SCANCODE_E, ActionInteract},
		{sdl.SCANCODE_V, ActionToggleView},
		{sdl.SCANCODE_ESCAPE, ActionQuit},
	}
	for _, tt := range tests {
		if got := b[tt.code]; got != tt.want {
			t.Errorf("binding for scancode %d = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestHeldStateFollowsKeyEvents(t *testing.T) {
	a := NewActions(DefaultBindings())

	if a.Held(ActionMoveForward) {
		t.Error("expected no action held initially")
	}

	a.HandleKey(sdl.SCANCODE_W, true)
	if !a.Held(ActionMoveForward) {
		t.Error("expected forward held after key down")
	}

	// Another key down does not disturb the first.
	a.HandleKey(sdl.SCANCODE_A, true)
	if !a.Held(ActionMoveForward) || !a.Held(ActionStrafeLeft) {
		t.Error("expected both forward and strafe-left held")
	}

	a.HandleKey(sdl.SCANCODE_W, false)
	if a.Held(ActionMoveForward) {
		t.Error("expected forward released after key up")
	}
	if !a.Held(ActionStrafeLeft) {
		t.Error("expected strafe-left still held")
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	a := NewActions(DefaultBindings())

	a.HandleKey(sdl.SCANCODE_Z, true)
	for act := ActionNone + 1; act < actionCount; act++ {
		if a.Held(act) {
			t.Errorf("unbound key set action %d", act)
		}
	}

	if got := a.Lookup(sdl.SCANCODE_Z); got != ActionNone {
		t.Errorf("lookup of unbound key = %d, want ActionNone", got)
	}
}

func TestHeldRejectsOutOfRange(t *testing.T) {
	a := NewActions(DefaultBindings())
	if a.Held(ActionNone) {
		t.Error("ActionNone must never be held")
	}
	if a.Held(Action(99)) {
		t.Error("out-of-range action must never be held")
	}
}

func TestReset(t *testing.T) {
	a := NewActions(DefaultBindings())
	a.HandleKey(sdl.SCANCODE_W, true)
	a.HandleKey(sdl.SCANCODE_SPACE, true)

	a.Reset()

	if a.Held(ActionMoveForward) || a.Held(ActionJump) {
		t.Error("expected all actions cleared after reset")
	}
}
