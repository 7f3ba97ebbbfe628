package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func almostEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < epsilon
}

func newTestCamera() *FirstPerson {
	return NewFirstPerson(mgl32.Vec3{0, 0, 5}, 0.05, 0.05)
}

func TestInitialOrientation(t *testing.T) {
	c := newTestCamera()

	if c.Yaw != -90 {
		t.Errorf("expected yaw -90, got %f", c.Yaw)
	}
	if c.Pitch != 0 {
		t.Errorf("expected pitch 0, got %f", c.Pitch)
	}

	// Yaw -90, pitch 0 looks down -Z.
	want := mgl32.Vec3{0, 0, -1}
	for i := 0; i < 3; i++ {
		if !almostEqual(c.Front[i], want[i]) {
			t.Errorf("front[%d] = %f, want %f", i, c.Front[i], want[i])
		}
	}
}

func TestFirstMouseSampleIsBaseline(t *testing.T) {
	c := newTestCamera()
	yaw, pitch := c.Yaw, c.Pitch

	c.ProcessMouse(640, 360)

	if c.Yaw != yaw || c.Pitch != pitch {
		t.Errorf("first sample changed orientation: yaw %f->%f pitch %f->%f",
			yaw, c.Yaw, pitch, c.Pitch)
	}
}

func TestMouseDeltaScaling(t *testing.T) {
	c := newTestCamera()
	c.ProcessMouse(100, 100)

	// dx=40, dy=-20 (pointer moved down 20 pixels).
	c.ProcessMouse(140, 120)

	if !almostEqual(c.Yaw, -90+40*0.05) {
		t.Errorf("yaw = %f, want %f", c.Yaw, -90+40*0.05)
	}
	if !almostEqual(c.Pitch, -20*0.05) {
		t.Errorf("pitch = %f, want %f", c.Pitch, -20*0.05)
	}
}

func TestPitchClamp(t *testing.T) {
	c := newTestCamera()
	c.ProcessMouse(0, 10000)

	// Pointer rockets to the top of the screen: pitch clamps at +89.
	c.ProcessMouse(0, 0)
	if c.Pitch != 89 {
		t.Errorf("pitch = %f, want clamp at 89", c.Pitch)
	}

	// And back down far past the limit: clamps at -89.
	c.ProcessMouse(0, 30000)
	if c.Pitch != -89 {
		t.Errorf("pitch = %f, want clamp at -89", c.Pitch)
	}
}

func TestFrontRecomputedOnLook(t *testing.T) {
	c := newTestCamera()
	c.ProcessMouse(0, 0)

	// Turn 90° to the right: yaw -90 -> 0, front becomes +X.
	c.ProcessMouse(90/0.05, 0)

	if !almostEqual(c.Front.X(), 1) || !almostEqual(c.Front.Z(), 0) {
		t.Errorf("front = %v, want (1,0,0)", c.Front)
	}

	if !almostEqual(c.Front.Len(), 1) {
		t.Errorf("front not normalized: len %f", c.Front.Len())
	}
}

func TestMoveForwardFollowsFront(t *testing.T) {
	c := newTestCamera()

	c.Move(1, 0)
	want := mgl32.Vec3{0, 0, 5 - 0.05}
	for i := 0; i < 3; i++ {
		if !almostEqual(c.Position[i], want[i]) {
			t.Errorf("position[%d] = %f, want %f", i, c.Position[i], want[i])
		}
	}

	c.Move(-1, 0)
	if !almostEqual(c.Position.Z(), 5) {
		t.Errorf("expected return to z=5, got %f", c.Position.Z())
	}
}

func TestStrafeIsPerpendicular(t *testing.T) {
	c := newTestCamera()

	c.Move(0, 1)
	// Looking down -Z, right is +X.
	if !almostEqual(c.Position.X(), 0.05) {
		t.Errorf("strafe right moved x to %f, want 0.05", c.Position.X())
	}
	if !almostEqual(c.Position.Z(), 5) {
		t.Errorf("strafe changed z to %f", c.Position.Z())
	}
}

func TestAdjustSpeedFloor(t *testing.T) {
	c := newTestCamera()

	c.AdjustSpeed(0.01)
	if !almostEqual(c.Speed, 0.06) {
		t.Errorf("speed = %f, want 0.06", c.Speed)
	}

	c.AdjustSpeed(-1)
	if c.Speed != 0.005 {
		t.Errorf("speed = %f, want floor 0.005", c.Speed)
	}
}

func TestViewMatrixLooksAlongFront(t *testing.T) {
	c := newTestCamera()
	got := c.ViewMatrix()
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 1, 0})

	for i := 0; i < 16; i++ {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("view matrix differs at %d: %f vs %f", i, got[i], want[i])
		}
	}
}
