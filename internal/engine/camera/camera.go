// Package camera provides the first-person camera for the demo.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is clamped short of straight up/down to avoid gimbal flip.
const maxPitch = 89.0

// FirstPerson is a free-look camera driven by mouse deltas and
// per-frame movement calls. All state is explicit; the game owns the
// instance and passes it where needed.
type FirstPerson struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32 // degrees; -90 looks down -Z
	Pitch float32 // degrees

	Speed       float32 // movement units per Move call
	Sensitivity float32 // degrees per pixel of mouse delta

	// Mouse-look baseline. The first reported position produces no
	// orientation change, it only seeds lastX/lastY.
	lastX, lastY float32
	firstMouse   bool
}

// NewFirstPerson creates a camera at the given position looking down -Z.
func NewFirstPerson(position mgl32.Vec3, speed, sensitivity float32) *FirstPerson {
	c := &FirstPerson{
		Position:    position,
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Pitch:       0.0,
		Speed:       speed,
		Sensitivity: sensitivity,
		firstMouse:  true,
	}
	c.updateFront()
	return c
}

// ProcessMouse consumes an absolute pointer position. Yaw grows with
// rightward motion, pitch with upward motion, both scaled by
// Sensitivity; pitch is clamped to ±89°.
func (c *FirstPerson) ProcessMouse(x, y float32) {
	if c.firstMouse {
		c.lastX = x
		c.lastY = y
		c.firstMouse = false
		return
	}

	dx := (x - c.lastX) * c.Sensitivity
	dy := (c.lastY - y) * c.Sensitivity // window Y grows downward
	c.lastX = x
	c.lastY = y

	c.Yaw += dx
	c.Pitch += dy
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}

	c.updateFront()
}

// Move translates the camera: forward along Front, right along the
// normalized Front×Up, each scaled by Speed. Arguments are direction
// multipliers, typically -1, 0 or 1.
func (c *FirstPerson) Move(forward, right float32) {
	if forward != 0 {
		c.Position = c.Position.Add(c.Front.Mul(forward * c.Speed))
	}
	if right != 0 {
		strafe := c.Front.Cross(c.Up).Normalize()
		c.Position = c.Position.Add(strafe.Mul(right * c.Speed))
	}
}

// AdjustSpeed changes movement speed, never below a small positive floor.
func (c *FirstPerson) AdjustSpeed(delta float32) {
	c.Speed += delta
	if c.Speed < 0.005 {
		c.Speed = 0.005
	}
}

// ViewMatrix returns the look-from-position-along-front view matrix.
func (c *FirstPerson) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// updateFront recomputes the front vector from yaw and pitch.
func (c *FirstPerson) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
}
