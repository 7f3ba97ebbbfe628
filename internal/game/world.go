package game

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gloamdev/gloam/internal/engine/camera"
	"github.com/gloamdev/gloam/internal/engine/model"
)

const (
	eyeHeight     = 1.6  // camera height above the floor
	gravity       = 0.01 // per-frame downward acceleration
	jumpVelocity  = 0.15
	reachDistance = 2.5 // max pickup range
	aimCosine     = 0.9 // object must be within ~25° of the view ray

	swingDuration = 20 // frames a melee swing lasts
)

// Object is one placed model instance in the world.
type Object struct {
	Model     *model.Loader
	Position  mgl32.Vec3
	RotationY float32 // degrees
	Scale     float32
	Carried   bool
}

// ModelMatrix composes translate * rotateY * scale for the object.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.RotationY)))
	s := o.Scale
	if s == 0 {
		s = 1
	}
	return m.Mul4(mgl32.Scale3D(s, s, s))
}

// Player holds avatar state that is not part of the camera.
type Player struct {
	VerticalVel float32
	Grounded    bool
	Flashlight  bool
	MeleeView   bool
	SwingTime   int // frames remaining in the current swing, 0 = idle
}

// World owns the placed objects and the player.
type World struct {
	Objects []*Object
	Player  Player
	carried *Object
}

// NewWorld creates an empty world with the player on the ground.
func NewWorld() *World {
	return &World{
		Player: Player{Grounded: true},
	}
}

// Jump starts a jump if the player is on the ground.
func (w *World) Jump() {
	if w.Player.Grounded {
		w.Player.VerticalVel = jumpVelocity
		w.Player.Grounded = false
	}
}

// StepPhysics advances the jump arc one frame, moving the camera
// vertically and landing it back at eye height.
func (w *World) StepPhysics(cam *camera.FirstPerson) {
	if w.Player.Grounded {
		return
	}

	w.Player.VerticalVel -= gravity
	y := cam.Position.Y() + w.Player.VerticalVel
	if y <= eyeHeight {
		y = eyeHeight
		w.Player.VerticalVel = 0
		w.Player.Grounded = true
	}
	cam.Position = mgl32.Vec3{cam.Position.X(), y, cam.Position.Z()}
}

// ToggleFlashlight flips the flashlight. Only meaningful in normal view.
func (w *World) ToggleFlashlight() {
	w.Player.Flashlight = !w.Player.Flashlight
}

// ToggleView switches between normal and melee view.
func (w *World) ToggleView() {
	w.Player.MeleeView = !w.Player.MeleeView
	w.Player.SwingTime = 0
}

// StartSwing begins a melee swing if one is not already running.
func (w *World) StartSwing() {
	if w.Player.MeleeView && w.Player.SwingTime == 0 {
		w.Player.SwingTime = swingDuration
	}
}

// TickSwing advances the active swing one frame.
func (w *World) TickSwing() {
	if w.Player.SwingTime > 0 {
		w.Player.SwingTime--
	}
}

// SwingAngle returns the current swing wobble in degrees, 0 when idle.
func (w *World) SwingAngle() float32 {
	if w.Player.SwingTime == 0 {
		return 0
	}
	// One sine arc over the swing: up then back down.
	t := float64(swingDuration-w.Player.SwingTime) / float64(swingDuration)
	return float32(gomath.Sin(t*gomath.Pi)) * 60.0
}

// Carried returns the object the player is holding, or nil.
func (w *World) Carried() *Object {
	return w.carried
}

// Interact picks up the nearest reachable object the camera is looking
// at, or drops the carried one in front of the player.
func (w *World) Interact(cam *camera.FirstPerson) {
	if w.carried != nil {
		w.drop(cam)
		return
	}

	var best *Object
	bestDist := float32(reachDistance)
	for _, o := range w.Objects {
		to := o.Position.Sub(cam.Position)
		dist := to.Len()
		if dist > bestDist || dist == 0 {
			continue
		}
		if to.Normalize().Dot(cam.Front) < aimCosine {
			continue
		}
		best = o
		bestDist = dist
	}

	if best != nil {
		best.Carried = true
		w.carried = best
	}
}

// drop places the carried object on the floor in front of the camera.
func (w *World) drop(cam *camera.FirstPerson) {
	forward := mgl32.Vec3{cam.Front.X(), 0, cam.Front.Z()}
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	pos := cam.Position.Add(forward.Mul(1.5))
	w.carried.Position = mgl32.Vec3{pos.X(), 0, pos.Z()}
	w.carried.Carried = false
	w.carried = nil
}

// CarriedTransform positions the carried object in front of the camera,
// slightly down and to the right so it reads as held.
func (w *World) CarriedTransform(cam *camera.FirstPerson) mgl32.Mat4 {
	right := cam.Front.Cross(cam.Up).Normalize()
	pos := cam.Position.
		Add(cam.Front.Mul(0.8)).
		Add(right.Mul(0.3)).
		Add(mgl32.Vec3{0, -0.3, 0})

	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-cam.Yaw - 90)))
	s := w.carried.Scale
	if s == 0 {
		s = 1
	}
	return m.Mul4(mgl32.Scale3D(s*0.5, s*0.5, s*0.5))
}
