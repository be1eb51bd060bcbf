package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/vista/engine/input"
)

// Controller drives a Camera from polled input: WASD move, Space/LeftShift
// rise and sink, arrows pitch and yaw, Q/E roll. While captured, the mouse
// looks around.
type Controller struct {
	MoveSpeed   float32 // units per second
	RotSpeed    float32 // degrees per second
	Sensitivity float32 // degrees per pixel of mouse travel
	Home        mgl32.Vec3
	Camera      *Camera

	captured     bool
	haveLast     bool
	lastX, lastY float64
}

func NewController(cam *Camera) *Controller {
	return &Controller{
		MoveSpeed:   3,
		RotSpeed:    35,
		Sensitivity: 0.1,
		Camera:      cam,
	}
}

// Update turns held keys into one MoveAndRotate call.
func (cc *Controller) Update(in *input.State, dt float32) {
	speed := cc.MoveSpeed * dt
	turn := cc.RotSpeed * dt

	var move, rot mgl32.Vec3
	move[0] = axis(in, input.KeyW, input.KeyS) * speed
	move[1] = axis(in, input.KeyD, input.KeyA) * speed
	move[2] = axis(in, input.KeySpace, input.KeyLeftShift) * speed

	rot[0] = axis(in, input.KeyE, input.KeyQ) * turn
	rot[1] = axis(in, input.KeyDown, input.KeyUp) * turn
	rot[2] = axis(in, input.KeyLeft, input.KeyRight) * turn

	if move == (mgl32.Vec3{}) && rot == (mgl32.Vec3{}) {
		return
	}
	cc.Camera.MoveAndRotate(move, rot)
}

// axis is +1 while pos is held, otherwise -1 while neg is held.
func axis(in *input.State, pos, neg input.Key) float32 {
	if in.IsKeyPressed(pos) {
		return 1
	}
	if in.IsKeyPressed(neg) {
		return -1
	}
	return 0
}

// MouseLook rotates by the cursor travel since the previous sample. It does
// nothing unless captured; the first sample after capture only records the
// position.
func (cc *Controller) MouseLook(x, y float64) {
	if !cc.captured {
		return
	}
	if !cc.haveLast {
		cc.lastX, cc.lastY, cc.haveLast = x, y, true
		return
	}
	dx := float32(x - cc.lastX)
	dy := float32(y - cc.lastY)
	cc.lastX, cc.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	// screen y grows downward; positive pitch looks down, positive yaw turns left
	cc.Camera.Rotate(mgl32.Vec3{0, dy * cc.Sensitivity, -dx * cc.Sensitivity})
}

func (cc *Controller) SetCaptured(on bool) {
	cc.captured = on
	cc.haveLast = false
}

func (cc *Controller) Captured() bool { return cc.captured }

// Reset puts the camera back at Home with no rotation.
func (cc *Controller) Reset() {
	cc.Camera.SetPositionRotation(cc.Home, mgl32.Vec3{})
}
