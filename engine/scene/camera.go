package scene

import "github.com/go-gl/mathgl/mgl32"

type ProjectionMode uint8

const (
	Orthographic ProjectionMode = iota
	Perspective
)

func (m ProjectionMode) String() string {
	if m == Perspective {
		return "perspective"
	}
	return "orthographic"
}

// Toggle flips between the two projection modes.
func (m ProjectionMode) Toggle() ProjectionMode {
	if m == Perspective {
		return Orthographic
	}
	return Perspective
}

// Projection constants. The perspective aspect stays 1; the renderer applies
// the window aspect as a separate uniform.
const (
	PerspectiveFovY   = 45 // degrees
	PerspectiveAspect = 1
	PerspectiveNear   = 0.1
	PerspectiveFar    = 100

	OrthoHalfExtent = 2
	OrthoNear       = 0.1
	OrthoFar        = 100
)

// World axes: Z is up, the camera looks down +X at rest and its right hand
// points down -Y.
var (
	WorldForward = mgl32.Vec3{1, 0, 0}
	WorldRight   = mgl32.Vec3{0, -1, 0}
)

// Camera is a free-flying 3D camera. Rotation holds roll (X), pitch (Y) and
// yaw (Z) in degrees; angles accumulate without wraparound.
//
// The view matrix is cached and rebuilt lazily by ViewMatrix; setters and
// moves only mark it dirty. Moves use the basis from the last rebuild, so
// a rotation followed by moves with no ViewMatrix call in between moves
// along the old axes. The projection matrix is rebuilt eagerly by
// SetProjectionMode.
type Camera struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
	mode     ProjectionMode

	direction mgl32.Vec3
	right     mgl32.Vec3
	up        mgl32.Vec3

	view  mgl32.Mat4
	proj  mgl32.Mat4
	dirty bool
}

// NewCamera computes the basis and projection up front. The view matrix
// starts dirty, so the first ViewMatrix call always builds it.
func NewCamera(position, rotation mgl32.Vec3, mode ProjectionMode) *Camera {
	c := &Camera{position: position, rotation: rotation}
	c.updateBasis()
	c.SetProjectionMode(mode)
	c.dirty = true
	return c
}

// DefaultCamera sits at the origin with zero rotation, orthographic.
func DefaultCamera() *Camera { return NewCamera(mgl32.Vec3{}, mgl32.Vec3{}, Orthographic) }

func (c *Camera) SetPosition(p mgl32.Vec3) { c.position = p; c.dirty = true }
func (c *Camera) SetRotation(r mgl32.Vec3) { c.rotation = r; c.dirty = true }

func (c *Camera) SetPositionRotation(p, r mgl32.Vec3) {
	c.position = p
	c.rotation = r
	c.dirty = true
}

func (c *Camera) MoveForward(d float32) { c.position = c.position.Add(c.direction.Mul(d)); c.dirty = true }
func (c *Camera) MoveRight(d float32)   { c.position = c.position.Add(c.right.Mul(d)); c.dirty = true }
func (c *Camera) MoveUp(d float32)      { c.position = c.position.Add(c.up.Mul(d)); c.dirty = true }

// MoveAndRotate moves by move.X along direction, move.Y along right and
// move.Z along up, then adds rot to the rotation.
func (c *Camera) MoveAndRotate(move, rot mgl32.Vec3) {
	c.position = c.position.
		Add(c.direction.Mul(move.X())).
		Add(c.right.Mul(move.Y())).
		Add(c.up.Mul(move.Z()))
	c.rotation = c.rotation.Add(rot)
	c.dirty = true
}

func (c *Camera) Rotate(delta mgl32.Vec3) { c.rotation = c.rotation.Add(delta); c.dirty = true }

// ViewMatrix rebuilds the basis and view matrix if anything changed since
// the last call, and returns the cached matrix otherwise.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	if c.dirty {
		c.updateView()
	}
	return c.view
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 { return c.proj }

func (c *Camera) SetProjectionMode(mode ProjectionMode) {
	c.mode = mode
	c.updateProjection()
}

func (c *Camera) Position() mgl32.Vec3           { return c.position }
func (c *Camera) Rotation() mgl32.Vec3           { return c.rotation }
func (c *Camera) ProjectionMode() ProjectionMode { return c.mode }

// Direction, Right and Up return the basis as of the last rebuild.
func (c *Camera) Direction() mgl32.Vec3 { return c.direction }
func (c *Camera) Right() mgl32.Vec3     { return c.right }
func (c *Camera) Up() mgl32.Vec3        { return c.up }

// Dirty reports whether the next ViewMatrix call will rebuild.
func (c *Camera) Dirty() bool { return c.dirty }

func (c *Camera) updateBasis() {
	roll := mgl32.DegToRad(c.rotation.X())
	pitch := mgl32.DegToRad(c.rotation.Y())
	yaw := mgl32.DegToRad(c.rotation.Z())

	rot := mgl32.Rotate3DZ(yaw).Mul3(mgl32.Rotate3DY(pitch)).Mul3(mgl32.Rotate3DX(roll))
	c.direction = rot.Mul3x1(WorldForward).Normalize()
	c.right = rot.Mul3x1(WorldRight).Normalize()
	c.up = c.right.Cross(c.direction)
}

func (c *Camera) updateView() {
	c.updateBasis()
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.direction), c.up)
	c.dirty = false
}

func (c *Camera) updateProjection() {
	if c.mode == Perspective {
		c.proj = mgl32.Perspective(mgl32.DegToRad(PerspectiveFovY), PerspectiveAspect, PerspectiveNear, PerspectiveFar)
		return
	}
	const e = OrthoHalfExtent
	c.proj = mgl32.Ortho(-e, e, -e, e, OrthoNear, OrthoFar)
}
