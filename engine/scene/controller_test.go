package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/vista/engine/input"
)

func newTestController() (*Controller, *input.State) {
	cc := NewController(DefaultCamera())
	cc.MoveSpeed = 2
	cc.RotSpeed = 10
	cc.Sensitivity = 0.5
	return cc, input.NewState()
}

func TestController_IdleLeavesCameraClean(t *testing.T) {
	cc, in := newTestController()
	cc.Camera.ViewMatrix()

	cc.Update(in, 1)

	assert.False(t, cc.Camera.Dirty())
	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Position())
}

func TestController_Movement(t *testing.T) {
	cases := []struct {
		key  input.Key
		want mgl32.Vec3
	}{
		{input.KeyW, mgl32.Vec3{1, 0, 0}},
		{input.KeyS, mgl32.Vec3{-1, 0, 0}},
		{input.KeyD, mgl32.Vec3{0, -1, 0}},
		{input.KeyA, mgl32.Vec3{0, 1, 0}},
		{input.KeySpace, mgl32.Vec3{0, 0, 1}},
		{input.KeyLeftShift, mgl32.Vec3{0, 0, -1}},
	}
	for _, tc := range cases {
		cc, in := newTestController()
		require.NoError(t, in.PressKey(tc.key))

		cc.Update(in, 0.5)

		assertVec3(t, tc.want, cc.Camera.Position(), "key %d", tc.key)
	}
}

func TestController_OpposingKeysPreferPositive(t *testing.T) {
	cc, in := newTestController()
	require.NoError(t, in.PressKey(input.KeyW))
	require.NoError(t, in.PressKey(input.KeyS))

	cc.Update(in, 0.5)

	assertVec3(t, mgl32.Vec3{1, 0, 0}, cc.Camera.Position())
}

func TestController_Rotation(t *testing.T) {
	cases := []struct {
		key  input.Key
		want mgl32.Vec3
	}{
		{input.KeyE, mgl32.Vec3{10, 0, 0}},
		{input.KeyQ, mgl32.Vec3{-10, 0, 0}},
		{input.KeyUp, mgl32.Vec3{0, -10, 0}},
		{input.KeyDown, mgl32.Vec3{0, 10, 0}},
		{input.KeyLeft, mgl32.Vec3{0, 0, 10}},
		{input.KeyRight, mgl32.Vec3{0, 0, -10}},
	}
	for _, tc := range cases {
		cc, in := newTestController()
		require.NoError(t, in.PressKey(tc.key))

		cc.Update(in, 1)

		assertVec3(t, tc.want, cc.Camera.Rotation(), "key %d", tc.key)
	}
}

func TestController_MouseLook(t *testing.T) {
	cc, _ := newTestController()

	cc.MouseLook(100, 100)
	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Rotation(), "ignored while not captured")

	cc.SetCaptured(true)
	require.True(t, cc.Captured())
	cc.MouseLook(100, 100) // first sample only records
	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Rotation())

	cc.MouseLook(110, 90)
	assertVec3(t, mgl32.Vec3{0, -10 * 0.5, -10 * 0.5}, cc.Camera.Rotation())

	cc.SetCaptured(false)
	cc.MouseLook(500, 500)
	assertVec3(t, mgl32.Vec3{0, -5, -5}, cc.Camera.Rotation())
}

func TestController_RecaptureDropsStaleCursor(t *testing.T) {
	cc, _ := newTestController()
	cc.SetCaptured(true)
	cc.MouseLook(0, 0)
	cc.SetCaptured(false)

	cc.SetCaptured(true)
	cc.MouseLook(400, 400)

	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Rotation())
}

func TestController_Reset(t *testing.T) {
	cc, in := newTestController()
	require.NoError(t, in.PressKey(input.KeyW))
	require.NoError(t, in.PressKey(input.KeyLeft))
	cc.Update(in, 1)

	cc.Reset()

	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Position())
	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Rotation())
	assert.True(t, cc.Camera.Dirty())
}

func TestController_ResetToHome(t *testing.T) {
	cc, _ := newTestController()
	cc.Home = mgl32.Vec3{-3, 0, 1}
	cc.Camera.Rotate(mgl32.Vec3{0, 0, 45})

	cc.Reset()

	assert.Equal(t, cc.Home, cc.Camera.Position())
	assert.Equal(t, mgl32.Vec3{}, cc.Camera.Rotation())
}
