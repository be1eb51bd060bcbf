package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/vista/engine/core"
	"github.com/hubastard/vista/engine/event"
	"github.com/hubastard/vista/engine/input"
	"github.com/hubastard/vista/engine/scene"
)

// ------- Free-fly camera over a spinning cube -------
type LayerEditor struct {
	title string
	cam   *scene.Camera
	ctrl  *scene.Controller
	spin  float32 // radians
}

func NewLayerEditor(title string, home mgl32.Vec3, mode scene.ProjectionMode) *LayerEditor {
	cam := scene.NewCamera(home, mgl32.Vec3{}, mode)
	ctrl := scene.NewController(cam)
	ctrl.Home = home
	return &LayerEditor{title: title, cam: cam, ctrl: ctrl}
}

func (l *LayerEditor) OnAttach(e *core.Engine) { l.updateTitle(e) }
func (l *LayerEditor) OnDetach(e *core.Engine) {}

func (l *LayerEditor) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.spin += float32(dt) * 0.6
}

func (l *LayerEditor) OnRender(e *core.Engine, alpha float64) {
	defer e.Profiler.Start("LayerEditor.OnRender")()
	model := mgl32.HomogRotate3DZ(l.spin)
	e.Renderer.DrawCube(model, l.cam.ViewMatrix(), l.cam.ProjectionMatrix(), e.Window.Aspect())
}

func (l *LayerEditor) OnEvent(e *core.Engine, ev event.Event) bool {
	switch v := ev.(type) {
	case event.KeyPressed:
		if v.Repeated {
			return false
		}
		switch v.Key {
		case input.KeyEscape:
			l.setCaptured(e, !l.ctrl.Captured())
			return true
		case input.KeyTab:
			l.cam.SetProjectionMode(l.cam.ProjectionMode().Toggle())
			l.updateTitle(e)
			return true
		case input.KeyR:
			l.ctrl.Reset()
			return true
		}
	case event.MouseButtonPressed:
		if v.Button == input.MouseButtonLeft && !l.ctrl.Captured() {
			l.setCaptured(e, true)
			return true
		}
	case event.MouseMoved:
		l.ctrl.MouseLook(v.X, v.Y)
		return l.ctrl.Captured()
	case event.MouseScrolled:
		speed := l.ctrl.MoveSpeed * (1 + 0.1*float32(v.Offset))
		l.ctrl.MoveSpeed = max(0.1, min(speed, 50))
		return true
	case event.WindowClose:
		log.Println("close requested")
	}
	return false
}

func (l *LayerEditor) setCaptured(e *core.Engine, on bool) {
	l.ctrl.SetCaptured(on)
	e.Window.SetCursorEnabled(!on)
	if on {
		l.ctrl.MouseLook(e.Window.CursorPos())
	}
}

func (l *LayerEditor) updateTitle(e *core.Engine) {
	e.Window.SetTitle(fmt.Sprintf("%s [%s]", l.title, l.cam.ProjectionMode()))
}
