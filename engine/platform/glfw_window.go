package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/vista/engine/core"
	"github.com/hubastard/vista/engine/event"
	"github.com/hubastard/vista/engine/input"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(event.Event)
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(event.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("Window created %dx%d", cfg.Width, cfg.Height)

	gw := &GLFWWindow{w: win, onEv: onEvent}
	gw.installCallbacks()
	return gw, nil
}

// installCallbacks translates each GLFW callback into exactly one event.
func (g *GLFWWindow) installCallbacks() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(event.WindowClose{}) })
	// Framebuffer pixels, not screen coordinates: they differ on HiDPI.
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(event.WindowResize{Width: w, Height: h})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k, m := input.Key(key), translateMods(mods)
		switch action {
		case glfw.Press:
			g.emit(event.KeyPressed{Key: k, Mods: m})
		case glfw.Repeat:
			g.emit(event.KeyPressed{Key: k, Repeated: true, Mods: m})
		case glfw.Release:
			g.emit(event.KeyReleased{Key: k, Mods: m})
		}
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		g.emit(event.MouseMoved{X: x, Y: y})
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(event.MouseScrolled{Offset: yoff, XOffset: xoff})
	})
	g.w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		b := input.MouseButton(button)
		switch action {
		case glfw.Press:
			g.emit(event.MouseButtonPressed{Button: b, X: x, Y: y})
		case glfw.Release:
			g.emit(event.MouseButtonReleased{Button: b, X: x, Y: y})
		}
	})
}

func (g *GLFWWindow) emit(ev event.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                           { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                          { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                     { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                         { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)           { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                     { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(event.Event)) { g.onEv = cb }
func (g *GLFWWindow) CursorPos() (float64, float64)         { return g.w.GetCursorPos() }
func (g *GLFWWindow) SetCursorPos(x, y float64)             { g.w.SetCursorPos(x, y) }

// Aspect is width over height of the window, 1 while minimized.
func (g *GLFWWindow) Aspect() float32 {
	w, h := g.w.GetSize()
	if w < 1 || h < 1 {
		return 1
	}
	return float32(w) / float32(h)
}

// SetCursorEnabled switches between a free cursor and a hidden, captured one.
func (g *GLFWWindow) SetCursorEnabled(enabled bool) {
	mode := glfw.CursorDisabled
	if enabled {
		mode = glfw.CursorNormal
	}
	g.w.SetInputMode(glfw.CursorMode, mode)
}

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateMods(m glfw.ModifierKey) input.Mod {
	var out input.Mod
	if m&glfw.ModShift != 0 {
		out |= input.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= input.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= input.ModSuper
	}
	if m&glfw.ModCapsLock != 0 {
		out |= input.ModCapsLock
	}
	if m&glfw.ModNumLock != 0 {
		out |= input.ModNumLock
	}
	return out
}
