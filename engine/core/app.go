package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/vista/engine/colors"
	"github.com/hubastard/vista/engine/event"
	"github.com/hubastard/vista/engine/input"
	"github.com/hubastard/vista/engine/profiler"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev event.Event) // events no layer handled
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Events   *event.Dispatcher
	Input    *input.State
	Layers   LayerStack
	Profiler *profiler.Recorder // nil unless Config.ProfilePath is set
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction. The implementation turns platform callbacks into
// events and hands each one to the callback set with SetEventCallback.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	Aspect() float32
	SetTitle(title string)
	SetEventCallback(cb func(event.Event))
	CursorPos() (float64, float64)
	SetCursorPos(x, y float64)
	SetCursorEnabled(enabled bool)
	Destroy()
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	DrawCube(model, view, projection mgl32.Mat4, aspect float32)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	TickRate   int // fixed updates per second; 0 means 60

	// ProfilePath, when set, records frame-phase spans and writes them
	// there as a speedscope profile on exit.
	ProfilePath  string
	ProfileMarks int // ring capacity; 0 means profiler.DefaultCapacity
}

// DefaultConfig matches the editor window.
func DefaultConfig() Config {
	return Config{
		Title:      "Editor",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		TickRate:   60,
	}
}
