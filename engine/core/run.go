package core

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/hubastard/vista/engine/event"
	"github.com/hubastard/vista/engine/input"
	"github.com/hubastard/vista/engine/profiler"
)

// Run wires the platform window + renderer and executes the main loop.
//
// Before OnStart, Run installs one handler per event kind on e.Events. Each
// handler updates e.Input (and the window/renderer where needed), then
// offers the event to the layers top-down and finally to the App. An App
// that registers its own handler for a kind replaces the engine's.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)
	log.Printf("GPU: %s (%s), GL %s", rend.GPURenderer(), rend.GPUVendor(), rend.GPUVersion())

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Events:   event.NewDispatcher(),
		Input:    input.NewState(),
		start:    time.Now(),
	}
	if cfg.ProfilePath != "" {
		eng.Profiler = profiler.New(cfg.ProfileMarks)
	}
	prof := eng.Profiler
	eng.installHandlers(app)
	win.SetEventCallback(eng.Events.Dispatch)

	app.OnStart(eng)

	// Fixed-timestep with interpolation
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	tick := time.Second / time.Duration(rate)
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		endFrame := prof.Start("frame")
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		endPoll := prof.Start("poll")
		win.PollEvents()
		endPoll()

		steps := 0
		for accum >= tick && steps < maxStep {
			endUpdate := prof.Start("update")
			dt := tick.Seconds()
			for l := range eng.Layers.Up() {
				l.OnUpdate(eng, dt)
			}
			app.OnUpdate(eng, dt)
			endUpdate()
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		endRender := prof.Start("render")
		rend.Clear(cfg.ClearColor)
		for l := range eng.Layers.Up() {
			l.OnRender(eng, alpha)
		}
		app.OnRender(eng, alpha)
		endRender()

		endSwap := prof.Start("swap")
		win.SwapBuffers()
		endSwap()
		endFrame()
	}

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	if prof != nil {
		if err := prof.Dump(cfg.ProfilePath, cfg.Title); err != nil {
			log.Printf("profile: %v", err)
		} else {
			log.Printf("profile written to %s (open with speedscope)", cfg.ProfilePath)
		}
	}
	log.Println("Engine exit")
	return nil
}

// PushLayer attaches l and puts it on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// forward offers ev to the layers top-down, then to the App if no layer
// claimed it.
func (e *Engine) forward(app App, ev event.Event) {
	for l := range e.Layers.Down() {
		if l.OnEvent(e, ev) {
			return
		}
	}
	app.OnEvent(e, ev)
}

func (e *Engine) installHandlers(app App) {
	d, in := e.Events, e.Input

	event.Listen(d, func(ev event.WindowClose) {
		e.Window.RequestClose()
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.WindowResize) {
		// minimized windows report 0x0
		if ev.Width > 0 && ev.Height > 0 {
			e.Renderer.Resize(ev.Width, ev.Height)
		}
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.KeyPressed) {
		logInputErr(in.PressKey(ev.Key))
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.KeyReleased) {
		logInputErr(in.ReleaseKey(ev.Key))
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.MouseMoved) {
		in.SetCursor(ev.X, ev.Y)
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.MouseScrolled) {
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.MouseButtonPressed) {
		in.SetCursor(ev.X, ev.Y)
		logInputErr(in.PressMouseButton(ev.Button))
		e.forward(app, ev)
	})
	event.Listen(d, func(ev event.MouseButtonReleased) {
		in.SetCursor(ev.X, ev.Y)
		logInputErr(in.ReleaseMouseButton(ev.Button))
		e.forward(app, ev)
	})
}

func logInputErr(err error) {
	if err != nil {
		log.Printf("input: %v", err)
	}
}
