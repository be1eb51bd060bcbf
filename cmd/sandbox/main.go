package main

import (
	"flag"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/vista/engine/colors"
	"github.com/hubastard/vista/engine/core"
	"github.com/hubastard/vista/engine/event"
	glbackend "github.com/hubastard/vista/engine/gfx/gl"
	"github.com/hubastard/vista/engine/platform"
	"github.com/hubastard/vista/engine/scene"
)

var (
	// Flags
	title       = flag.String("title", "Editor", "Window title")
	width       = flag.Int("width", 1280, "Window width")
	height      = flag.Int("height", 720, "Window height")
	vsync       = flag.Bool("vsync", true, "Wait for vertical sync")
	tickRate    = flag.Int("tick", 60, "Fixed updates per second")
	clearColor  = flag.String("clear", "#141a1f", "Clear colour (#rrggbb[aa])")
	perspective = flag.Bool("perspective", true, "Start in perspective projection")
	profile     = flag.String("profile", "", "Write a speedscope profile to this path on exit")
)

type App struct {
	editor *LayerEditor
}

func (a *App) OnStart(e *core.Engine) {
	mode := scene.Orthographic
	if *perspective {
		mode = scene.Perspective
	}
	a.editor = NewLayerEditor(*title, mgl32.Vec3{-3, 0, 0}, mode)
	e.PushLayer(a.editor)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev event.Event) {}
func (a *App) OnShutdown(e *core.Engine) {
	log.Printf("uptime %s", e.Uptime().Round(time.Millisecond))
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	bg, err := colors.Parse(*clearColor)
	if err != nil {
		log.Fatal(err)
	}

	cfg := core.DefaultConfig()
	cfg.Title = *title
	cfg.Width = *width
	cfg.Height = *height
	cfg.VSync = *vsync
	cfg.TickRate = *tickRate
	cfg.ClearColor = bg
	cfg.ProfilePath = *profile

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&App{}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
