package main

import (
	"log"

	"github.com/hubastard/pong/engine/colors"
	"github.com/hubastard/pong/engine/core"
	"github.com/hubastard/pong/engine/gfx/glbackend"
	"github.com/hubastard/pong/engine/platform"
	"github.com/hubastard/pong/engine/scratch"
)

// App wires the game layers into the engine loop.
type App struct {
	pong  *PongLayer
	debug *DebugLayer
}

func (a *App) OnStart(e *core.Engine) error {
	scratch.Init(256) // plenty for a handful of vec2 instance attributes

	pong, err := NewPongLayer(e)
	if err != nil {
		return err
	}
	a.pong = pong
	e.PushLayer(pong)

	a.debug = &DebugLayer{game: pong}
	e.PushLayer(a.debug)
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfg := core.Config{
		Title:      "Pong",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: colors.Black,
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newGraphics := func(win core.Window, cfg core.Config) (core.Graphics, error) {
		return glbackend.NewContext(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newGraphics); err != nil {
		log.Fatal(err)
	}
}
