package main

import (
	"fmt"
	"time"

	"github.com/hubastard/pong/engine/core"
)

// DebugLayer mirrors the score and frame time into the window title once a
// second. No draw calls of its own; there is no text renderer in this
// engine.
type DebugLayer struct {
	game *PongLayer

	frames    int
	lastFlush time.Time
	lastFrame time.Time
}

func (d *DebugLayer) OnAttach(e *core.Engine) {
	now := time.Now()
	d.lastFlush, d.lastFrame = now, now
}

func (d *DebugLayer) OnDetach(e *core.Engine)             {}
func (d *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (d *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	d.frames++
	frameMs := now.Sub(d.lastFrame).Seconds() * 1000
	d.lastFrame = now

	if now.Sub(d.lastFlush) < time.Second {
		return
	}
	g := d.game.game
	e.Window.SetTitle(fmt.Sprintf("Pong  %d : %d  |  %d fps, %.1f ms",
		g.ScoreLeft, g.ScoreRight, d.frames, frameMs))
	d.frames = 0
	d.lastFlush = now
}

func (d *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
