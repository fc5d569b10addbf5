package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + graphics context and executes the main
// loop. Per iteration: poll events, fixed-rate updates (which rewrite
// per-instance attribute buffers), clear, layer renders (which issue the
// draw calls), present. Updates always happen before draws within the same
// iteration.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newGraphics func(Window, Config) (Graphics, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	gfx, err := newGraphics(win, cfg)
	if err != nil {
		return err
	}
	defer gfx.Destroy()

	eng := &Engine{Window: win, Graphics: gfx, Input: NewInput(), start: time.Now()}

	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		eng.Layers.ForEachReverse(func(l Layer) bool {
			return l.OnEvent(eng, ev)
		})
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return // minimized; keep the old projection
			}
			if err := gfx.Resize(fw, fh); err != nil {
				log.Printf("resize %dx%d: %v", fw, fh, err)
			}
		}
	})

	w, h := win.FramebufferSize()
	if err := gfx.Resize(w, h); err != nil {
		return err
	}

	if err := app.OnStart(eng); err != nil {
		return err
	}

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render
		gfx.Clear()
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		// Present
		win.SwapBuffers()
	}

	// Detach layers before the app tears down shared GPU resources.
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}
