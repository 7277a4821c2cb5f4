package core

import (
	"log"
	"runtime"
	"time"

	"github.com/tryekk/glquad/engine/frametime"
)

// Run wires the platform window + renderer and executes the main loop.
// It returns once the window closes, or with an error if window or
// renderer construction fails. The renderer is shut down on every exit
// path, so the program object never outlives the loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	// Runs before win.Destroy, while the context is still current.
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	frames := frametime.NewRecorder(240)
	clear := cfg.ClearColor
	prev := time.Now()

	// Poll -> update -> clear -> render -> present, one pass per frame.
	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(prev)
		prev = now
		frames.Record(dt)

		win.PollEvents()
		app.OnUpdate(eng, dt.Seconds())

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng)

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	log.Printf("Engine exit, %s", frames.Summary())
	return nil
}
