package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/tryekk/glquad/engine/colors"
	"github.com/tryekk/glquad/engine/core"
	glbackend "github.com/tryekk/glquad/engine/gfx/gl"
	"github.com/tryekk/glquad/engine/platform"
)

// App draws the quad every frame and closes on Escape.
type App struct{}

func (a *App) OnStart(e *core.Engine)              {}
func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine) {
	e.Renderer.DrawQuad()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Key == core.KeyEscape && k.Down {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	width := flag.Int("width", 1920, "window width")
	height := flag.Int("height", 1080, "window height")
	title := flag.String("title", "glquad", "window title")
	vsync := flag.Bool("vsync", true, "enable vsync")
	shader := flag.String("shader", filepath.Join("assets", "shaders", "quad.shader"), "interleaved vertex+fragment shader file")
	flag.Parse()

	cfg := core.Config{
		Title:      *title,
		Width:      *width,
		Height:     *height,
		VSync:      *vsync,
		ClearColor: colors.DeepBlue,
		ShaderPath: *shader,
	}

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
