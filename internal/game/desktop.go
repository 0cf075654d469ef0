package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"particles/internal/config"
	"particles/internal/render"
)

// RunDesktop opens a window and runs until Escape or close. Setup errors
// are returned before any simulation state exists.
func RunDesktop(cfg *config.Config, opts Options) (Summary, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := render.OpenWindow(render.WindowOptions{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		VSync:   cfg.Window.VSync,
		Samples: cfg.Window.Samples,
	})
	if err != nil {
		return Summary{}, err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := render.Init(); err != nil {
		return Summary{}, err
	}
	rend, err := render.NewRenderer(cfg.Pool.Capacity)
	if err != nil {
		return Summary{}, fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	cam := NewCamera(cfg)
	view := render.View{ViewProj: cam.ViewProjection()}
	view.Right, view.Up = cam.Billboard()

	sim := NewSimulation(cfg, opts.Seed, cam)
	l, err := newLoop(cfg, opts, sim, render.GLFWClock{})
	if err != nil {
		return Summary{}, err
	}

	for !render.ShouldExit(window) && !l.done() {
		start := time.Now()
		l.update()

		fbW, fbH := window.GetFramebufferSize()
		rend.BeginFrame(fbW, fbH)
		rend.Draw(sim.Pack(), view)

		// Blocks on vsync.
		window.SwapBuffers()
		glfw.PollEvents()
		l.endFrame(start)
	}

	return l.close(), nil
}
