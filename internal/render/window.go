package render

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions mirrors the window section of the config.
type WindowOptions struct {
	Width, Height int
	Title         string
	VSync         bool
	Samples       int
}

// OpenWindow initialises glfw and creates a window with a current 4.1 core
// context. On error glfw is already terminated.
func OpenWindow(opts WindowOptions) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Samples, opts.Samples)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)

	return window, nil
}

// ShouldExit is the loop's only termination signal: Escape or a close request.
func ShouldExit(window *glfw.Window) bool {
	return window.ShouldClose() || window.GetKey(glfw.KeyEscape) == glfw.Press
}

// GLFWClock reads glfw's timer, which starts at glfw.Init.
type GLFWClock struct{}

func (GLFWClock) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}
