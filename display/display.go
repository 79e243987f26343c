// Package display hosts a native window for presenting swap chains. It
// uses GLFW with no client API so the window carries no GL context.
package display

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Init must run on the main OS thread before any window is created.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return errors.WithMessage(err, "glfw.Init")
	}
	return nil
}

func Terminate() { glfw.Terminate() }

type Window struct {
	window *glfw.Window
}

// NewWindow creates a resizable window. A hidden window is enough to back a
// swap chain in headless runs.
func NewWindow(title string, width, height int, visible bool) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, boolHint(visible))

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "glfw.CreateWindow")
	}
	return &Window{window: w}, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Size is the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

func (w *Window) Poll() { glfw.PollEvents() }

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
