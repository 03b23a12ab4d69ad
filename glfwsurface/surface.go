// Package glfwsurface adapts a GLFW window to the slint.Surface
// contract so the OpenGL backend can drive it.
//
// The caller owns the window and the GLFW lifecycle (glfw.Init,
// PollEvents, Terminate); the adapter only moves the window's GL
// context between current and not-current and swaps its buffers.
// All methods must be called from the main thread, per GLFW's
// threading rules.
package glfwsurface

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Lintangzupan/slint"
)

// ErrNilWindow is returned by New for a nil window.
var ErrNilWindow = errors.New("glfwsurface: window is nil")

// Surface wraps a GLFW window as a slint.Surface.
type Surface struct {
	window *glfw.Window
}

// New wraps the window. The window must have been created with an
// OpenGL 3.3 core profile context.
func New(window *glfw.Window) (*Surface, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	return &Surface{window: window}, nil
}

// MakeCurrent makes the window's GL context current on the calling
// thread.
func (s *Surface) MakeCurrent() error {
	s.window.MakeContextCurrent()
	return nil
}

// DetachCurrent detaches any GL context from the calling thread.
func (s *Surface) DetachCurrent() error {
	glfw.DetachCurrentContext()
	return nil
}

// SwapBuffers presents the back buffer.
func (s *Surface) SwapBuffers() error {
	s.window.SwapBuffers()
	return nil
}

// Size returns the framebuffer size in pixels, which on high-DPI
// displays differs from the window's logical size.
func (s *Surface) Size() (width, height int) {
	return s.window.GetFramebufferSize()
}

var _ slint.Surface = (*Surface)(nil)
