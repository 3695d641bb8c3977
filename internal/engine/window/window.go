// Package window creates the OpenGL surface the lessons draw into.
package window

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Surface is a window with a current OpenGL 4.1 core context.
type Surface interface {
	// PollEvents drains pending window events.
	PollEvents() []input.Event
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	SetTitle(title string)
	Close()
}

// New creates a surface with the configured backend.
func New(cfg Config, log *zap.Logger) (Surface, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return newSDL(cfg, log)
	case BackendGLFW:
		return newGLFW(cfg, log)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
