package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/engine/input"
)

// glfwSurface queues events from GLFW callbacks. glfw.PollEvents runs the
// callbacks on the calling (main) thread, so the queue needs no locking.
type glfwSurface struct {
	log    *zap.Logger
	window *glfw.Window
	events []input.Event
}

func newGLFW(cfg Config, log *zap.Logger) (*glfwSurface, error) {
	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwSurface{
		log:    log,
		window: window,
		events: make([]input.Event, 0, 16),
	}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := glfwKey(key)
		if k == input.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press:
			w.events = append(w.events, input.Event{Type: input.EventKeyDown, Key: k})
		case glfw.Repeat:
			w.events = append(w.events, input.Event{Type: input.EventKeyDown, Key: k, Repeat: true})
		case glfw.Release:
			w.events = append(w.events, input.Event{Type: input.EventKeyUp, Key: k})
		}
	})

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, input.Event{Type: input.EventWindowResize, Width: width, Height: height})
	})

	window.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, input.Event{Type: input.EventQuit})
	})

	log.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func glfwKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyR:
		return input.KeyR
	case glfw.KeyG:
		return input.KeyG
	case glfw.KeyB:
		return input.KeyB
	case glfw.KeyF:
		return input.KeyF
	case glfw.KeyN:
		return input.KeyN
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyUnknown
}

func (w *glfwSurface) PollEvents() []input.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

func (w *glfwSurface) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwSurface) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwSurface) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *glfwSurface) Close() {
	w.log.Info("closing window")
	w.window.Destroy()
	glfw.Terminate()
}
