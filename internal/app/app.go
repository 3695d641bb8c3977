// Package app implements the main loop: it owns the window, the render
// context and the running lesson.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/config"
	"github.com/Faultbox/raster-lessons/internal/engine/gpu"
	"github.com/Faultbox/raster-lessons/internal/engine/input"
	"github.com/Faultbox/raster-lessons/internal/engine/renderer"
	"github.com/Faultbox/raster-lessons/internal/engine/window"
	"github.com/Faultbox/raster-lessons/internal/lessons"
	"github.com/Faultbox/raster-lessons/internal/logger"
)

// App is the running program.
type App struct {
	log     *zap.Logger
	surface window.Surface
	ctx     *renderer.Context
	lesson  lessons.Lesson
	tracker input.Tracker

	// now returns the time since start; replaced in tests.
	now func() time.Duration
}

// New opens the window, loads OpenGL and sets up the configured lesson.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("lesson", cfg.Scene.Lesson),
		zap.String("backend", cfg.Graphics.Backend),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Window first: it creates the OpenGL context
	surface, err := window.New(window.Config{
		Backend:    cfg.Graphics.Backend,
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dev, err := gpu.NewGL(logger.Named("gpu"))
	if err != nil {
		surface.Close()
		return nil, err
	}

	lesson, err := lessons.New(cfg.Scene.Lesson, cfg.Scene)
	if err != nil {
		surface.Close()
		return nil, err
	}
	surface.SetTitle(fmt.Sprintf("%s - %s", cfg.Graphics.Title, lesson.Name()))

	a, err := newApp(surface, dev, lesson, cfg, log)
	if err != nil {
		surface.Close()
		return nil, err
	}
	return a, nil
}

func newApp(surface window.Surface, dev gpu.Device, lesson lessons.Lesson, cfg *config.Config, log *zap.Logger) (*App, error) {
	ctx := renderer.NewContext(dev, log.Named("renderer"), mgl32.Vec4(cfg.Scene.ClearColor))
	ctx.Resize(surface.DrawableSize())

	if err := lesson.Setup(ctx); err != nil {
		return nil, fmt.Errorf("failed to set up lesson %q: %w", lesson.Name(), err)
	}

	start := time.Now()
	return &App{
		log:     log,
		surface: surface,
		ctx:     ctx,
		lesson:  lesson,
		now:     func() time.Duration { return time.Since(start) },
	}, nil
}

// Run drives the lesson until the window closes or Escape is pressed.
func (a *App) Run() error {
	frameCount := 0
	fpsStart := a.now()

	a.log.Info("starting main loop", zap.String("lesson", a.lesson.Name()))

	for {
		for _, e := range a.surface.PollEvents() {
			a.tracker.Apply(e)
		}
		in := a.tracker.Snapshot()

		if in.Quit || in.Pressed(input.KeyEscape) {
			a.log.Info("quit requested")
			return nil
		}

		// A resize is presented right away, before the next tick.
		if in.Resized {
			a.ctx.Resize(in.Width, in.Height)
			if err := a.lesson.Redraw(); err != nil {
				return fmt.Errorf("redraw error: %w", err)
			}
			a.surface.SwapBuffers()
		}

		now := a.now()
		if err := a.lesson.Tick(now, in); err != nil {
			return fmt.Errorf("tick error: %w", err)
		}
		a.surface.SwapBuffers()

		frameCount++
		if elapsed := now - fpsStart; elapsed >= time.Second {
			a.log.Debug("fps", zap.Float64("fps", float64(frameCount)/elapsed.Seconds()))
			frameCount = 0
			fpsStart = now
		}
	}
}

// Close frees the lesson and the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.lesson != nil {
		a.lesson.Close()
	}
	if a.surface != nil {
		a.surface.Close()
	}
}
