// Package lessons implements the rasterization exercises. Each lesson owns
// its GPU resources and draws one frame per Tick.
package lessons

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/raster-lessons/internal/config"
	"github.com/Faultbox/raster-lessons/internal/engine/input"
	"github.com/Faultbox/raster-lessons/internal/engine/renderer"
)

// Lesson is one exercise driven by the main loop.
type Lesson interface {
	// Name returns the registry name.
	Name() string

	// Setup creates GPU resources. Called once, after the context exists.
	Setup(ctx *renderer.Context) error

	// Tick applies the input snapshot, advances to now and draws.
	Tick(now time.Duration, in input.State) error

	// Redraw draws the current state again without advancing time.
	Redraw() error

	// Close frees GPU resources.
	Close()
}

// Factory builds a lesson from the scene settings.
type Factory func(cfg config.SceneConfig) Lesson

var registry = map[string]Factory{
	config.LessonClear:    func(cfg config.SceneConfig) Lesson { return NewClear(cfg) },
	config.LessonTriangle: func(cfg config.SceneConfig) Lesson { return NewTriangle(cfg) },
	config.LessonSolar:    func(cfg config.SceneConfig) Lesson { return NewSolar(cfg) },
	config.LessonPyramid:  func(cfg config.SceneConfig) Lesson { return NewPyramid(cfg) },
}

// New returns the lesson registered under name.
func New(name string, cfg config.SceneConfig) (Lesson, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown lesson %q", name)
	}
	return f(cfg), nil
}

// ColorTag selects one of the fixed shape colors.
type ColorTag int

const (
	Red ColorTag = iota
	Green
	Blue
)

var tagColors = [...]mgl32.Vec4{
	Red:   {1, 0, 0, 1},
	Green: {0, 1, 0, 1},
	Blue:  {0, 0, 1, 1},
}

var tagNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

// Color returns the RGBA value of the tag.
func (c ColorTag) Color() mgl32.Vec4 { return tagColors[c] }

func (c ColorTag) String() string {
	if c < 0 || int(c) >= len(tagNames) {
		return fmt.Sprintf("ColorTag(%d)", int(c))
	}
	return tagNames[c]
}

var keyTags = map[input.Key]ColorTag{
	input.KeyR: Red,
	input.KeyG: Green,
	input.KeyB: Blue,
}

// tagFor returns the tag selected by a key press this tick, if any.
func tagFor(in input.State) (ColorTag, bool) {
	for k, tag := range keyTags {
		if in.Pressed(k) {
			return tag, true
		}
	}
	return 0, false
}

func vec4(c [4]float32) mgl32.Vec4 { return mgl32.Vec4(c) }
