package lessons

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/config"
	"github.com/Faultbox/raster-lessons/internal/engine/geometry"
	"github.com/Faultbox/raster-lessons/internal/engine/input"
	"github.com/Faultbox/raster-lessons/internal/engine/renderer"
	"github.com/Faultbox/raster-lessons/internal/engine/scene"
	"github.com/Faultbox/raster-lessons/internal/engine/shader"
	"github.com/Faultbox/raster-lessons/internal/engine/shader/shaders"
)

// squareHalf is half the side of the triangle lesson's square.
const squareHalf = 0.1

// Triangle draws a flat square moved by the arrow keys, recolored by
// r/g/b and flipped vertically by f.
type Triangle struct {
	cfg config.SceneConfig
	log *zap.Logger

	program *shader.Program
	square  *geometry.Buffer
	forest  scene.Forest
	frame   *renderer.FrameRenderer

	clock scene.Clock
	tag   ColorTag
	dx    float32
	dy    float32

	flipped bool
	flip    float32
	tween   *gween.Tween
}

// NewTriangle creates the triangle lesson.
func NewTriangle(cfg config.SceneConfig) *Triangle {
	return &Triangle{cfg: cfg, tag: Red, flip: 1}
}

func (*Triangle) Name() string { return config.LessonTriangle }

func (t *Triangle) Setup(ctx *renderer.Context) error {
	t.log = ctx.Log
	ctx.SetDepth(false)

	var err error
	t.program, err = shader.Compile(ctx.Device, "offset", shaders.OffsetVertexShader, shaders.OffsetFragmentShader)
	if err != nil {
		return err
	}

	t.square, err = geometry.New(ctx.Device, geometry.Quad(squareHalf), geometry.Options{})
	if err != nil {
		return fmt.Errorf("square geometry: %w", err)
	}
	t.square.Upload()

	node, err := t.forest.Add(scene.Node{Name: "square"})
	if err != nil {
		return err
	}

	t.frame, err = renderer.NewFrameRenderer(ctx, t.program, &t.forest,
		[]renderer.Body{{Node: node, Geometry: t.square, Color: t.tag.Color()}},
		renderer.Options{Uniforms: t.offsetUniforms})
	return err
}

func (t *Triangle) offsetUniforms(p *shader.Program, _ int) error {
	return errors.Join(
		p.SetFloat("u_dx", t.dx),
		p.SetFloat("u_dy", t.dy),
		p.SetFloat("u_flip", t.flip),
	)
}

func (t *Triangle) Tick(now time.Duration, in input.State) error {
	dt := t.clock.Tick(now)
	step := t.cfg.MoveStep

	// The square must stay inside clip space.
	switch {
	case in.Held(input.KeyUp) && t.dy+squareHalf < 1:
		t.dy += step
	case in.Held(input.KeyDown) && t.dy-squareHalf > -1:
		t.dy -= step
	case in.Held(input.KeyLeft) && t.dx-squareHalf > -1:
		t.dx -= step
	case in.Held(input.KeyRight) && t.dx+squareHalf < 1:
		t.dx += step
	}

	if tag, ok := tagFor(in); ok && tag != t.tag {
		t.tag = tag
		t.frame.SetBodyColor(0, tag.Color())
		t.log.Debug("color changed", zap.Stringer("color", tag))
	}

	if in.Pressed(input.KeyF) {
		t.startFlip()
	}
	if t.tween != nil {
		v, done := t.tween.Update(float32(dt))
		t.flip = v
		if done {
			t.tween = nil
		}
	}

	return t.frame.Tick(now)
}

func (t *Triangle) startFlip() {
	t.flipped = !t.flipped
	target := float32(1)
	if t.flipped {
		target = -1
	}
	if t.cfg.FlipSeconds <= 0 {
		t.flip = target
		t.tween = nil
		return
	}
	t.tween = gween.New(t.flip, target, t.cfg.FlipSeconds, ease.InOutQuad)
}

// Offset returns the current translation of the square.
func (t *Triangle) Offset() mgl32.Vec2 { return mgl32.Vec2{t.dx, t.dy} }

// Flip returns the current vertical scale, 1 upright and -1 flipped.
func (t *Triangle) Flip() float32 { return t.flip }

// Tag returns the current color.
func (t *Triangle) Tag() ColorTag { return t.tag }

func (t *Triangle) Redraw() error { return t.frame.Draw() }

func (t *Triangle) Close() {
	if t.square != nil {
		t.square.Release()
	}
	if t.program != nil {
		t.program.Delete()
	}
}
