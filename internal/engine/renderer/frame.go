package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/engine/geometry"
	"github.com/Faultbox/raster-lessons/internal/engine/scene"
	"github.com/Faultbox/raster-lessons/internal/engine/shader"
)

// Uniform names set by the FrameRenderer.
const (
	UniformColor      = "u_color"
	UniformModel      = "u_model"
	UniformView       = "u_view"
	UniformProjection = "u_projection"
)

// ErrSetup is returned when a FrameRenderer is built from an incomplete scene.
var ErrSetup = errors.New("renderer setup")

// Body binds a forest node to the geometry drawn at it.
type Body struct {
	Node     int
	Geometry *geometry.Buffer
	Color    mgl32.Vec4
}

// Options holds the optional camera matrices and a hook for extra
// per-body uniforms. Nil matrices are not uploaded.
type Options struct {
	View       *mgl32.Mat4
	Projection *mgl32.Mat4

	// Uniforms runs after the standard uniforms of each body are set.
	Uniforms func(p *shader.Program, body int) error
}

// FrameRenderer advances a forest with a clock and draws its bodies.
type FrameRenderer struct {
	ctx     *Context
	program *shader.Program
	forest  *scene.Forest
	bodies  []Body
	opts    Options

	clock   scene.Clock
	world   []mgl32.Mat4
	missing map[string]bool
}

// NewFrameRenderer checks that every body can be drawn. Failures wrap
// ErrSetup.
func NewFrameRenderer(ctx *Context, program *shader.Program, forest *scene.Forest, bodies []Body, opts Options) (*FrameRenderer, error) {
	if ctx == nil || ctx.Device == nil {
		return nil, fmt.Errorf("%w: no render context", ErrSetup)
	}
	if program == nil || program.ID() == 0 {
		return nil, fmt.Errorf("%w: no shader program", ErrSetup)
	}
	if forest == nil {
		return nil, fmt.Errorf("%w: no forest", ErrSetup)
	}
	for i, b := range bodies {
		if b.Node < 0 || b.Node >= forest.Len() {
			return nil, fmt.Errorf("%w: body %d: node %d not in forest", ErrSetup, i, b.Node)
		}
		if b.Geometry == nil || !b.Geometry.Uploaded() {
			return nil, fmt.Errorf("%w: body %d: geometry not uploaded", ErrSetup, i)
		}
	}

	return &FrameRenderer{
		ctx:     ctx,
		program: program,
		forest:  forest,
		bodies:  append([]Body(nil), bodies...),
		opts:    opts,
		world:   make([]mgl32.Mat4, 0, forest.Len()),
		missing: make(map[string]bool),
	}, nil
}

// Clock returns the renderer's scene clock.
func (r *FrameRenderer) Clock() *scene.Clock { return &r.clock }

// SetBodyColor changes the color uniform of body i.
func (r *FrameRenderer) SetBodyColor(i int, c mgl32.Vec4) { r.bodies[i].Color = c }

// SetView replaces the view matrix.
func (r *FrameRenderer) SetView(m mgl32.Mat4) { r.opts.View = &m }

// SetProjection replaces the projection matrix.
func (r *FrameRenderer) SetProjection(m mgl32.Mat4) { r.opts.Projection = &m }

// Tick advances the scene to now and draws one frame.
func (r *FrameRenderer) Tick(now time.Duration) error {
	dt := r.clock.Tick(now)
	r.forest.Advance(dt)
	return r.Draw()
}

// Draw clears the surface and draws every body at the current scene state
// without advancing time.
func (r *FrameRenderer) Draw() error {
	r.ctx.Clear()
	r.world = r.forest.WorldMatrices(r.world)

	for i, b := range r.bodies {
		r.program.Use()

		if err := r.check(r.program.SetVec4(UniformColor, b.Color)); err != nil {
			return err
		}
		if err := r.check(r.program.SetMat4(UniformModel, r.world[b.Node])); err != nil {
			return err
		}
		if r.opts.View != nil {
			if err := r.check(r.program.SetMat4(UniformView, *r.opts.View)); err != nil {
				return err
			}
		}
		if r.opts.Projection != nil {
			if err := r.check(r.program.SetMat4(UniformProjection, *r.opts.Projection)); err != nil {
				return err
			}
		}
		if r.opts.Uniforms != nil {
			if err := r.check(r.opts.Uniforms(r.program, i)); err != nil {
				return err
			}
		}

		b.Geometry.Draw()
	}
	return nil
}

// check logs a missing uniform once and drops it.
func (r *FrameRenderer) check(err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, shader.ErrUniformNotFound) {
		return err
	}
	key := err.Error()
	if !r.missing[key] {
		r.missing[key] = true
		r.ctx.Log.Debug("skipping missing uniform", zap.Error(err))
	}
	return nil
}
