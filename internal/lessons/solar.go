package lessons

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/config"
	"github.com/Faultbox/raster-lessons/internal/engine/geometry"
	"github.com/Faultbox/raster-lessons/internal/engine/input"
	"github.com/Faultbox/raster-lessons/internal/engine/renderer"
	"github.com/Faultbox/raster-lessons/internal/engine/scene"
	"github.com/Faultbox/raster-lessons/internal/engine/shader"
	"github.com/Faultbox/raster-lessons/internal/engine/shader/shaders"
)

// BuildForest turns body settings into a forest. Rates are converted from
// degrees to radians per second.
func BuildForest(bodies []config.BodyConfig) (*scene.Forest, error) {
	f := &scene.Forest{}
	for _, b := range bodies {
		n := scene.Node{
			Name:        b.Name,
			OrbitRadius: b.OrbitRadius,
			Offset:      mgl32.Vec3(b.Offset),
			Scale:       mgl32.Vec3(b.Scale),
			SpinRate:    mgl32.DegToRad(b.SpinRate),
			OrbitRate:   mgl32.DegToRad(b.OrbitRate),
		}
		if b.Parent == "" {
			f.Add(n)
			continue
		}
		parent, ok := f.Index(b.Parent)
		if !ok {
			return nil, fmt.Errorf("body %q: unknown parent %q", b.Name, b.Parent)
		}
		if _, err := f.AddChild(parent, n); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Solar animates bodies orbiting and spinning about +Z. All bodies share
// one unit quad. Space restarts the scene.
type Solar struct {
	cfg config.SceneConfig
	log *zap.Logger

	program *shader.Program
	quad    *geometry.Buffer
	forest  *scene.Forest
	frame   *renderer.FrameRenderer
}

// NewSolar creates the solar lesson.
func NewSolar(cfg config.SceneConfig) *Solar { return &Solar{cfg: cfg} }

func (*Solar) Name() string { return config.LessonSolar }

func (s *Solar) Setup(ctx *renderer.Context) error {
	s.log = ctx.Log
	ctx.SetDepth(false)

	var err error
	s.forest, err = BuildForest(s.cfg.Bodies)
	if err != nil {
		return err
	}

	s.program, err = shader.Compile(ctx.Device, "body", shaders.BodyVertexShader, shaders.BodyFragmentShader)
	if err != nil {
		return err
	}

	s.quad, err = geometry.New(ctx.Device, geometry.Quad(0.5), geometry.Options{})
	if err != nil {
		return fmt.Errorf("body geometry: %w", err)
	}
	s.quad.Upload()

	bodies := make([]renderer.Body, len(s.cfg.Bodies))
	for i, b := range s.cfg.Bodies {
		bodies[i] = renderer.Body{Node: i, Geometry: s.quad, Color: vec4(b.Color)}
	}

	ident := mgl32.Ident4()
	s.frame, err = renderer.NewFrameRenderer(ctx, s.program, s.forest, bodies,
		renderer.Options{View: &ident, Projection: &ident})
	if err != nil {
		return err
	}

	s.log.Info("solar scene ready", zap.Int("bodies", len(bodies)))
	return nil
}

func (s *Solar) Tick(now time.Duration, in input.State) error {
	if in.Pressed(input.KeySpace) {
		s.forest.Reset()
		s.log.Debug("scene restarted")
	}
	return s.frame.Tick(now)
}

// Forest returns the scene state.
func (s *Solar) Forest() *scene.Forest { return s.forest }

func (s *Solar) Redraw() error { return s.frame.Draw() }

func (s *Solar) Close() {
	if s.quad != nil {
		s.quad.Release()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
