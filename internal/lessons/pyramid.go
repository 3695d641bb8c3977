package lessons

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/config"
	"github.com/Faultbox/raster-lessons/internal/engine/camera"
	"github.com/Faultbox/raster-lessons/internal/engine/geometry"
	"github.com/Faultbox/raster-lessons/internal/engine/input"
	"github.com/Faultbox/raster-lessons/internal/engine/renderer"
	"github.com/Faultbox/raster-lessons/internal/engine/scene"
	"github.com/Faultbox/raster-lessons/internal/engine/shader"
	"github.com/Faultbox/raster-lessons/internal/engine/shader/shaders"
)

// orbitSpeed is how fast the arrow keys turn the camera, in radians per
// second.
const orbitSpeed = math.Pi / 2

// Pyramid spins the square pyramid under a perspective camera with depth
// testing. n switches between face and vertex normals, the arrow keys
// orbit the camera and space restarts the spin.
type Pyramid struct {
	cfg config.SceneConfig
	log *zap.Logger

	program *shader.Program
	mesh    *geometry.Buffer
	forest  scene.Forest
	frame   *renderer.FrameRenderer
	camera  *camera.OrbitCamera
	clock   scene.Clock

	smooth bool
}

// NewPyramid creates the pyramid lesson.
func NewPyramid(cfg config.SceneConfig) *Pyramid { return &Pyramid{cfg: cfg} }

func (*Pyramid) Name() string { return config.LessonPyramid }

func (p *Pyramid) Setup(ctx *renderer.Context) error {
	p.log = ctx.Log
	ctx.SetDepth(true)

	var err error
	p.program, err = shader.Compile(ctx.Device, "shaded", shaders.ShadedVertexShader, shaders.ShadedFragmentShader)
	if err != nil {
		return err
	}

	// The mesh is modeled +Y up.
	upright := geometry.Transform(geometry.SquarePyramid(), mgl32.HomogRotate3DX(math.Pi/2))
	p.mesh, err = geometry.New(ctx.Device, upright, geometry.Options{})
	if err != nil {
		return fmt.Errorf("pyramid geometry: %w", err)
	}
	p.mesh.Upload()

	node, err := p.forest.Add(scene.Node{
		Name:     "pyramid",
		SpinRate: mgl32.DegToRad(p.cfg.PyramidSpin),
	})
	if err != nil {
		return err
	}

	p.camera = camera.NewOrbitCamera(mgl32.Vec3{0, 0, 0.4}, 3.2)
	view := p.camera.ViewMatrix()
	// The viewport is always square.
	proj := p.camera.Projection(1)

	p.frame, err = renderer.NewFrameRenderer(ctx, p.program, &p.forest,
		[]renderer.Body{{Node: node, Geometry: p.mesh, Color: mgl32.Vec4{1, 1, 1, 1}}},
		renderer.Options{
			View:       &view,
			Projection: &proj,
			Uniforms: func(sp *shader.Program, _ int) error {
				return sp.SetVec3("u_facing", p.camera.Facing())
			},
		})
	return err
}

func (p *Pyramid) Tick(now time.Duration, in input.State) error {
	dt := float32(p.clock.Tick(now))
	if turn := orbitSpeed * dt; turn != 0 {
		var yaw, pitch float32
		if in.Held(input.KeyLeft) {
			yaw -= turn
		}
		if in.Held(input.KeyRight) {
			yaw += turn
		}
		if in.Held(input.KeyUp) {
			pitch += turn
		}
		if in.Held(input.KeyDown) {
			pitch -= turn
		}
		if yaw != 0 || pitch != 0 {
			p.camera.Orbit(yaw, pitch)
			p.frame.SetView(p.camera.ViewMatrix())
		}
	}

	if in.Pressed(input.KeyN) {
		if err := p.toggleNormals(); err != nil {
			return err
		}
	}
	if in.Pressed(input.KeySpace) {
		p.forest.Reset()
	}
	return p.frame.Tick(now)
}

func (p *Pyramid) toggleNormals() error {
	p.smooth = !p.smooth
	normals := p.mesh.FaceNormals()
	if p.smooth {
		normals = p.mesh.VertexNormals()
	}
	if err := p.mesh.UpdateNormals(normals); err != nil {
		return err
	}
	p.log.Debug("normals switched", zap.Bool("vertex", p.smooth))
	return nil
}

// Camera returns the orbit camera.
func (p *Pyramid) Camera() *camera.OrbitCamera { return p.camera }

// SmoothNormals reports whether vertex normals are in use.
func (p *Pyramid) SmoothNormals() bool { return p.smooth }

func (p *Pyramid) Redraw() error { return p.frame.Draw() }

func (p *Pyramid) Close() {
	if p.mesh != nil {
		p.mesh.Release()
	}
	if p.program != nil {
		p.program.Delete()
	}
}
