package lessons

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/raster-lessons/internal/config"
	"github.com/Faultbox/raster-lessons/internal/engine/input"
	"github.com/Faultbox/raster-lessons/internal/engine/renderer"
)

// Quadrant colors of the clear lesson.
var (
	quadBottomLeft  = mgl32.Vec4{0, 112.0 / 255, 192.0 / 255, 1}
	quadTopLeft     = mgl32.Vec4{1, 0, 0, 1}
	quadBottomRight = mgl32.Vec4{1, 1, 0, 1}
	quadTopRight    = mgl32.Vec4{0, 176.0 / 255, 80.0 / 255, 1}
)

// Clear fills the four quadrants of the viewport with scissored clears.
type Clear struct {
	pass *renderer.ClearPass
}

// NewClear creates the clear lesson.
func NewClear(config.SceneConfig) *Clear { return &Clear{} }

func (*Clear) Name() string { return config.LessonClear }

func (c *Clear) Setup(ctx *renderer.Context) error {
	ctx.SetDepth(false)
	c.pass = renderer.NewClearPass(ctx, renderer.Quadrants(quadBottomLeft, quadTopLeft, quadBottomRight, quadTopRight))
	return nil
}

func (c *Clear) Tick(time.Duration, input.State) error { return c.Redraw() }

func (c *Clear) Redraw() error {
	c.pass.Draw()
	return nil
}

func (*Clear) Close() {}
