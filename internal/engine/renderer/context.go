// Package renderer drives per-frame drawing: the render context, the
// scissored clear pass and the FrameRenderer that walks a scene forest.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raster-lessons/internal/engine/gpu"
)

// Viewport is a pixel rectangle with its origin at the bottom left.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Context carries the device and the surface state every draw needs.
// It is created once per window and passed to each component.
type Context struct {
	Device     gpu.Device
	Log        *zap.Logger
	ClearColor mgl32.Vec4

	depth    bool
	width    int
	height   int
	viewport Viewport
}

// NewContext creates a render context. A nil logger discards output.
func NewContext(dev gpu.Device, log *zap.Logger, clearColor mgl32.Vec4) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Device:     dev,
		Log:        log,
		ClearColor: clearColor,
	}
}

// SquareViewport returns the largest square that fits a width x height
// surface, centered on it.
func SquareViewport(width, height int) Viewport {
	if width <= 0 || height <= 0 {
		return Viewport{}
	}
	side := min(width, height)
	return Viewport{
		X:      int32((width - side) / 2),
		Y:      int32((height - side) / 2),
		Width:  int32(side),
		Height: int32(side),
	}
}

// Resize applies a new drawable size. The viewport is kept square.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
	c.viewport = SquareViewport(width, height)

	v := c.viewport
	c.Device.Viewport(v.X, v.Y, v.Width, v.Height)

	c.Log.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int32("side", v.Width),
	)
}

// Size returns the last drawable size passed to Resize.
func (c *Context) Size() (int, int) { return c.width, c.height }

// Viewport returns the current square viewport.
func (c *Context) Viewport() Viewport { return c.viewport }

// SetDepth enables or disables the depth test and depth clears.
func (c *Context) SetDepth(enabled bool) {
	c.depth = enabled
	c.Device.SetDepthTest(enabled)
}

// Depth reports whether depth testing is on.
func (c *Context) Depth() bool { return c.depth }

// Clear clears the color buffer, and the depth buffer when depth is on.
func (c *Context) Clear() {
	cc := c.ClearColor
	c.Device.ClearColor(cc[0], cc[1], cc[2], cc[3])
	c.Device.Clear(true, c.depth)
}
