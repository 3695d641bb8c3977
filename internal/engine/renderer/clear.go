package renderer

import "github.com/go-gl/mathgl/mgl32"

// Region is a rectangle of the viewport given in fractions of its side,
// origin at the bottom left, with the color it is cleared to.
type Region struct {
	X, Y          float32
	Width, Height float32
	Color         mgl32.Vec4
}

// Quadrants splits the viewport into four equal regions.
func Quadrants(bottomLeft, topLeft, bottomRight, topRight mgl32.Vec4) []Region {
	return []Region{
		{X: 0, Y: 0, Width: 0.5, Height: 0.5, Color: bottomLeft},
		{X: 0, Y: 0.5, Width: 0.5, Height: 0.5, Color: topLeft},
		{X: 0.5, Y: 0, Width: 0.5, Height: 0.5, Color: bottomRight},
		{X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5, Color: topRight},
	}
}

// ClearPass clears each region to its own color using the scissor test.
type ClearPass struct {
	ctx     *Context
	Regions []Region
}

// NewClearPass creates a clear pass over regions.
func NewClearPass(ctx *Context, regions []Region) *ClearPass {
	return &ClearPass{ctx: ctx, Regions: regions}
}

// Pixels maps a region onto the current viewport. Edges are rounded down
// on their own, so regions that share an edge tile without gaps.
func (p *ClearPass) Pixels(r Region) Viewport {
	v := p.ctx.Viewport()
	w := float32(v.Width)
	h := float32(v.Height)
	x0, x1 := int32(r.X*w), int32((r.X+r.Width)*w)
	y0, y1 := int32(r.Y*h), int32((r.Y+r.Height)*h)
	return Viewport{
		X:      v.X + x0,
		Y:      v.Y + y0,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

// Draw clears the whole surface to the context clear color, then each
// region in order.
func (p *ClearPass) Draw() {
	dev := p.ctx.Device
	p.ctx.Clear()

	dev.SetScissor(true)
	for _, r := range p.Regions {
		px := p.Pixels(r)
		dev.Scissor(px.X, px.Y, px.Width, px.Height)
		dev.ClearColor(r.Color[0], r.Color[1], r.Color[2], r.Color[3])
		dev.Clear(true, false)
	}
	dev.SetScissor(false)
}
