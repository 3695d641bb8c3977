package geometry

import (
	"fmt"

	"github.com/Faultbox/raster-lessons/internal/engine/gpu"
)

// Buffer is a static mesh living in one packed vertex buffer and one index
// buffer. Many bodies may share a Buffer.
type Buffer struct {
	dev  gpu.Device
	data Data

	faceNormals   []float32
	vertexNormals []float32

	layout Layout

	vao uint32
	vbo uint32
	ebo uint32
}

// New copies data, applies opts and validates the result. No GPU work is
// done until Upload.
func New(dev gpu.Device, data Data, opts Options) (*Buffer, error) {
	d := Data{
		Positions: append([]float32(nil), data.Positions...),
		Normals:   append([]float32(nil), data.Normals...),
		Colors:    append([]float32(nil), data.Colors...),
		TexCoords: append([]float32(nil), data.TexCoords...),
		Indices:   append([]uint16(nil), data.Indices...),
	}

	if opts.Color != nil {
		d.Colors = make([]float32, d.VertexCount()*ColorComponents)
		for i := 0; i < len(d.Colors); i += ColorComponents {
			copy(d.Colors[i:i+ColorComponents], opts.Color[:])
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &Buffer{
		dev:           dev,
		data:          d,
		faceNormals:   append([]float32(nil), d.Normals...),
		vertexNormals: SmoothNormals(d.Positions, d.Normals),
		layout:        ComputeLayout(d.VertexCount()),
	}, nil
}

// Data returns the mesh arrays. Callers must not modify them.
func (b *Buffer) Data() Data { return b.data }

// Layout returns the region offsets used by Upload.
func (b *Buffer) Layout() Layout { return b.layout }

// VertexCount returns the number of logical vertices.
func (b *Buffer) VertexCount() int { return b.data.VertexCount() }

// IndexCount returns the length of the index sequence.
func (b *Buffer) IndexCount() int { return len(b.data.Indices) }

// FaceNormals returns the per-face flat normals given at construction.
func (b *Buffer) FaceNormals() []float32 { return b.faceNormals }

// VertexNormals returns normals averaged over coincident positions.
func (b *Buffer) VertexNormals() []float32 { return b.vertexNormals }

// Uploaded reports whether the GPU handles exist.
func (b *Buffer) Uploaded() bool { return b.vao != 0 }

// Upload packs positions, normals, colors and texcoords contiguously into
// one vertex buffer and the indices into an element buffer. Attribute
// stride is 0: each region is tightly packed on its own.
func (b *Buffer) Upload() {
	dev := b.dev
	l := b.layout

	b.vao = dev.GenVertexArray()
	b.vbo = dev.GenBuffer()
	b.ebo = dev.GenBuffer()

	dev.BindVertexArray(b.vao)

	dev.BindBuffer(gpu.ArrayBuffer, b.vbo)
	dev.AllocateBuffer(gpu.ArrayBuffer, l.Total)
	dev.BufferSubData(gpu.ArrayBuffer, l.Position, b.data.Positions)
	dev.BufferSubData(gpu.ArrayBuffer, l.Normal, b.data.Normals)
	dev.BufferSubData(gpu.ArrayBuffer, l.Color, b.data.Colors)
	dev.BufferSubData(gpu.ArrayBuffer, l.TexCoord, b.data.TexCoords)

	dev.BindBuffer(gpu.ElementArrayBuffer, b.ebo)
	dev.IndexData(b.data.Indices)

	dev.VertexAttribPointer(LocPosition, PositionComponents, false, 0, l.Position)
	dev.VertexAttribPointer(LocNormal, NormalComponents, false, 0, l.Normal)
	dev.VertexAttribPointer(LocColor, ColorComponents, false, 0, l.Color)
	dev.VertexAttribPointer(LocTexCoord, TexCoordComponents, false, 0, l.TexCoord)

	dev.EnableVertexAttribArray(LocPosition)
	dev.EnableVertexAttribArray(LocNormal)
	dev.EnableVertexAttribArray(LocColor)
	dev.EnableVertexAttribArray(LocTexCoord)

	// The element buffer binding is VAO state and stays bound.
	dev.BindBuffer(gpu.ArrayBuffer, 0)
	dev.BindVertexArray(0)
}

// UpdateNormals replaces the normal region in place. The new slice must
// have exactly as many components as the current normals.
func (b *Buffer) UpdateNormals(normals []float32) error {
	if len(normals) != len(b.data.Normals) {
		return &ConfigurationError{
			Field:  "normals",
			Reason: fmt.Sprintf("update length %d, want %d", len(normals), len(b.data.Normals)),
		}
	}
	copy(b.data.Normals, normals)

	if !b.Uploaded() {
		return nil
	}
	b.dev.BindVertexArray(b.vao)
	b.dev.BindBuffer(gpu.ArrayBuffer, b.vbo)
	b.dev.BufferSubData(gpu.ArrayBuffer, b.layout.Normal, b.data.Normals)
	b.dev.BindBuffer(gpu.ArrayBuffer, 0)
	b.dev.BindVertexArray(0)
	return nil
}

// Draw issues one indexed triangle-list draw over the full index sequence.
func (b *Buffer) Draw() {
	b.dev.BindVertexArray(b.vao)
	b.dev.DrawTriangles(int32(len(b.data.Indices)))
	b.dev.BindVertexArray(0)
}

// Release frees the vertex buffer, index buffer and vertex array.
// Call it once per Buffer.
func (b *Buffer) Release() {
	b.dev.DeleteBuffer(b.vbo)
	b.dev.DeleteBuffer(b.ebo)
	b.dev.DeleteVertexArray(b.vao)
	b.vao, b.vbo, b.ebo = 0, 0, 0
}
