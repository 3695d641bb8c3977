// Package gpu defines the subset of the OpenGL API the lessons draw with.
//
// Components take a Device instead of calling gl.* directly so the render
// context is explicit and the draw path can run against a recording fake.
package gpu

// BufferTarget selects the binding point of a buffer object.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Float32Size is the byte size of one float32 attribute component.
const Float32Size = 4

// Device is a GL-like command sink bound to the current context.
type Device interface {
	GenVertexArray() uint32
	GenBuffer() uint32
	DeleteVertexArray(id uint32)
	DeleteBuffer(id uint32)

	BindVertexArray(id uint32)
	BindBuffer(target BufferTarget, id uint32)

	// AllocateBuffer reserves size bytes for the bound buffer (STATIC_DRAW).
	AllocateBuffer(target BufferTarget, size int)
	// BufferSubData writes data at a byte offset of the bound buffer.
	BufferSubData(target BufferTarget, offset int, data []float32)
	// IndexData uploads 16-bit indices into the bound element buffer.
	IndexData(indices []uint16)

	VertexAttribPointer(location uint32, size int32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(location uint32)

	// DrawTriangles issues an indexed triangle-list draw of count indices.
	DrawTriangles(count int32)

	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v [3]float32)
	Uniform4f(location int32, v [4]float32)
	UniformMatrix4(location int32, m [16]float32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(color, depth bool)
	SetScissor(enabled bool)
	Scissor(x, y, width, height int32)
	SetDepthTest(enabled bool)
}
