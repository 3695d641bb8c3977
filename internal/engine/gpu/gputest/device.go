// Package gputest provides a recording gpu.Device for tests.
package gputest

import (
	"errors"
	"fmt"

	"github.com/Faultbox/raster-lessons/internal/engine/gpu"
)

// Call is one recorded device command.
type Call struct {
	Op     string
	Target gpu.BufferTarget
	ID     uint32
	Offset int
	Size   int
	Floats []float32
	Shorts []uint16
	Name   string
	Loc    int32
	Vec4   [4]float32
	Mat4   [16]float32
	Bools  [2]bool
	Rect   [4]int32
}

// Device records every command it receives. Handles are allocated from a
// single counter starting at 1.
type Device struct {
	Calls []Call

	// Uniforms lists the uniform names the next compiled program exposes.
	// A nil map exposes every name.
	Uniforms map[string]bool
	// Attribs maps attribute names to locations for AttribLocation.
	Attribs map[string]int32
	// CompileErr, when set, is returned by CompileProgram.
	CompileErr error

	next      uint32
	locations map[string]int32
	names     map[int32]string
	deleted   map[uint32]int
}

// New returns an empty recording device.
func New() *Device {
	return &Device{
		locations: make(map[string]int32),
		names:     make(map[int32]string),
		deleted:   make(map[uint32]int),
	}
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) record(c Call) { d.Calls = append(d.Calls, c) }

func (d *Device) alloc() uint32 {
	d.next++
	return d.next
}

// Ops returns the recorded op names in order.
func (d *Device) Ops() []string {
	ops := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Find returns all calls with the given op.
func (d *Device) Find(op string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops recorded calls but keeps handles and locations.
func (d *Device) Reset() { d.Calls = d.Calls[:0] }

// Deleted reports how many times a handle was deleted.
func (d *Device) Deleted(id uint32) int { return d.deleted[id] }

// UniformName resolves a location handed out by UniformLocation.
func (d *Device) UniformName(loc int32) string { return d.names[loc] }

func (d *Device) GenVertexArray() uint32 {
	id := d.alloc()
	d.record(Call{Op: "GenVertexArray", ID: id})
	return id
}

func (d *Device) GenBuffer() uint32 {
	id := d.alloc()
	d.record(Call{Op: "GenBuffer", ID: id})
	return id
}

func (d *Device) DeleteVertexArray(id uint32) {
	d.deleted[id]++
	d.record(Call{Op: "DeleteVertexArray", ID: id})
}

func (d *Device) DeleteBuffer(id uint32) {
	d.deleted[id]++
	d.record(Call{Op: "DeleteBuffer", ID: id})
}

func (d *Device) BindVertexArray(id uint32) {
	d.record(Call{Op: "BindVertexArray", ID: id})
}

func (d *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	d.record(Call{Op: "BindBuffer", Target: target, ID: id})
}

func (d *Device) AllocateBuffer(target gpu.BufferTarget, size int) {
	d.record(Call{Op: "AllocateBuffer", Target: target, Size: size})
}

func (d *Device) BufferSubData(target gpu.BufferTarget, offset int, data []float32) {
	cp := append([]float32(nil), data...)
	d.record(Call{Op: "BufferSubData", Target: target, Offset: offset, Size: len(data) * gpu.Float32Size, Floats: cp})
}

func (d *Device) IndexData(indices []uint16) {
	cp := append([]uint16(nil), indices...)
	d.record(Call{Op: "IndexData", Target: gpu.ElementArrayBuffer, Size: len(indices) * 2, Shorts: cp})
}

func (d *Device) VertexAttribPointer(location uint32, size int32, normalized bool, stride int32, offset int) {
	d.record(Call{Op: "VertexAttribPointer", ID: location, Size: int(size), Loc: stride, Offset: offset, Bools: [2]bool{normalized}})
}

func (d *Device) EnableVertexAttribArray(location uint32) {
	d.record(Call{Op: "EnableVertexAttribArray", ID: location})
}

func (d *Device) DrawTriangles(count int32) {
	d.record(Call{Op: "DrawTriangles", Size: int(count)})
}

func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if d.CompileErr != nil {
		d.record(Call{Op: "CompileProgram"})
		return 0, d.CompileErr
	}
	if vertexSrc == "" || fragmentSrc == "" {
		return 0, errors.New("empty shader source")
	}
	id := d.alloc()
	d.record(Call{Op: "CompileProgram", ID: id})
	return id, nil
}

func (d *Device) DeleteProgram(id uint32) {
	d.deleted[id]++
	d.record(Call{Op: "DeleteProgram", ID: id})
}

func (d *Device) UseProgram(id uint32) {
	d.record(Call{Op: "UseProgram", ID: id})
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record(Call{Op: "UniformLocation", ID: program, Name: name})
	if d.Uniforms != nil && !d.Uniforms[name] {
		return -1
	}
	key := fmt.Sprintf("%d/%s", program, name)
	if loc, ok := d.locations[key]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[key] = loc
	d.names[loc] = name
	return loc
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	d.record(Call{Op: "AttribLocation", ID: program, Name: name})
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) Uniform1f(location int32, v float32) {
	d.record(Call{Op: "Uniform1f", Loc: location, Name: d.names[location], Floats: []float32{v}})
}

func (d *Device) Uniform3f(location int32, v [3]float32) {
	d.record(Call{Op: "Uniform3f", Loc: location, Name: d.names[location], Vec4: [4]float32{v[0], v[1], v[2], 0}})
}

func (d *Device) Uniform4f(location int32, v [4]float32) {
	d.record(Call{Op: "Uniform4f", Loc: location, Name: d.names[location], Vec4: v})
}

func (d *Device) UniformMatrix4(location int32, m [16]float32) {
	d.record(Call{Op: "UniformMatrix4", Loc: location, Name: d.names[location], Mat4: m})
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record(Call{Op: "Viewport", Rect: [4]int32{x, y, width, height}})
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.record(Call{Op: "ClearColor", Vec4: [4]float32{r, g, b, a}})
}

func (d *Device) Clear(color, depth bool) {
	d.record(Call{Op: "Clear", Bools: [2]bool{color, depth}})
}

func (d *Device) SetScissor(enabled bool) {
	d.record(Call{Op: "SetScissor", Bools: [2]bool{enabled}})
}

func (d *Device) Scissor(x, y, width, height int32) {
	d.record(Call{Op: "Scissor", Rect: [4]int32{x, y, width, height}})
}

func (d *Device) SetDepthTest(enabled bool) {
	d.record(Call{Op: "SetDepthTest", Bools: [2]bool{enabled}})
}
