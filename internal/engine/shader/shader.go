// Package shader wraps a linked GPU program with typed uniform setters.
package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/raster-lessons/internal/engine/gpu"
)

// ErrUniformNotFound is returned when a program has no active uniform of
// the requested name. Shader variants may omit optional uniforms, so
// callers log and skip it.
var ErrUniformNotFound = errors.New("uniform not found")

// ErrAttributeNotFound is returned by BindAttribute for inactive attributes.
var ErrAttributeNotFound = errors.New("attribute not found")

// CompileError reports a failed compile or link.
type CompileError struct {
	Name string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader %q: %v", e.Name, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Program is a compiled and linked shader program.
type Program struct {
	dev  gpu.Device
	id   uint32
	name string

	locs map[string]int32
}

// Compile builds a program from vertex and fragment sources.
func Compile(dev gpu.Device, name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := dev.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, &CompileError{Name: name, Err: err}
	}
	return &Program{
		dev:  dev,
		id:   id,
		name: name,
		locs: make(map[string]int32),
	}, nil
}

// ID returns the program handle.
func (p *Program) ID() uint32 { return p.id }

// Name returns the name the program was compiled under.
func (p *Program) Name() string { return p.name }

// Use makes the program current.
func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

// Delete frees the program.
func (p *Program) Delete() {
	if p.id != 0 {
		p.dev.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *Program) location(name string) (int32, error) {
	loc, ok := p.locs[name]
	if !ok {
		loc = p.dev.UniformLocation(p.id, name)
		p.locs[name] = loc
	}
	if loc < 0 {
		return -1, fmt.Errorf("%w: %q in %q", ErrUniformNotFound, name, p.name)
	}
	return loc, nil
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.dev.Uniform1f(loc, v)
	return nil
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.dev.Uniform3f(loc, v)
	return nil
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.dev.Uniform4f(loc, v)
	return nil
}

// SetMat4 sets a mat4 uniform (column-major).
func (p *Program) SetMat4(name string, m mgl32.Mat4) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.dev.UniformMatrix4(loc, m)
	return nil
}

// BindAttribute points a named vertex attribute at the bound array buffer
// and enables it.
func (p *Program) BindAttribute(name string, size int32, normalized bool, stride int32, offset int) error {
	loc := p.dev.AttribLocation(p.id, name)
	if loc < 0 {
		return fmt.Errorf("%w: %q in %q", ErrAttributeNotFound, name, p.name)
	}
	p.dev.VertexAttribPointer(uint32(loc), size, normalized, stride, offset)
	p.dev.EnableVertexAttribArray(uint32(loc))
	return nil
}
