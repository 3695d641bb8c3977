package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// GL is the Device backed by the current OpenGL 4.1 core context.
type GL struct{}

// NewGL loads the GL function pointers.
// IMPORTANT: Must be called AFTER the OpenGL context is made current!
func NewGL(log *zap.Logger) (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return &GL{}, nil
}

func glTarget(t BufferTarget) uint32 {
	if t == ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (*GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*GL) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }
func (*GL) DeleteBuffer(id uint32)      { gl.DeleteBuffers(1, &id) }
func (*GL) BindVertexArray(id uint32)   { gl.BindVertexArray(id) }

func (*GL) BindBuffer(target BufferTarget, id uint32) {
	gl.BindBuffer(glTarget(target), id)
}

func (*GL) AllocateBuffer(target BufferTarget, size int) {
	gl.BufferData(glTarget(target), size, nil, gl.STATIC_DRAW)
}

func (*GL) BufferSubData(target BufferTarget, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(glTarget(target), offset, len(data)*Float32Size, gl.Ptr(data))
}

func (*GL) IndexData(indices []uint16) {
	if len(indices) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
}

func (*GL) VertexAttribPointer(location uint32, size int32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, normalized, stride, uintptr(offset))
}

func (*GL) EnableVertexAttribArray(location uint32) { gl.EnableVertexAttribArray(location) }

func (*GL) DrawTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, nil)
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func (*GL) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", gl.GoStr(&log[0]))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", stage, gl.GoStr(&log[0]))
	}

	return shader, nil
}

func (*GL) DeleteProgram(id uint32) { gl.DeleteProgram(id) }
func (*GL) UseProgram(id uint32)    { gl.UseProgram(id) }

func (*GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*GL) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (*GL) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (*GL) Uniform3f(location int32, v [3]float32) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (*GL) Uniform4f(location int32, v [4]float32) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (*GL) UniformMatrix4(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (*GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (*GL) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }

func (*GL) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func (*GL) SetScissor(enabled bool) { toggle(gl.SCISSOR_TEST, enabled) }

func (*GL) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (*GL) SetDepthTest(enabled bool) {
	toggle(gl.DEPTH_TEST, enabled)
	if enabled {
		gl.DepthFunc(gl.LESS)
	}
}

func toggle(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
