// SPDX-License-Identifier: Unlicense OR MIT

// Package gl describes the subset of the OpenGL 3.3+/4.x core API used to
// build shader programs and vertex buffers. The Functions interface is the
// only boundary to the native driver.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER         = 0x8892
	COLOR_BUFFER_BIT     = 0x4000
	COMPILE_STATUS       = 0x8b81
	DYNAMIC_DRAW         = 0x88e8
	ELEMENT_ARRAY_BUFFER = 0x8893
	FALSE                = 0
	FLOAT                = 0x1406
	FRAGMENT_SHADER      = 0x8b30
	GEOMETRY_SHADER      = 0x8dd9
	INFO_LOG_LENGTH      = 0x8b84
	INVALID_ENUM         = 0x0500
	INVALID_OPERATION    = 0x0502
	INVALID_VALUE        = 0x0501
	LINK_STATUS          = 0x8b82
	NO_ERROR             = 0x0
	OUT_OF_MEMORY        = 0x0505
	RENDERER             = 0x1f01
	SHADING_LANGUAGE     = 0x8b8c
	STATIC_DRAW          = 0x88e4
	STREAM_DRAW          = 0x88e0
	TEXTURE_BUFFER       = 0x8c2a
	TRIANGLES            = 0x4
	TRUE                 = 1
	UNIFORM_BUFFER       = 0x8a11
	UNSIGNED_INT         = 0x1405
	UNSIGNED_SHORT       = 0x1403
	VERSION              = 0x1f02
	VERTEX_SHADER        = 0x8b31
)

// Functions is the native call surface. Implementations must be used from
// the thread that owns the current OpenGL context.
type Functions interface {
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindVertexArray(a VertexArray)
	BufferData(target Enum, src []byte, usage Enum)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateVertexArray() VertexArray
	DeleteBuffer(b Buffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteVertexArray(a VertexArray)
	DrawArrays(mode Enum, first, count int)
	EnableVertexAttribArray(a Attrib)
	GetAttribLocation(p Program, name string) int
	GetError() Enum
	GetProgrami(p Program, pname Enum) int
	// GetProgramInfoLog copies the program info log into buf and returns
	// the number of bytes written, not counting a NUL terminator.
	GetProgramInfoLog(p Program, buf []byte) int
	GetShaderi(s Shader, pname Enum) int
	// GetShaderInfoLog is like GetProgramInfoLog for shaders.
	GetShaderInfoLog(s Shader, buf []byte) int
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	ShaderSource(s Shader, src string)
	Uniform1f(dst Uniform, v float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
