// SPDX-License-Identifier: Unlicense OR MIT

// Package glcore implements gl.Functions on the desktop OpenGL 4.1 core
// profile through cgo.
package glcore

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	glres "github.com/glres/glres/gl"
)

// Functions calls into the OpenGL library loaded by New.
type Functions struct {
	// Query caches.
	uints [1]uint32
	ints  [1]int32
}

var _ glres.Functions = (*Functions)(nil)

// New loads the OpenGL entry points of the context current on the calling
// thread and checks that it provides at least OpenGL 3.3.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: %w", err)
	}
	f := new(Functions)
	ver, err := glres.ParseGLVersion(f.GetString(glres.VERSION))
	if err != nil {
		return nil, err
	}
	if ver[0] < 3 || ver[0] == 3 && ver[1] < 3 {
		return nil, errors.New("glcore: OpenGL 3.3 or newer required")
	}
	return f, nil
}

func (f *Functions) AttachShader(p glres.Program, s glres.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindBuffer(target glres.Enum, b glres.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindVertexArray(a glres.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (f *Functions) BufferData(target glres.Enum, src []byte, usage glres.Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	gl.BufferData(uint32(target), len(src), p, uint32(usage))
}

func (f *Functions) Clear(mask glres.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s glres.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *Functions) CreateBuffer() glres.Buffer {
	gl.GenBuffers(1, &f.uints[0])
	return glres.Buffer{V: uint(f.uints[0])}
}

func (f *Functions) CreateProgram() glres.Program {
	return glres.Program{V: uint(gl.CreateProgram())}
}

func (f *Functions) CreateShader(ty glres.Enum) glres.Shader {
	return glres.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *Functions) CreateVertexArray() glres.VertexArray {
	gl.GenVertexArrays(1, &f.uints[0])
	return glres.VertexArray{V: uint(f.uints[0])}
}

func (f *Functions) DeleteBuffer(v glres.Buffer) {
	f.uints[0] = uint32(v.V)
	gl.DeleteBuffers(1, &f.uints[0])
}

func (f *Functions) DeleteProgram(p glres.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteShader(s glres.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteVertexArray(a glres.VertexArray) {
	f.uints[0] = uint32(a.V)
	gl.DeleteVertexArrays(1, &f.uints[0])
}

func (f *Functions) DrawArrays(mode glres.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) EnableVertexAttribArray(a glres.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) GetAttribLocation(p glres.Program, name string) int {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return int(gl.GetAttribLocation(uint32(p.V), *cname))
}

func (f *Functions) GetError() glres.Enum {
	return glres.Enum(gl.GetError())
}

func (f *Functions) GetProgrami(p glres.Program, pname glres.Enum) int {
	gl.GetProgramiv(uint32(p.V), uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetProgramInfoLog(p glres.Program, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetProgramInfoLog(uint32(p.V), int32(len(buf)), &n, &buf[0])
	return int(n)
}

func (f *Functions) GetShaderi(s glres.Shader, pname glres.Enum) int {
	gl.GetShaderiv(uint32(s.V), uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetShaderInfoLog(s glres.Shader, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(uint32(s.V), int32(len(buf)), &n, &buf[0])
	return int(n)
}

func (f *Functions) GetString(pname glres.Enum) string {
	str := gl.GetString(uint32(pname))
	if str == nil {
		return ""
	}
	return gl.GoStr(str)
}

func (f *Functions) GetUniformLocation(p glres.Program, name string) glres.Uniform {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return glres.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), *cname))}
}

func (f *Functions) LinkProgram(p glres.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *Functions) ShaderSource(s glres.Shader, src string) {
	csrc, free := gl.Strs(src)
	defer free()
	strlen := int32(len(src))
	gl.ShaderSource(uint32(s.V), 1, csrc, &strlen)
}

func (f *Functions) Uniform1f(dst glres.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform4f(dst glres.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) UseProgram(p glres.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst glres.Attrib, size int, ty glres.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
