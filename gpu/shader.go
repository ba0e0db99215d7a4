// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"os"

	"github.com/glres/glres/gl"
)

// ShaderKind is the pipeline stage of a Shader.
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	GeometryShader
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case GeometryShader:
		return "geometry"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderKind(%d)", uint8(k))
	}
}

func (k ShaderKind) glEnum() (gl.Enum, error) {
	switch k {
	case VertexShader:
		return gl.VERTEX_SHADER, nil
	case GeometryShader:
		return gl.GEOMETRY_SHADER, nil
	case FragmentShader:
		return gl.FRAGMENT_SHADER, nil
	default:
		return 0, fmt.Errorf("gpu: unknown shader kind %v", k)
	}
}

// Shader owns one shader object. The object is allocated by NewShader,
// before any source is known, and lives until Release.
type Shader struct {
	ctx      *Context
	obj      gl.Shader
	kind     ShaderKind
	src      string
	compiled bool
	released bool
}

// NewShader allocates a shader object of the given kind.
func (c *Context) NewShader(kind ShaderKind) (*Shader, error) {
	ty, err := kind.glEnum()
	if err != nil {
		return nil, err
	}
	obj := c.funcs.CreateShader(ty)
	if !obj.Valid() {
		return nil, fmt.Errorf("glCreateShader(%s): %w", kind, ErrInvalidHandle)
	}
	c.log.Debug("shader created", "kind", kind, "id", obj.V)
	return &Shader{ctx: c, obj: obj, kind: kind}, nil
}

// Handle returns the native shader object.
func (s *Shader) Handle() gl.Shader {
	return s.obj
}

// Kind returns the pipeline stage of s.
func (s *Shader) Kind() ShaderKind {
	return s.kind
}

// Source returns the source text last written or loaded.
func (s *Shader) Source() string {
	return s.src
}

// Compiled reports whether Compile has succeeded.
func (s *Shader) Compiled() bool {
	return s.compiled
}

// Write replaces the source text. It does not recompile a compiled
// shader.
func (s *Shader) Write(src string) {
	s.src = src
}

// LoadFromFile replaces the source text with the contents of the named
// file. Errors from reading the file are returned unchanged.
func (s *Shader) LoadFromFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s.src = string(src)
	return nil
}

// Compile submits the source to the driver and compiles it. Once a
// compilation has succeeded, Compile returns nil without calling the
// driver. A failed compilation returns a *CompileError and may be retried.
func (s *Shader) Compile() error {
	if s.released {
		return ErrReleased
	}
	if s.compiled {
		return nil
	}
	f := s.ctx.funcs
	f.ShaderSource(s.obj, s.src)
	f.CompileShader(s.obj)
	if err := s.Status(); err != nil {
		s.ctx.log.Warn("shader compilation failed", "kind", s.kind, "id", s.obj.V, "err", err)
		return err
	}
	s.compiled = true
	return nil
}

// Status queries the compile status of the shader. If the last
// compilation failed it returns a *CompileError with the info log.
func (s *Shader) Status() error {
	if s.released {
		return ErrReleased
	}
	f := s.ctx.funcs
	if f.GetShaderi(s.obj, gl.COMPILE_STATUS) == gl.TRUE {
		return nil
	}
	n := f.GetShaderi(s.obj, gl.INFO_LOG_LENGTH)
	log, err := readLog(n, func(buf []byte) int {
		return f.GetShaderInfoLog(s.obj, buf)
	})
	return &CompileError{Kind: s.kind, Log: log, Err: err}
}

// Release deletes the shader object. Calling Release more than once has no
// effect.
func (s *Shader) Release() {
	if s.released {
		return
	}
	s.released = true
	s.ctx.funcs.DeleteShader(s.obj)
	s.ctx.log.Debug("shader released", "kind", s.kind, "id", s.obj.V)
}
