// SPDX-License-Identifier: Unlicense OR MIT

// Package triangle is the scene, configuration and shader watcher of the
// glres-triangle command.
package triangle

import (
	"log/slog"
	"math"
	"unsafe"

	"github.com/glres/glres/gl"
	"github.com/glres/glres/gpu"
)

type vertex struct {
	Pos   [2]float32
	Color [3]float32
}

var triangle = []vertex{
	{Pos: [2]float32{-0.6, -0.5}, Color: [3]float32{1, 0.2, 0.2}},
	{Pos: [2]float32{0.6, -0.5}, Color: [3]float32{0.2, 1, 0.2}},
	{Pos: [2]float32{0, 0.6}, Color: [3]float32{0.2, 0.2, 1}},
}

// Scene draws one coloured triangle.
type Scene struct {
	ctx        *gpu.Context
	log        *slog.Logger
	clear      [4]float32
	prog       *gpu.Program
	brightness gl.Uniform
	vao        *gpu.VertexArray
	vbo        *gpu.VertexBuffer[[]vertex]
}

func NewScene(ctx *gpu.Context, conf Config, log *slog.Logger) (*Scene, error) {
	prog, err := BuildProgram(ctx, conf.Shader)
	if err != nil {
		return nil, err
	}
	s := &Scene{ctx: ctx, log: log, clear: conf.Clear, prog: prog}
	if s.vao, err = ctx.NewVertexArray(); err != nil {
		s.Release()
		return nil, err
	}
	if s.vbo, err = gpu.NewVertexBuffer[[]vertex](ctx, gpu.ArrayBuffer, gpu.StaticDraw); err != nil {
		s.Release()
		return nil, err
	}
	s.vbo.Write(triangle)
	if err := s.vbo.Load(); err != nil {
		s.Release()
		return nil, err
	}
	if s.brightness, err = s.setup(s.prog, s.vao); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// BuildProgram loads, compiles and links the configured shaders. On
// failure everything allocated is released.
func BuildProgram(ctx *gpu.Context, conf ShaderConfig) (*gpu.Program, error) {
	prog, err := ctx.NewProgram()
	if err != nil {
		return nil, err
	}
	stages := []struct {
		kind gpu.ShaderKind
		path string
	}{
		{gpu.VertexShader, conf.Vertex},
		{gpu.GeometryShader, conf.Geometry},
		{gpu.FragmentShader, conf.Fragment},
	}
	for _, st := range stages {
		if st.path == "" {
			continue
		}
		sh, err := ctx.NewShader(st.kind)
		if err != nil {
			prog.Release()
			return nil, err
		}
		prog.PushShader(sh)
		if err := sh.LoadFromFile(st.path); err != nil {
			prog.Release()
			return nil, err
		}
	}
	if err := prog.Link(); err != nil {
		prog.Release()
		return nil, err
	}
	return prog, nil
}

// setup points the vertex attributes of prog at the vertex buffer and
// records them in vao. It returns the brightness uniform, which is
// optional.
func (s *Scene) setup(prog *gpu.Program, vao *gpu.VertexArray) (gl.Uniform, error) {
	stride := int(unsafe.Sizeof(vertex{}))
	pos, err := prog.AttribLocation("pos")
	if err != nil {
		return gl.Uniform{V: -1}, err
	}
	s.vbo.Bind()
	vao.EnableAttrib(pos, 2, false, stride, 0)
	if color, err := prog.AttribLocation("color"); err == nil {
		vao.EnableAttrib(color, 3, false, stride, int(unsafe.Offsetof(vertex{}.Color)))
	}
	brightness, err := prog.Uniform("brightness")
	if err != nil {
		s.log.Debug("program has no brightness uniform")
	}
	return brightness, nil
}

// Reload replaces the program with one built from conf. The current
// program is kept if the new one fails to build. Each program gets its own
// vertex array so attributes enabled for the old one do not carry over.
func (s *Scene) Reload(conf ShaderConfig) {
	prog, err := BuildProgram(s.ctx, conf)
	if err != nil {
		s.log.Warn("shader reload failed", "err", err)
		return
	}
	vao, err := s.ctx.NewVertexArray()
	if err != nil {
		s.log.Warn("shader reload failed", "err", err)
		prog.Release()
		return
	}
	brightness, err := s.setup(prog, vao)
	if err != nil {
		s.log.Warn("shader reload failed", "err", err)
		vao.Release()
		prog.Release()
		return
	}
	s.prog.Release()
	s.vao.Release()
	s.prog, s.vao, s.brightness = prog, vao, brightness
	s.log.Info("shaders reloaded", "program", prog.Handle().V)
}

func (s *Scene) Draw(width, height int, t float64) {
	f := s.ctx.Functions()
	f.Viewport(0, 0, width, height)
	f.ClearColor(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
	f.Clear(gl.COLOR_BUFFER_BIT)
	s.prog.Employ()
	if s.brightness.Valid() {
		f.Uniform1f(s.brightness, float32(0.75+0.25*math.Sin(t)))
	}
	s.vao.Bind()
	f.DrawArrays(gl.TRIANGLES, 0, len(triangle))
}

func (s *Scene) Release() {
	if s.vbo != nil {
		s.vbo.Release()
	}
	if s.vao != nil {
		s.vao.Release()
	}
	s.prog.Release()
}
