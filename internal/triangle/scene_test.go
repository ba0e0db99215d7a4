// SPDX-License-Identifier: Unlicense OR MIT

package triangle

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glres/glres/gl"
	"github.com/glres/glres/gl/gltest"
	"github.com/glres/glres/gpu"
)

const (
	vertSrc = "#version 330 core\nin vec2 pos;\nin vec3 color;\nvoid main() {}\n"
	fragSrc = "#version 330 core\nout vec4 fragColor;\nvoid main() {}\n"
)

type fixture struct {
	r    *gltest.Recorder
	ctx  *gpu.Context
	conf Config
	log  *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "triangle.vert"), vertSrc)
	writeFile(t, filepath.Join(dir, "triangle.frag"), fragSrc)
	r := gltest.New()
	r.Compile = func(kind gl.Enum, src string) (string, bool) {
		if strings.Contains(src, "broken") {
			return "0:1(1): error: syntax error", false
		}
		return "", true
	}
	r.SetAttrib("pos", 0)
	r.SetAttrib("color", 1)
	r.SetUniform("brightness", 4)
	conf := DefaultConfig()
	conf.Shader = ShaderConfig{
		Vertex:   filepath.Join(dir, "triangle.vert"),
		Fragment: filepath.Join(dir, "triangle.frag"),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{r: r, ctx: gpu.NewContext(r, gpu.WithLogger(log)), conf: conf, log: log}
}

func TestSceneDraw(t *testing.T) {
	f := newFixture(t)
	s, err := NewScene(f.ctx, f.conf, f.log)
	require.NoError(t, err)
	assert.Equal(t, 2, f.r.Count("EnableVertexAttribArray"))
	data, usage, ok := f.r.BufferContents(s.vbo.Handle())
	require.True(t, ok)
	assert.Len(t, data, 3*20)
	assert.Equal(t, gl.Enum(gl.STATIC_DRAW), usage)

	f.r.Reset()
	s.Draw(640, 480, 0)
	s.Draw(640, 480, 1)
	assert.Equal(t, 1, f.r.Count("UseProgram"))
	assert.Equal(t, 2, f.r.Count("DrawArrays"))
	assert.Equal(t, 2, f.r.Count("Uniform1f"))
	assert.Zero(t, f.r.Count("BindVertexArray"))
	calls := f.r.Calls()
	assert.Equal(t, []any{gl.Enum(gl.TRIANGLES), 0, 3}, calls[len(calls)-1].Args)

	s.Release()
	assert.Zero(t, f.r.Live())
}

func TestSceneReload(t *testing.T) {
	f := newFixture(t)
	s, err := NewScene(f.ctx, f.conf, f.log)
	require.NoError(t, err)
	first := s.prog.Handle()

	// A broken shader keeps the running program.
	writeFile(t, f.conf.Shader.Fragment, "broken")
	s.Reload(f.conf.Shader)
	assert.Equal(t, first, s.prog.Handle())

	writeFile(t, f.conf.Shader.Fragment, fragSrc+"// edited\n")
	s.Reload(f.conf.Shader)
	assert.NotEqual(t, first, s.prog.Handle())
	assert.True(t, s.prog.Linked())

	s.Draw(1, 1, 0)
	assert.Equal(t, s.prog.Handle(), f.r.CurrentProgram())

	s.Release()
	assert.Zero(t, f.r.Live())
}

func TestSceneReloadResetsAttribs(t *testing.T) {
	f := newFixture(t)
	s, err := NewScene(f.ctx, f.conf, f.log)
	require.NoError(t, err)
	oldVAO := s.vao.Handle()

	f.r.SetAttrib("color", 2)
	f.r.Reset()
	s.Reload(f.conf.Shader)
	assert.NotEqual(t, oldVAO, s.vao.Handle())
	assert.Equal(t, 1, f.r.Count("DeleteVertexArray"))
	var enabled []any
	for _, c := range f.r.Calls() {
		if c.Name == "EnableVertexAttribArray" {
			enabled = append(enabled, c.Args[0])
		}
	}
	assert.Equal(t, []any{gl.Attrib(0), gl.Attrib(2)}, enabled)

	// A failed setup keeps the running program and vertex array.
	f.r.SetAttrib("pos", -1)
	prog, vao := s.prog.Handle(), s.vao.Handle()
	s.Reload(f.conf.Shader)
	assert.Equal(t, prog, s.prog.Handle())
	assert.Equal(t, vao, s.vao.Handle())

	s.Release()
	assert.Zero(t, f.r.Live())
}

func TestBuildProgramReleasesOnError(t *testing.T) {
	f := newFixture(t)
	conf := f.conf.Shader
	conf.Geometry = filepath.Join(t.TempDir(), "missing.geom")
	_, err := BuildProgram(f.ctx, conf)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, f.r.Live())
}

func TestNewSceneWithoutPosAttrib(t *testing.T) {
	f := newFixture(t)
	f.r.SetAttrib("pos", -1)
	_, err := NewScene(f.ctx, f.conf, f.log)
	assert.ErrorIs(t, err, gpu.ErrUniformNotFound)
	assert.Zero(t, f.r.Live())
}
