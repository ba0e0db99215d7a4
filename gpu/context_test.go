// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glres/glres/gl"
	"github.com/glres/glres/gl/gltest"
)

func TestContextErr(t *testing.T) {
	r := gltest.New()
	ctx := NewContext(r)
	assert.NoError(t, ctx.Err())

	r.Errors = append(r.Errors, gl.INVALID_OPERATION)
	err := ctx.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x502")
	assert.NoError(t, ctx.Err())
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := gltest.New()
	r.Compile = func(gl.Enum, string) (string, bool) {
		return "0:1(1): error: bad", false
	}
	ctx := NewContext(r, WithLogger(logger))

	s, err := ctx.NewShader(FragmentShader)
	require.NoError(t, err)
	assert.Error(t, s.Compile())
	s.Release()

	out := buf.String()
	assert.Contains(t, out, "shader created")
	assert.Contains(t, out, "kind=fragment")
	assert.Contains(t, out, "shader compilation failed")
	assert.Contains(t, out, "shader released")
}

func TestContextSharesStateAcrossResources(t *testing.T) {
	ctx, r := newTestContext(t)
	assert.Same(t, r, ctx.Functions())
	assert.False(t, ctx.CurrentProgram().Valid())

	vao, err := ctx.NewVertexArray()
	require.NoError(t, err)
	vbo, err := NewVertexBuffer[[]float32](ctx, ArrayBuffer, StaticDraw)
	require.NoError(t, err)
	p := newProgram(t, ctx, map[ShaderKind]string{
		VertexShader:   vertexSrc,
		FragmentShader: fragmentSrc,
	})
	require.NoError(t, p.Link())

	vao.Bind()
	vbo.Write([]float32{0, 0, 1, 0, 0, 1})
	require.NoError(t, vbo.Load())
	p.Employ()

	assert.Equal(t, vao.Handle(), r.BoundVertexArray())
	assert.Equal(t, vbo.Handle(), r.Bound(gl.ARRAY_BUFFER))
	assert.Equal(t, p.Handle(), r.CurrentProgram())

	p.Release()
	vbo.Release()
	vao.Release()
	assert.Zero(t, r.Live())
	assert.False(t, r.BoundVertexArray().Valid())
	assert.False(t, r.Bound(gl.ARRAY_BUFFER).Valid())
	assert.False(t, r.CurrentProgram().Valid())
}
