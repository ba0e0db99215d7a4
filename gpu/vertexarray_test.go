// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glres/glres/gl"
	"github.com/glres/glres/gl/gltest"
)

func TestVertexArrayBind(t *testing.T) {
	ctx, r := newTestContext(t)
	a, err := ctx.NewVertexArray()
	require.NoError(t, err)
	assert.False(t, a.Bound())

	a.Bind()
	a.Bind()
	assert.True(t, a.Bound())
	assert.Equal(t, 1, r.Count("BindVertexArray"))
	assert.Equal(t, a.Handle(), r.BoundVertexArray())

	a.Unbind()
	a.Unbind()
	assert.False(t, a.Bound())
	assert.Equal(t, 2, r.Count("BindVertexArray"))
	assert.False(t, r.BoundVertexArray().Valid())
}

func TestVertexArrayBindOther(t *testing.T) {
	ctx, r := newTestContext(t)
	a, err := ctx.NewVertexArray()
	require.NoError(t, err)
	b, err := ctx.NewVertexArray()
	require.NoError(t, err)

	a.Bind()
	b.Bind()
	assert.False(t, a.Bound())
	assert.True(t, b.Bound())

	// Unbinding a vertex array that is no longer current leaves b bound.
	r.Reset()
	a.Unbind()
	assert.Empty(t, r.Calls())
	assert.Equal(t, b.Handle(), r.BoundVertexArray())
}

func TestVertexArrayReleaseUnbindsFirst(t *testing.T) {
	ctx, r := newTestContext(t)
	a, err := ctx.NewVertexArray()
	require.NoError(t, err)
	a.Bind()
	r.Reset()

	a.Release()
	a.Release()
	assert.Equal(t, []gltest.Call{
		{Name: "BindVertexArray", Args: []any{uint(0)}},
		{Name: "DeleteVertexArray", Args: []any{a.Handle().V}},
	}, r.Calls())
	assert.False(t, a.Bound())
	assert.Zero(t, r.Live())
	assert.Panics(t, a.Bind)
}

func TestVertexArrayReleaseUnbound(t *testing.T) {
	ctx, r := newTestContext(t)
	a, err := ctx.NewVertexArray()
	require.NoError(t, err)
	r.Reset()

	a.Release()
	assert.Equal(t, []string{"DeleteVertexArray"}, r.Names())
}

func TestVertexArrayEnableAttrib(t *testing.T) {
	ctx, r := newTestContext(t)
	a, err := ctx.NewVertexArray()
	require.NoError(t, err)
	r.Reset()

	a.EnableAttrib(2, 3, false, 24, 12)
	assert.Equal(t, []gltest.Call{
		{Name: "BindVertexArray", Args: []any{a.Handle().V}},
		{Name: "VertexAttribPointer", Args: []any{gl.Attrib(2), 3, gl.Enum(gl.FLOAT), false, 24, 12}},
		{Name: "EnableVertexAttribArray", Args: []any{gl.Attrib(2)}},
	}, r.Calls())
}
