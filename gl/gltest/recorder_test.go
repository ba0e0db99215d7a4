// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glres/glres/gl"
)

func TestRecorderInfoLog(t *testing.T) {
	r := New()
	r.Compile = func(gl.Enum, string) (string, bool) { return "bad", false }
	s := r.CreateShader(gl.VERTEX_SHADER)
	r.CompileShader(s)

	assert.Equal(t, gl.FALSE, r.GetShaderi(s, gl.COMPILE_STATUS))
	n := r.GetShaderi(s, gl.INFO_LOG_LENGTH)
	assert.Equal(t, 4, n)
	buf := make([]byte, n)
	assert.Equal(t, 3, r.GetShaderInfoLog(s, buf))
	assert.Equal(t, []byte("bad\x00"), buf)

	r.OmitLogTerminator = true
	n = r.GetShaderi(s, gl.INFO_LOG_LENGTH)
	assert.Equal(t, 3, n)
	buf = make([]byte, n)
	assert.Equal(t, 3, r.GetShaderInfoLog(s, buf))
	assert.Equal(t, []byte("bad"), buf)
}

func TestRecorderCalls(t *testing.T) {
	r := New()
	b := r.CreateBuffer()
	r.BindBuffer(gl.ARRAY_BUFFER, b)
	r.BufferData(gl.ARRAY_BUFFER, []byte{1, 2, 3}, gl.STATIC_DRAW)

	assert.Equal(t, []string{"CreateBuffer", "BindBuffer", "BufferData"}, r.Names())
	assert.Equal(t, "BufferData(34962, 3, 35044)", r.Calls()[2].String())
	data, usage, ok := r.BufferContents(b)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, gl.Enum(gl.STATIC_DRAW), usage)

	r.DeleteBuffer(b)
	assert.False(t, r.Bound(gl.ARRAY_BUFFER).Valid())
	assert.Zero(t, r.Live())
}

func TestRecorderInvalidShaderKind(t *testing.T) {
	r := New()
	s := r.CreateShader(gl.ARRAY_BUFFER)
	assert.False(t, s.Valid())
	assert.Equal(t, gl.Enum(gl.INVALID_ENUM), r.GetError())
	assert.Equal(t, gl.Enum(gl.NO_ERROR), r.GetError())
}

func TestRecorderElementBindingPerVertexArray(t *testing.T) {
	r := New()
	a := r.CreateVertexArray()
	b := r.CreateVertexArray()
	ebo := r.CreateBuffer()

	r.BindVertexArray(a)
	r.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	r.BindVertexArray(b)
	assert.False(t, r.Bound(gl.ELEMENT_ARRAY_BUFFER).Valid())
	r.BindVertexArray(a)
	assert.Equal(t, ebo, r.Bound(gl.ELEMENT_ARRAY_BUFFER))

	r.DeleteBuffer(ebo)
	assert.False(t, r.Bound(gl.ELEMENT_ARRAY_BUFFER).Valid())
}
