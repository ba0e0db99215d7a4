// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/glres/glres/gl"
)

// VertexArray owns a vertex array object.
type VertexArray struct {
	ctx      *Context
	obj      gl.VertexArray
	released bool
}

// NewVertexArray allocates a vertex array object.
func (c *Context) NewVertexArray() (*VertexArray, error) {
	obj := c.funcs.CreateVertexArray()
	if !obj.Valid() {
		return nil, fmt.Errorf("glGenVertexArrays: %w", ErrInvalidHandle)
	}
	c.glstate.createVertexArray(obj)
	c.log.Debug("vertex array created", "id", obj.V)
	return &VertexArray{ctx: c, obj: obj}, nil
}

// Handle returns the native vertex array object.
func (a *VertexArray) Handle() gl.VertexArray {
	return a.obj
}

// Bind makes a the current vertex array.
func (a *VertexArray) Bind() {
	if a.released {
		panic("gpu: bind of released vertex array")
	}
	a.ctx.glstate.bindVertexArray(a.ctx.funcs, a.obj)
}

// Unbind clears the current vertex array if it is a.
func (a *VertexArray) Unbind() {
	if !a.Bound() {
		return
	}
	a.ctx.glstate.bindVertexArray(a.ctx.funcs, gl.VertexArray{})
}

// Bound reports whether a is the current vertex array of its Context.
func (a *VertexArray) Bound() bool {
	return !a.released && a.obj.Equal(a.ctx.glstate.vertArray)
}

// EnableAttrib binds a and describes vertex attribute idx as size float
// components read from the buffer bound to gl.ARRAY_BUFFER.
func (a *VertexArray) EnableAttrib(idx gl.Attrib, size int, normalized bool, stride, offset int) {
	a.Bind()
	f := a.ctx.funcs
	f.VertexAttribPointer(idx, size, gl.FLOAT, normalized, stride, offset)
	f.EnableVertexAttribArray(idx)
}

// Release unbinds a if it is bound and deletes the vertex array object.
func (a *VertexArray) Release() {
	if a.released {
		return
	}
	a.Unbind()
	a.released = true
	a.ctx.glstate.deleteVertexArray(a.ctx.funcs, a.obj)
	a.ctx.log.Debug("vertex array released", "id", a.obj.V)
}
