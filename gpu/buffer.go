// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/glres/glres/gl"
)

// BufferTarget is the binding point of a VertexBuffer.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
	TextureBuffer
	UniformBuffer
)

// Usage hints how the contents of a buffer will be accessed.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element array"
	case TextureBuffer:
		return "texture"
	case UniformBuffer:
		return "uniform"
	default:
		return fmt.Sprintf("BufferTarget(%d)", uint8(t))
	}
}

func (t BufferTarget) glEnum() gl.Enum {
	switch t {
	case ArrayBuffer:
		return gl.ARRAY_BUFFER
	case ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	case TextureBuffer:
		return gl.TEXTURE_BUFFER
	case UniformBuffer:
		return gl.UNIFORM_BUFFER
	default:
		panic("unknown buffer target")
	}
}

func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "static"
	case DynamicDraw:
		return "dynamic"
	case StreamDraw:
		return "stream"
	default:
		return fmt.Sprintf("Usage(%d)", uint8(u))
	}
}

func (u Usage) glEnum() gl.Enum {
	switch u {
	case StaticDraw:
		return gl.STATIC_DRAW
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	default:
		panic("unknown buffer usage")
	}
}

// VertexBuffer owns a buffer object and the data pending upload to it.
//
// T must have a fixed binary layout: fixed-size numbers, arrays or structs
// of them, or a slice of such values. The data is uploaded in host byte
// order with no padding, so struct fields must be laid out the way the
// shaders read them.
type VertexBuffer[T any] struct {
	ctx      *Context
	obj      gl.Buffer
	target   BufferTarget
	usage    Usage
	data     T
	hasData  bool
	size     int
	released bool
}

// NewVertexBuffer allocates a buffer object for the target and usage.
func NewVertexBuffer[T any](c *Context, target BufferTarget, usage Usage) (*VertexBuffer[T], error) {
	if target > UniformBuffer {
		return nil, fmt.Errorf("gpu: unknown buffer target %v", target)
	}
	if usage > StreamDraw {
		return nil, fmt.Errorf("gpu: unknown buffer usage %v", usage)
	}
	obj := c.funcs.CreateBuffer()
	if !obj.Valid() {
		return nil, fmt.Errorf("glGenBuffers: %w", ErrInvalidHandle)
	}
	c.log.Debug("buffer created", "target", target, "usage", usage, "id", obj.V)
	return &VertexBuffer[T]{ctx: c, obj: obj, target: target, usage: usage}, nil
}

// Handle returns the native buffer object.
func (b *VertexBuffer[T]) Handle() gl.Buffer {
	return b.obj
}

// Target returns the binding point b was created for.
func (b *VertexBuffer[T]) Target() BufferTarget {
	return b.target
}

// Usage returns the usage hint passed to each upload.
func (b *VertexBuffer[T]) Usage() Usage {
	return b.usage
}

// Data returns the pending payload and whether one was written.
func (b *VertexBuffer[T]) Data() (T, bool) {
	return b.data, b.hasData
}

// Len returns the size in bytes of the last upload.
func (b *VertexBuffer[T]) Len() int {
	return b.size
}

// Write replaces the payload. It is not uploaded until Load.
func (b *VertexBuffer[T]) Write(data T) {
	b.data = data
	b.hasData = true
}

// Load binds the buffer and uploads the payload with the buffer's target
// and usage. It returns ErrNoData if nothing or an empty payload was
// written and ErrLayout if the payload type has no fixed binary layout.
func (b *VertexBuffer[T]) Load() error {
	if b.released {
		return ErrReleased
	}
	if !b.hasData {
		return ErrNoData
	}
	raw, err := encode(b.data)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return ErrNoData
	}
	b.Bind()
	b.ctx.funcs.BufferData(b.target.glEnum(), raw, b.usage.glEnum())
	b.size = len(raw)
	return nil
}

// Bind binds b to its target.
func (b *VertexBuffer[T]) Bind() {
	if b.released {
		panic("gpu: bind of released buffer")
	}
	b.ctx.glstate.bindBuffer(b.ctx.funcs, b.target.glEnum(), b.obj)
}

// Unbind clears the binding of b's target if b is bound to it.
func (b *VertexBuffer[T]) Unbind() {
	if !b.Bound() {
		return
	}
	b.ctx.glstate.bindBuffer(b.ctx.funcs, b.target.glEnum(), gl.Buffer{})
}

// Bound reports whether b is bound to its target.
func (b *VertexBuffer[T]) Bound() bool {
	return !b.released && b.ctx.glstate.isBound(b.target.glEnum(), b.obj)
}

// Release unbinds b if it is bound and deletes the buffer object.
func (b *VertexBuffer[T]) Release() {
	if b.released {
		return
	}
	b.Unbind()
	b.released = true
	b.ctx.glstate.deleteBuffer(b.ctx.funcs, b.obj)
	b.ctx.log.Debug("buffer released", "target", b.target, "id", b.obj.V)
}

// encode returns the raw bytes of a fixed-layout value.
func encode(data any) ([]byte, error) {
	n := binary.Size(data)
	if n < 0 {
		return nil, fmt.Errorf("%w: %T", ErrLayout, data)
	}
	buf := bytes.NewBuffer(make([]byte, 0, n))
	if err := binary.Write(buf, binary.NativeEndian, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	return buf.Bytes(), nil
}
