// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/glres/glres/gl"
)

// Context creates resources on one OpenGL context and tracks the
// program, vertex array and buffers bound through it. Like the OpenGL
// context it wraps, a Context must only be used from the thread the
// context is current on.
type Context struct {
	funcs   gl.Functions
	glstate glState
	log     *slog.Logger
}

// Option configures a Context.
type Option func(c *Context)

// WithLogger sets the logger for resource lifecycle and diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// NewContext returns a Context issuing calls to f.
func NewContext(f gl.Functions, opts ...Option) *Context {
	c := &Context{
		funcs:   f,
		glstate: newGLState(),
		log:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Functions returns the driver the Context issues calls to.
func (c *Context) Functions() gl.Functions {
	return c.funcs
}

// CurrentProgram returns the handle of the program made current through c,
// or the zero Program if none is.
func (c *Context) CurrentProgram() gl.Program {
	return c.glstate.prog
}

// Err returns the driver's pending error, if any.
func (c *Context) Err() error {
	return glErr(c.funcs)
}

func glErr(f gl.Functions) error {
	if st := f.GetError(); st != gl.NO_ERROR {
		return fmt.Errorf("glGetError: %#x", uint(st))
	}
	return nil
}
