// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"slices"

	"github.com/glres/glres/gl"
)

// Program owns a program object and the shaders pushed into it.
type Program struct {
	ctx      *Context
	obj      gl.Program
	shaders  []*Shader
	attached map[gl.Shader]bool
	linked   bool
	released bool
}

// NewProgram allocates a program object.
func (c *Context) NewProgram() (*Program, error) {
	obj := c.funcs.CreateProgram()
	if !obj.Valid() {
		return nil, fmt.Errorf("glCreateProgram: %w", ErrInvalidHandle)
	}
	c.log.Debug("program created", "id", obj.V)
	return &Program{
		ctx:      c,
		obj:      obj,
		attached: make(map[gl.Shader]bool),
	}, nil
}

// Handle returns the native program object.
func (p *Program) Handle() gl.Program {
	return p.obj
}

// Linked reports whether Link has succeeded.
func (p *Program) Linked() bool {
	return p.linked
}

// Shaders returns a copy of the owned shaders in push order.
func (p *Program) Shaders() []*Shader {
	return slices.Clone(p.shaders)
}

// PushShader transfers ownership of s to p. The shader is released with
// the program.
func (p *Program) PushShader(s *Shader) {
	p.shaders = append(p.shaders, s)
}

// Attach compiles every owned shader and attaches it to the program. The
// first compile error aborts the remaining attaches. Shaders already
// attached to p are not attached again.
func (p *Program) Attach() error {
	if p.released {
		return ErrReleased
	}
	for _, s := range p.shaders {
		if err := s.Compile(); err != nil {
			return err
		}
		if p.attached[s.obj] {
			continue
		}
		p.ctx.funcs.AttachShader(p.obj, s.obj)
		p.attached[s.obj] = true
	}
	return nil
}

// Link attaches the shaders and links the program. Once linking has
// succeeded, Link returns nil without calling the driver.
func (p *Program) Link() error {
	if p.released {
		return ErrReleased
	}
	if p.linked {
		return nil
	}
	if err := p.Attach(); err != nil {
		return err
	}
	p.ctx.funcs.LinkProgram(p.obj)
	if err := p.Status(); err != nil {
		p.ctx.log.Warn("program link failed", "id", p.obj.V, "err", err)
		return err
	}
	p.linked = true
	return nil
}

// Status queries the link status of the program. If the last link failed
// it returns a *LinkError with the info log.
func (p *Program) Status() error {
	if p.released {
		return ErrReleased
	}
	f := p.ctx.funcs
	if f.GetProgrami(p.obj, gl.LINK_STATUS) == gl.TRUE {
		return nil
	}
	n := f.GetProgrami(p.obj, gl.INFO_LOG_LENGTH)
	log, err := readLog(n, func(buf []byte) int {
		return f.GetProgramInfoLog(p.obj, buf)
	})
	return &LinkError{Log: log, Err: err}
}

// Employ makes p the current program. The driver is not called when p is
// already current on its Context.
func (p *Program) Employ() {
	if p.released {
		panic("gpu: employ of released program")
	}
	p.ctx.glstate.useProgram(p.ctx.funcs, p.obj)
}

// Current reports whether p is the current program of its Context.
func (p *Program) Current() bool {
	return !p.released && p.obj.Equal(p.ctx.glstate.prog)
}

// Uniform returns the location of the named active uniform.
func (p *Program) Uniform(name string) (gl.Uniform, error) {
	if p.released {
		return gl.Uniform{V: -1}, ErrReleased
	}
	loc := p.ctx.funcs.GetUniformLocation(p.obj, name)
	if !loc.Valid() {
		return loc, fmt.Errorf("%w: %s", ErrUniformNotFound, name)
	}
	return loc, nil
}

// AttribLocation returns the location of the named active vertex
// attribute.
func (p *Program) AttribLocation(name string) (gl.Attrib, error) {
	if p.released {
		return 0, ErrReleased
	}
	loc := p.ctx.funcs.GetAttribLocation(p.obj, name)
	if loc < 0 {
		return 0, fmt.Errorf("%w: attribute %s", ErrUniformNotFound, name)
	}
	return gl.Attrib(loc), nil
}

// Release deletes the program object and then the owned shaders. If p is
// current, the Context's current program is cleared first.
func (p *Program) Release() {
	if p.released {
		return
	}
	if p.Current() {
		p.ctx.glstate.useProgram(p.ctx.funcs, gl.Program{})
	}
	p.released = true
	p.ctx.glstate.deleteProgram(p.ctx.funcs, p.obj)
	p.ctx.log.Debug("program released", "id", p.obj.V)
	for _, s := range p.shaders {
		s.Release()
	}
}
