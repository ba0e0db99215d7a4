// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"github.com/glres/glres/gl"
)

// glState tracks the driver-visible bindings made through a Context.
type glState struct {
	prog      gl.Program
	vertArray gl.VertexArray
	// bufs maps a buffer target to its bound buffer. A missing entry means
	// the binding is unknown.
	bufs map[gl.Enum]gl.Buffer
	// elems holds the element array binding of each vertex array, which
	// is restored whenever that vertex array is bound. A missing entry
	// means the binding is unknown.
	elems map[gl.VertexArray]gl.Buffer
}

func newGLState() glState {
	return glState{
		bufs:  make(map[gl.Enum]gl.Buffer),
		elems: make(map[gl.VertexArray]gl.Buffer),
	}
}

func (s *glState) useProgram(f gl.Functions, p gl.Program) {
	if !p.Equal(s.prog) {
		f.UseProgram(p)
		s.prog = p
	}
}

func (s *glState) bindVertexArray(f gl.Functions, a gl.VertexArray) {
	if a.Equal(s.vertArray) {
		return
	}
	f.BindVertexArray(a)
	s.vertArray = a
}

// createVertexArray records the empty element array binding of a new
// vertex array.
func (s *glState) createVertexArray(a gl.VertexArray) {
	s.elems[a] = gl.Buffer{}
}

func (s *glState) binding(target gl.Enum) (gl.Buffer, bool) {
	if target == gl.ELEMENT_ARRAY_BUFFER {
		b, ok := s.elems[s.vertArray]
		return b, ok
	}
	b, ok := s.bufs[target]
	return b, ok
}

func (s *glState) bindBuffer(f gl.Functions, target gl.Enum, buf gl.Buffer) {
	if cur, ok := s.binding(target); ok && buf.Equal(cur) {
		return
	}
	f.BindBuffer(target, buf)
	if target == gl.ELEMENT_ARRAY_BUFFER {
		s.elems[s.vertArray] = buf
	} else {
		s.bufs[target] = buf
	}
}

func (s *glState) isBound(target gl.Enum, buf gl.Buffer) bool {
	cur, ok := s.binding(target)
	return ok && buf.Valid() && buf.Equal(cur)
}

func (s *glState) deleteBuffer(f gl.Functions, b gl.Buffer) {
	f.DeleteBuffer(b)
	for target, b2 := range s.bufs {
		if b.Equal(b2) {
			s.bufs[target] = gl.Buffer{}
		}
	}
	for a, b2 := range s.elems {
		if !b.Equal(b2) {
			continue
		}
		// Vertex arrays other than the bound one keep the deleted name,
		// which the driver may hand out again.
		if a.Equal(s.vertArray) {
			s.elems[a] = gl.Buffer{}
		} else {
			delete(s.elems, a)
		}
	}
}

func (s *glState) deleteProgram(f gl.Functions, p gl.Program) {
	f.DeleteProgram(p)
	if p.Equal(s.prog) {
		s.prog = gl.Program{}
	}
}

func (s *glState) deleteVertexArray(f gl.Functions, a gl.VertexArray) {
	f.DeleteVertexArray(a)
	delete(s.elems, a)
	if a.Equal(s.vertArray) {
		s.vertArray = gl.VertexArray{}
	}
}
