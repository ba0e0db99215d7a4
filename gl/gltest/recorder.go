// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides an in-memory gl.Functions that records every
// call in order, for testing code that drives OpenGL without a context.
package gltest

import (
	"fmt"
	"strings"

	"github.com/glres/glres/gl"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a fake driver. The zero value is not usable; use New.
type Recorder struct {
	// Compile decides the outcome of CompileShader. The default accepts
	// every source.
	Compile func(kind gl.Enum, src string) (log string, ok bool)
	// Link decides the outcome of LinkProgram from the attached shaders'
	// sources. The default accepts every program with at least one shader.
	Link func(srcs []string) (log string, ok bool)
	// OmitLogTerminator makes info log queries return logs without the
	// trailing NUL the GL specification mandates.
	OmitLogTerminator bool
	// Errors is drained by GetError, front first.
	Errors []gl.Enum

	calls  []Call
	nextID uint

	shaders  map[uint]*shader
	programs map[uint]*program
	buffers  map[uint]*buffer
	arrays   map[uint]bool
	uniforms map[string]int
	attribs  map[string]int
	bound    map[gl.Enum]uint
	boundVAO uint
	current  uint
	strings  map[gl.Enum]string

	// elements maps a vertex array to its element array binding.
	elements map[uint]uint
}

type shader struct {
	kind     gl.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	attached []uint
	linked   bool
	log      string
}

type buffer struct {
	target gl.Enum
	usage  gl.Enum
	data   []byte
}

var _ gl.Functions = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{
		shaders:  make(map[uint]*shader),
		programs: make(map[uint]*program),
		buffers:  make(map[uint]*buffer),
		arrays:   make(map[uint]bool),
		uniforms: make(map[string]int),
		attribs:  make(map[string]int),
		bound:    make(map[gl.Enum]uint),
		elements: make(map[uint]uint),
		strings: map[gl.Enum]string{
			gl.VERSION:  "4.1 gltest",
			gl.RENDERER: "gltest",
		},
	}
}

// Calls returns the recorded calls.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Names returns the names of the recorded calls.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls but keeps the object state.
func (r *Recorder) Reset() {
	r.calls = nil
}

// SetUniform declares an active uniform for GetUniformLocation.
func (r *Recorder) SetUniform(name string, loc int) {
	r.uniforms[name] = loc
}

// SetAttrib declares an active vertex attribute for GetAttribLocation.
func (r *Recorder) SetAttrib(name string, loc int) {
	r.attribs[name] = loc
}

// BufferContents returns the last data uploaded to buffer b with its
// usage, and whether b exists.
func (r *Recorder) BufferContents(b gl.Buffer) ([]byte, gl.Enum, bool) {
	buf, ok := r.buffers[b.V]
	if !ok {
		return nil, 0, false
	}
	return buf.data, buf.usage, true
}

// Bound returns the buffer bound to target.
func (r *Recorder) Bound(target gl.Enum) gl.Buffer {
	return gl.Buffer{V: r.boundID(target)}
}

func (r *Recorder) boundID(target gl.Enum) uint {
	if target == gl.ELEMENT_ARRAY_BUFFER {
		return r.elements[r.boundVAO]
	}
	return r.bound[target]
}

// BoundVertexArray returns the bound vertex array.
func (r *Recorder) BoundVertexArray() gl.VertexArray {
	return gl.VertexArray{V: r.boundVAO}
}

// CurrentProgram returns the program in use.
func (r *Recorder) CurrentProgram() gl.Program {
	return gl.Program{V: r.current}
}

// Attached returns the shaders attached to p, in attach order.
func (r *Recorder) Attached(p gl.Program) []gl.Shader {
	prog, ok := r.programs[p.V]
	if !ok {
		return nil
	}
	var shs []gl.Shader
	for _, id := range prog.attached {
		shs = append(shs, gl.Shader{V: id})
	}
	return shs
}

// Live reports the number of objects not yet deleted.
func (r *Recorder) Live() int {
	return len(r.shaders) + len(r.programs) + len(r.buffers) + len(r.arrays)
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint {
	r.nextID++
	return r.nextID
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p.V, s.V)
	if prog, ok := r.programs[p.V]; ok {
		prog.attached = append(prog.attached, s.V)
	}
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer", target, b.V)
	if target == gl.ELEMENT_ARRAY_BUFFER {
		r.elements[r.boundVAO] = b.V
	} else {
		r.bound[target] = b.V
	}
	if buf, ok := r.buffers[b.V]; ok && buf.target == 0 {
		buf.target = target
	}
}

func (r *Recorder) BindVertexArray(a gl.VertexArray) {
	r.record("BindVertexArray", a.V)
	r.boundVAO = a.V
}

func (r *Recorder) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	r.record("BufferData", target, len(src), usage)
	if buf, ok := r.buffers[r.boundID(target)]; ok {
		buf.data = append([]byte(nil), src...)
		buf.usage = usage
	}
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s.V)
	sh, ok := r.shaders[s.V]
	if !ok {
		return
	}
	sh.compiled, sh.log = true, ""
	if r.Compile != nil {
		log, ok := r.Compile(sh.kind, sh.src)
		sh.compiled, sh.log = ok, log
	}
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	id := r.id()
	r.record("CreateBuffer")
	r.buffers[id] = new(buffer)
	return gl.Buffer{V: id}
}

func (r *Recorder) CreateProgram() gl.Program {
	id := r.id()
	r.record("CreateProgram")
	r.programs[id] = new(program)
	return gl.Program{V: id}
}

func (r *Recorder) CreateShader(ty gl.Enum) gl.Shader {
	r.record("CreateShader", ty)
	switch ty {
	case gl.VERTEX_SHADER, gl.GEOMETRY_SHADER, gl.FRAGMENT_SHADER:
	default:
		r.Errors = append(r.Errors, gl.INVALID_ENUM)
		return gl.Shader{}
	}
	id := r.id()
	r.shaders[id] = &shader{kind: ty}
	return gl.Shader{V: id}
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	id := r.id()
	r.record("CreateVertexArray")
	r.arrays[id] = true
	return gl.VertexArray{V: id}
}

func (r *Recorder) DeleteBuffer(b gl.Buffer) {
	r.record("DeleteBuffer", b.V)
	delete(r.buffers, b.V)
	for target, id := range r.bound {
		if id == b.V {
			r.bound[target] = 0
		}
	}
	// Only the bound vertex array drops its reference.
	if r.elements[r.boundVAO] == b.V {
		r.elements[r.boundVAO] = 0
	}
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.record("DeleteProgram", p.V)
	delete(r.programs, p.V)
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	r.record("DeleteShader", s.V)
	delete(r.shaders, s.V)
}

func (r *Recorder) DeleteVertexArray(a gl.VertexArray) {
	r.record("DeleteVertexArray", a.V)
	delete(r.arrays, a.V)
	delete(r.elements, a.V)
	if r.boundVAO == a.V {
		r.boundVAO = 0
	}
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) GetAttribLocation(p gl.Program, name string) int {
	r.record("GetAttribLocation", p.V, name)
	if loc, ok := r.attribs[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) GetError() gl.Enum {
	r.record("GetError")
	if len(r.Errors) == 0 {
		return gl.NO_ERROR
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	r.record("GetProgrami", p.V, pname)
	prog, ok := r.programs[p.V]
	if !ok {
		r.Errors = append(r.Errors, gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return r.logLength(prog.log)
	}
	r.Errors = append(r.Errors, gl.INVALID_ENUM)
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gl.Program, buf []byte) int {
	r.record("GetProgramInfoLog", p.V, len(buf))
	prog, ok := r.programs[p.V]
	if !ok {
		return 0
	}
	return r.copyLog(buf, prog.log)
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	r.record("GetShaderi", s.V, pname)
	sh, ok := r.shaders[s.V]
	if !ok {
		r.Errors = append(r.Errors, gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return r.logLength(sh.log)
	}
	r.Errors = append(r.Errors, gl.INVALID_ENUM)
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader, buf []byte) int {
	r.record("GetShaderInfoLog", s.V, len(buf))
	sh, ok := r.shaders[s.V]
	if !ok {
		return 0
	}
	return r.copyLog(buf, sh.log)
}

func (r *Recorder) GetString(pname gl.Enum) string {
	r.record("GetString", pname)
	return r.strings[pname]
}

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.record("GetUniformLocation", p.V, name)
	if loc, ok := r.uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p.V)
	prog, ok := r.programs[p.V]
	if !ok {
		return
	}
	var srcs []string
	for _, id := range prog.attached {
		if sh, ok := r.shaders[id]; ok {
			srcs = append(srcs, sh.src)
		}
	}
	if r.Link != nil {
		prog.log, prog.linked = r.Link(srcs)
		return
	}
	prog.linked = len(srcs) > 0
	prog.log = ""
	if !prog.linked {
		prog.log = "error: no shaders attached"
	}
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s.V, len(src))
	if sh, ok := r.shaders[s.V]; ok {
		sh.src = src
	}
}

func (r *Recorder) Uniform1f(dst gl.Uniform, v float32) {
	r.record("Uniform1f", dst.V, v)
}

func (r *Recorder) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	r.record("Uniform4f", dst.V, v0, v1, v2, v3)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p.V)
	r.current = p.V
}

func (r *Recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

// logLength mirrors GL_INFO_LOG_LENGTH: the length including the NUL
// terminator, or 0 for an empty log.
func (r *Recorder) logLength(log string) int {
	if log == "" {
		return 0
	}
	if r.OmitLogTerminator {
		return len(log)
	}
	return len(log) + 1
}

func (r *Recorder) copyLog(buf []byte, log string) int {
	n := copy(buf, log)
	if !r.OmitLogTerminator && len(buf) > 0 {
		if n == len(buf) {
			n--
		}
		buf[n] = 0
	}
	return n
}
