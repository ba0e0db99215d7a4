// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gpu wraps OpenGL shaders, programs, vertex arrays and buffers in
resource-owning handles.

Every method maps to one or a few native calls. State that would lead to a
redundant call is tracked: a compiled Shader is not compiled again, a linked
Program is not linked again, and binding a resource or employing a program
that the Context already records as current issues no call.

A Context wraps one OpenGL context:

	ctx := gpu.NewContext(funcs)
	vs, _ := ctx.NewShader(gpu.VertexShader)
	vs.Write(vertexSrc)
	fs, _ := ctx.NewShader(gpu.FragmentShader)
	fs.Write(fragmentSrc)
	prog, _ := ctx.NewProgram()
	prog.PushShader(vs)
	prog.PushShader(fs)
	if err := prog.Link(); err != nil {
		// err is a *CompileError or *LinkError carrying the info log.
	}
	prog.Employ()

	vbo, _ := gpu.NewVertexBuffer[[]float32](ctx, gpu.ArrayBuffer, gpu.StaticDraw)
	vbo.Write(vertices)
	if err := vbo.Load(); err != nil {
		...
	}

Resources are freed with Release, which unbinds a bound resource before
deleting it.
*/
package gpu
