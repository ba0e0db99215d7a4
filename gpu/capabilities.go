// SPDX-License-Identifier: Unlicense OR MIT

package gpu

// Loader reads a resource's contents from a file.
type Loader interface {
	LoadFromFile(path string) error
}

// Writer replaces a resource's pending contents.
type Writer[T any] interface {
	Write(data T)
}

// Compiler turns source into a driver object.
type Compiler interface {
	Compile() error
}

// Linker combines compiled stages into an executable program.
type Linker interface {
	Link() error
}

// Attacher attaches owned shaders to a program.
type Attacher interface {
	Attach() error
}

// Binder is implemented by resources that can be made current. Bind and
// Unbind are no-ops when the resource is already in the requested state.
type Binder interface {
	Bind()
	Unbind()
	Bound() bool
}

// StatusReporter reports the driver's verdict on the last compile or link,
// with the info log as error.
type StatusReporter interface {
	Status() error
}

// Releaser frees the native object behind a resource.
type Releaser interface {
	Release()
}

var (
	_ Loader         = (*Shader)(nil)
	_ Writer[string] = (*Shader)(nil)
	_ Compiler       = (*Shader)(nil)
	_ StatusReporter = (*Shader)(nil)
	_ Releaser       = (*Shader)(nil)

	_ Attacher       = (*Program)(nil)
	_ Linker         = (*Program)(nil)
	_ StatusReporter = (*Program)(nil)
	_ Releaser       = (*Program)(nil)

	_ Binder   = (*VertexArray)(nil)
	_ Releaser = (*VertexArray)(nil)

	_ Binder            = (*VertexBuffer[[]float32])(nil)
	_ Writer[[]float32] = (*VertexBuffer[[]float32])(nil)
	_ Releaser          = (*VertexBuffer[[]float32])(nil)
)
