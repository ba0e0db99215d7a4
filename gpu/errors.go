// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/glres/glres/gl"
)

var (
	// ErrNoData is returned by VertexBuffer.Load before any Write.
	ErrNoData = errors.New("gpu: no data to load")
	// ErrLayout is returned for buffer payloads without a fixed binary
	// layout.
	ErrLayout = errors.New("gpu: payload has no fixed binary layout")
	// ErrUniformNotFound is returned for names that are not active
	// uniforms or attributes of a program.
	ErrUniformNotFound = errors.New("gpu: uniform not found")
	// ErrInvalidHandle is returned when the driver fails to allocate an
	// object.
	ErrInvalidHandle = errors.New("gpu: driver returned an invalid handle")
	// ErrReleased is returned by operations on released resources.
	ErrReleased = errors.New("gpu: resource released")
	// ErrLogEncoding is wrapped by compile and link errors whose info log
	// is not valid UTF-8.
	ErrLogEncoding = errors.New("gpu: info log is not valid UTF-8")
)

// CompileError is a shader compilation failure.
type CompileError struct {
	Kind ShaderKind
	// Log is the driver's info log.
	Log string
	// Err is ErrLogEncoding when Log holds the raw, invalid log bytes.
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, e.Log)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// LinkError is a program link failure.
type LinkError struct {
	Log string
	Err error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", e.Log)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

// readLog reads an info log of the length reported by the driver. The
// returned error is ErrLogEncoding for logs that are not UTF-8 text.
func readLog(n int, read func(buf []byte) int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	buf := make([]byte, n)
	written := read(buf)
	if written < 0 || written > len(buf) {
		written = len(buf)
	}
	text := gl.TrimLog(buf[:written])
	log := strings.TrimSpace(string(text))
	if !utf8.ValidString(log) {
		return log, ErrLogEncoding
	}
	return log, nil
}
