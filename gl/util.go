// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"bytes"
	"fmt"
)

// TrimLog returns the text of an info log buffer. The log ends at the
// first NUL byte if there is one; otherwise the whole buffer is text.
func TrimLog(buf []byte) []byte {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return buf[:i]
	}
	return buf
}

// ParseGLVersion parses the major and minor version out of a
// GL_VERSION string.
func ParseGLVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}
