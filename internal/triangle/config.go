// SPDX-License-Identifier: Unlicense OR MIT

package triangle

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Title  string
	Width  int
	Height int
	// Clear is the RGBA clear colour.
	Clear  [4]float32
	Shader ShaderConfig
}

type ShaderConfig struct {
	Vertex   string
	Geometry string
	Fragment string
}

func DefaultConfig() Config {
	return Config{
		Title:  "glres triangle",
		Width:  800,
		Height: 600,
		Clear:  [4]float32{0.1, 0.1, 0.12, 1},
		Shader: ShaderConfig{
			Vertex:   "shaders/triangle.vert",
			Fragment: "shaders/triangle.frag",
		},
	}
}

// ReadConfig decodes the TOML file at path over the defaults. A missing
// file yields the defaults. Relative shader paths are resolved against the
// directory of the file.
func ReadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	md, err := toml.DecodeFile(path, &conf)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return conf, fmt.Errorf("config: %w", err)
	default:
		if undec := md.Undecoded(); len(undec) > 0 {
			return conf, fmt.Errorf("config: unknown key %q", undec[0].String())
		}
	}
	if conf.Width <= 0 || conf.Height <= 0 {
		return conf, fmt.Errorf("config: invalid window size %dx%d", conf.Width, conf.Height)
	}
	if conf.Shader.Vertex == "" || conf.Shader.Fragment == "" {
		return conf, errors.New("config: vertex and fragment shaders are required")
	}
	dir := filepath.Dir(path)
	conf.Shader.Vertex = resolve(dir, conf.Shader.Vertex)
	conf.Shader.Geometry = resolve(dir, conf.Shader.Geometry)
	conf.Shader.Fragment = resolve(dir, conf.Shader.Fragment)
	return conf, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Paths returns the configured shader files.
func (s ShaderConfig) Paths() []string {
	var paths []string
	for _, p := range []string{s.Vertex, s.Geometry, s.Fragment} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
