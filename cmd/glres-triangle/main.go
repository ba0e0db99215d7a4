// SPDX-License-Identifier: Unlicense OR MIT

// Command glres-triangle draws a triangle with shaders read from files.
//
// Usage:
//
//	glres-triangle [-config glres.toml] [-watch] [-v]
//
// With -watch, the shaders are rebuilt whenever one of their files
// changes. A shader that fails to build is logged and the previous program
// stays in use.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glres/glres/gl"
	"github.com/glres/glres/gl/glcore"
	"github.com/glres/glres/gpu"
	"github.com/glres/glres/internal/triangle"
)

var (
	configFile = flag.String("config", "glres.toml", "configuration file")
	watch      = flag.Bool("watch", false, "reload shaders when their files change")
	verbose    = flag.Bool("v", false, "log resource lifecycle")
)

func init() {
	// OpenGL calls must come from the thread the context is current on.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	conf, err := triangle.ReadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(conf, logger); err != nil {
		log.Fatal(err)
	}
}

func run(conf triangle.Config, logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	funcs, err := glcore.New()
	if err != nil {
		return err
	}
	ctx := gpu.NewContext(funcs, gpu.WithLogger(logger))
	logger.Info("context ready", "version", funcs.GetString(gl.VERSION), "renderer", funcs.GetString(gl.RENDERER))

	sc, err := triangle.NewScene(ctx, conf, logger)
	if err != nil {
		return err
	}
	defer sc.Release()

	var changed <-chan struct{}
	if *watch {
		w, err := triangle.WatchShaders(conf.Shader.Paths(), logger)
		if err != nil {
			return err
		}
		defer w.Close()
		changed = w.Changed
	}

	for !window.ShouldClose() {
		select {
		case <-changed:
			sc.Reload(conf.Shader)
		default:
		}
		width, height := window.GetFramebufferSize()
		sc.Draw(width, height, glfw.GetTime())
		if err := ctx.Err(); err != nil {
			logger.Warn("draw", "err", err)
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
