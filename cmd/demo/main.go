package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tilecast/raster"
	"github.com/tilecast/raster/vmath"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	frames := flag.Int("frames", 0, "stop after N frames (0 = run until quit)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	r := raster.NewRenderer(raster.RendererConfig{
		Width:       cfg.Width,
		Height:      cfg.Height,
		TileSize:    cfg.TileSize,
		ThreadCount: cfg.ThreadCount,
	})
	defer r.Destroy()

	cube := generateCube(1.5, raster.PackColor(220, 180, 60, 255))
	cam := newOrbitCamera(vmath.Vec3{}, cfg.OrbitRadius, cfg.OrbitSpeed)

	keys := newKeyReader()
	if err := keys.start(); err != nil {
		fmt.Fprintln(os.Stderr, "keyboard input unavailable, running with auto-orbit only:", err)
	} else {
		defer keys.stopReading()
	}

	switch cfg.Presenter {
	case "gl":
		runGLPresenter(r, cam, cube, keys, *frames)
	default:
		runTerminalPresenter(r, cam, cube, keys, *frames)
	}
}

func runTerminalPresenter(r *raster.Renderer, cam *orbitCamera, mesh *raster.Mesh, keys *keyReader, frameLimit int) {
	w := bufio.NewWriter(os.Stdout)
	p := newTerminalPresenter(w)
	p.open()
	defer p.close()

	aspect := float64(r.Width) / float64(r.Height) / 2 // terminal cells are roughly twice as tall as wide
	frame := 0
	for {
		in := keys.state()
		if in.quit {
			return
		}
		cam.update(in)

		r.Reset()
		r.Clear(raster.ColorBlack, 1)
		r.SetShaders(demoVertexShader, demoFragmentShader)
		r.SetCullMode(raster.CullBack)
		raster.SetUniforms(r, demoUniforms{MVP: cam.viewProj(aspect)})
		r.DrawMesh(mesh)
		r.BinTriangles()
		r.Rasterize()

		p.present(r)
		keys.clear()

		frame++
		if frameLimit > 0 && frame >= frameLimit {
			return
		}
		time.Sleep(33 * time.Millisecond)
	}
}
