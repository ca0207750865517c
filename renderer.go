package raster

import (
	"log/slog"
	"runtime"
	"sync/atomic"
)

// RendererConfig configures a Renderer at construction time. Grounded
// on the teacher's Renderer interface (renderer_interface.go) and its
// GetDimensions/Initialize split, generalized with the tiling and
// worker-count knobs a single-threaded terminal renderer never needed.
type RendererConfig struct {
	Width, Height int
	TileSize      int // defaults to DefaultTileSize if zero
	ThreadCount   int // total threads incl. the calling goroutine; defaults to runtime.NumCPU()
	Logger        *slog.Logger
}

// Renderer owns a frame arena, a draw queue, a worker pool and a
// framebuffer, and drives one frame at a time through the pipeline
// described in doc.go.
type Renderer struct {
	Width, Height int
	TileSize      int
	TilesX, TilesY int

	Framebuffer *Framebuffer

	pool  *workerPool
	arena *FrameArena
	queue *drawQueue

	vertexScratch []Vertex
	triangles     []Triangle
	triangleCount int64

	tiles          []tile
	tileTriIndices []int

	logger *slog.Logger
}

// NewRenderer constructs a Renderer ready to accept draw calls.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		usageErrorf("NewRenderer", "width and height must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	threadCount := cfg.ThreadCount
	if threadCount <= 0 {
		threadCount = runtime.NumCPU()
	}

	tilesX := (cfg.Width + tileSize - 1) / tileSize
	tilesY := (cfg.Height + tileSize - 1) / tileSize

	tiles := make([]tile, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			tiles[ty*tilesX+tx] = tile{
				x0: tx * tileSize,
				y0: ty * tileSize,
				x1: minInt(tx*tileSize+tileSize-1, cfg.Width-1),
				y1: minInt(ty*tileSize+tileSize-1, cfg.Height-1),
			}
		}
	}

	logger := loggerOrDefault(cfg.Logger)
	logger.Info("renderer created", "width", cfg.Width, "height", cfg.Height,
		"tile_size", tileSize, "tiles_x", tilesX, "tiles_y", tilesY, "threads", threadCount)

	return &Renderer{
		Width:       cfg.Width,
		Height:      cfg.Height,
		TileSize:    tileSize,
		TilesX:      tilesX,
		TilesY:      tilesY,
		Framebuffer: NewFramebuffer(cfg.Width, cfg.Height),
		tiles:       tiles,
		pool:        newWorkerPool(maxInt(threadCount-1, 0)),
		arena:       NewFrameArena(4096),
		queue:       &drawQueue{},
		logger:      logger,
	}
}

// Destroy shuts down the worker pool's goroutines. A Renderer must not
// be used after Destroy returns.
func (r *Renderer) Destroy() {
	r.pool.destroy()
}

// Clear resets the framebuffer to the given color and depth.
func (r *Renderer) Clear(color Color, depth float64) {
	r.Framebuffer.Clear(color, depth)
}

// Reset discards the previous frame's draw queue and uniform arena,
// readying the renderer to record a new set of draw calls.
func (r *Renderer) Reset() {
	r.queue.reset()
	r.arena.Reset()
	atomic.StoreInt64(&r.triangleCount, 0)
}

// SetShaders binds the vertex and fragment shader used by subsequent
// DrawMesh calls, until changed again.
func (r *Renderer) SetShaders(vs VertexShaderFunc, fs FragmentShaderFunc) {
	r.queue.setShaders(vs, fs)
}

// SetCullMode binds the cull mode used by subsequent DrawMesh calls.
func (r *Renderer) SetCullMode(m CullMode) {
	r.queue.setCullMode(m)
}

// SetUniforms snapshots u by value into the frame arena; subsequent
// DrawMesh calls each record their own copy of this snapshot until the
// uniforms are changed or cleared. Go doesn't allow generic methods, so
// this is a free function taking the receiver explicitly.
func SetUniforms[T any](r *Renderer, u T) {
	offset, size := writeUniforms(r.arena, u)
	r.queue.setUniformBytes(r.arena.Bytes(offset, size))
}

// ClearUniforms unbinds the current uniform snapshot; subsequent
// DrawMesh calls record no uniforms until SetUniforms is called again.
func (r *Renderer) ClearUniforms() {
	r.queue.clearUniforms()
}

// DrawMesh records mesh into the current frame's draw queue using the
// currently bound shaders, cull mode and uniforms.
func (r *Renderer) DrawMesh(mesh *Mesh) {
	r.queue.drawMesh(mesh, r.arena)
}

// BinTriangles drives every recorded draw call through vertex
// transform, triangle assembly and tile binning, leaving r.tiles ready
// for Rasterize. Call Reset before recording the next frame's draw
// calls.
func (r *Renderer) BinTriangles() {
	r.growVertexScratch(r.queue.vertexScratchLen)
	r.growTriangles(r.queue.maxTriangles)
	atomic.StoreInt64(&r.triangleCount, 0)

	r.runGeometryStage()
	r.runAssemblyStage()
	r.computeBins()
}

// Rasterize walks the tiles built by the most recent BinTriangles call
// and fills the Framebuffer. Calling it before BinTriangles rasterizes
// an empty frame.
func (r *Renderer) Rasterize() {
	r.runRasterStage()
}

func (r *Renderer) growVertexScratch(n int) {
	if cap(r.vertexScratch) < n {
		r.vertexScratch = make([]Vertex, n)
	} else {
		r.vertexScratch = r.vertexScratch[:n]
	}
}

func (r *Renderer) growTriangles(maxTriangles int) {
	if cap(r.triangles) < maxTriangles {
		r.triangles = make([]Triangle, maxTriangles)
	} else {
		r.triangles = r.triangles[:maxTriangles]
	}
}

// ColorBuffer returns the packed-RGBA color plane of the framebuffer.
func (r *Renderer) ColorBuffer() []Color { return r.Framebuffer.Color }

// DepthBuffer returns the float depth plane of the framebuffer.
func (r *Renderer) DepthBuffer() []float64 { return r.Framebuffer.Depth }
