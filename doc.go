// Package raster implements a multithreaded, tile-binned software
// rasterizer: draw calls are recorded into a frame-scoped queue, then
// advanced through vertex transform, triangle assembly, tile binning
// and per-tile rasterization by a barrier-synchronized worker pool.
//
// The package never touches a window or a GPU. A caller owns a
// Renderer, feeds it meshes and shaders through DrawMesh, calls
// BinTriangles then Rasterize, and reads the resulting color and depth
// planes off the Framebuffer. Presentation (terminal, GLFW/OpenGL,
// whatever) lives above this package, in cmd/demo.
package raster
