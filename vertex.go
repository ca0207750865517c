package raster

import "github.com/tilecast/raster/vmath"

// Vertex is the attribute bundle carried from the vertex shader through
// clipping and into the fragment shader. Position is clip space (set by
// the vertex shader, and overwritten with W=-1 by the geometry stage if
// the vertex fails the near-plane test); WorldPos is the pre-projection
// world-space position a fragment shader needs for positional lighting.
// Everything past Position is varying attribute data that gets
// barycentric-interpolated by the rasterizer. screenX/screenY/invW/depth
// are filled in by the geometry stage once the vertex survives the
// near-plane test; shaders never touch them.
type Vertex struct {
	Position vmath.Vec4
	WorldPos vmath.Vec3
	Normal   vmath.Vec3
	UV       [2]float64
	Color    Color

	screenX, screenY float64
	invW             float64
	depth            float64
}

// VertexShaderFunc transforms vertex index i of mesh into clip space,
// writing the result into out. uniforms is the raw byte snapshot taken
// when the draw call was recorded; decode it with Uniforms[T].
type VertexShaderFunc func(mesh *Mesh, i int, uniforms []byte, out *Vertex)

// FragmentShaderFunc computes the final pixel color for a triangle
// sample, given the interpolated vertex and the same uniform snapshot
// used by the vertex shader for that draw call.
type FragmentShaderFunc func(v Vertex, uniforms []byte) Color
