package main

import (
	"github.com/tilecast/raster/vmath"
	"github.com/tilecast/raster"
)

// demoUniforms is the per-draw uniform block: a single MVP matrix, the
// same shape as the teacher's SurfaceRenderContext but reduced to what
// a GPU-style vertex shader actually needs per draw call.
type demoUniforms struct {
	MVP vmath.Mat4
}

func demoVertexShader(mesh *raster.Mesh, i int, uniforms []byte, out *raster.Vertex) {
	u := raster.Uniforms[demoUniforms](uniforms)
	p := mesh.Positions[i]
	out.Position = u.MVP.MulVec4(vmath.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	out.WorldPos = p
	out.Normal = mesh.Normals[i]
	out.UV = mesh.UVs[i]
	out.Color = mesh.Colors[i]
}

// lightDir is the fixed key light used by the teacher's
// CalculateSurfaceLighting (rasterizer_common.go), kept as-is since the
// demo has no lighting-system plumbing of its own to feed a direction in.
var lightDir = vmath.Vec3{X: -1, Y: 1, Z: -1}.Normalize()

const ambientOcclusionFloor = 0.25

func demoFragmentShader(v raster.Vertex, uniforms []byte) raster.Color {
	intensity := v.Normal.Dot(lightDir)
	if intensity < 0 {
		intensity = 0
	}
	intensity = ambientOcclusionFloor + intensity*(1-ambientOcclusionFloor)

	r, g, b, a := raster.UnpackColor(v.Color)
	shade := func(c uint8) uint8 {
		shaded := float64(c) * intensity
		if shaded > 255 {
			shaded = 255
		}
		return uint8(shaded)
	}
	return raster.PackColor(shade(r), shade(g), shade(b), a)
}
