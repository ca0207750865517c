package main

import (
	"github.com/tilecast/raster"
	"github.com/tilecast/raster/vmath"
)

// generateCube is grounded on the teacher's GenerateSphere
// (mesh_generators.go): same two-phase build (emit vertices with
// position/normal/UV, then stitch indices), generalized to a
// face-per-quad cube since the core's Mesh needs one color per vertex
// that the teacher's generators never carried.
func generateCube(half float64, color raster.Color) *raster.Mesh {
	mesh := raster.NewMesh()

	type face struct {
		normal   vmath.Vec3
		corners  [4]vmath.Vec3
	}
	faces := []face{
		{vmath.Vec3{Z: -1}, [4]vmath.Vec3{{X: -half, Y: -half, Z: -half}, {X: half, Y: -half, Z: -half}, {X: half, Y: half, Z: -half}, {X: -half, Y: half, Z: -half}}},
		{vmath.Vec3{Z: 1}, [4]vmath.Vec3{{X: -half, Y: -half, Z: half}, {X: -half, Y: half, Z: half}, {X: half, Y: half, Z: half}, {X: half, Y: -half, Z: half}}},
		{vmath.Vec3{X: -1}, [4]vmath.Vec3{{X: -half, Y: -half, Z: -half}, {X: -half, Y: half, Z: -half}, {X: -half, Y: half, Z: half}, {X: -half, Y: -half, Z: half}}},
		{vmath.Vec3{X: 1}, [4]vmath.Vec3{{X: half, Y: -half, Z: -half}, {X: half, Y: -half, Z: half}, {X: half, Y: half, Z: half}, {X: half, Y: half, Z: -half}}},
		{vmath.Vec3{Y: -1}, [4]vmath.Vec3{{X: -half, Y: -half, Z: -half}, {X: -half, Y: -half, Z: half}, {X: half, Y: -half, Z: half}, {X: half, Y: -half, Z: -half}}},
		{vmath.Vec3{Y: 1}, [4]vmath.Vec3{{X: -half, Y: half, Z: -half}, {X: half, Y: half, Z: -half}, {X: half, Y: half, Z: half}, {X: -half, Y: half, Z: half}}},
	}

	uvs := [4][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	for _, f := range faces {
		base := mesh.VertexCount()
		for c := 0; c < 4; c++ {
			mesh.AddVertex(f.corners[c], f.normal, uvs[c], color)
		}
		mesh.AddTriangle(uint32(base), uint32(base+1), uint32(base+2))
		mesh.AddTriangle(uint32(base), uint32(base+2), uint32(base+3))
	}
	return mesh
}
