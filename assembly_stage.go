package raster

import (
	"math"
	"sync/atomic"
)

// degenerateAreaEpsilon is the minimum absolute signed screen-space
// area a triangle must have to survive assembly. Anything thinner gets
// rejected here rather than slipping through to the rasterizer, where
// dividing by a near-zero area would produce unstable barycentric
// weights.
const degenerateAreaEpsilon = 1e-4

// runAssemblyStage turns each draw call's (mesh, already window-space
// transformed vertices) pair into zero or more screen-space Triangles,
// in parallel across draw calls. The geometry stage has already run
// the near-plane test, perspective divide and viewport mapping once
// per vertex; this stage just reads those results and assembles
// triangles. A triangle is dropped if any of its vertices failed the
// near-plane test (marked by the geometry stage with W=-1), or if its
// signed screen-space area is smaller in magnitude than
// degenerateAreaEpsilon or has the wrong sign for the bound cull mode. Surviving triangles are appended to the
// shared triangle array with an atomic fetch-and-add, exactly like the
// frame arena's bump allocation but one element at a time instead of a
// byte run.
func (r *Renderer) runAssemblyStage() {
	calls := r.queue.calls
	r.pool.runStage(stageAssemble, len(calls), func(drawIndex int) {
		dc := &calls[drawIndex]
		mesh := dc.mesh
		base := dc.vertexOffset

		for t := 0; t+2 < len(mesh.Indices); t += 3 {
			i0 := base + int(mesh.Indices[t])
			i1 := base + int(mesh.Indices[t+1])
			i2 := base + int(mesh.Indices[t+2])

			v0 := &r.vertexScratch[i0]
			v1 := &r.vertexScratch[i1]
			v2 := &r.vertexScratch[i2]

			if v0.Position.W < 0 || v1.Position.W < 0 || v2.Position.W < 0 {
				continue
			}

			var tri Triangle
			verts := [3]*Vertex{v0, v1, v2}
			for k, v := range verts {
				tri.X[k] = v.screenX
				tri.Y[k] = v.screenY
				tri.InvW[k] = v.invW
				tri.Depth[k] = v.depth
				tri.WorldPos[k] = v.WorldPos
				tri.Normal[k] = v.Normal
				tri.UV[k] = v.UV
				tri.VColor[k] = v.Color
			}

			area := (tri.X[1]-tri.X[0])*(tri.Y[2]-tri.Y[0]) - (tri.X[2]-tri.X[0])*(tri.Y[1]-tri.Y[0])
			if math.Abs(area) < degenerateAreaEpsilon {
				continue
			}
			switch dc.cull {
			case CullBack:
				if area >= 0 {
					continue
				}
			case CullFront:
				if area <= 0 {
					continue
				}
			}

			tri.DrawIndex = drawIndex
			tri.MinX = clampInt(int(minOf3(tri.X[0], tri.X[1], tri.X[2])), 0, r.Width-1)
			tri.MaxX = clampInt(int(maxOf3(tri.X[0], tri.X[1], tri.X[2])), 0, r.Width-1)
			tri.MinY = clampInt(int(minOf3(tri.Y[0], tri.Y[1], tri.Y[2])), 0, r.Height-1)
			tri.MaxY = clampInt(int(maxOf3(tri.Y[0], tri.Y[1], tri.Y[2])), 0, r.Height-1)

			slot := atomic.AddInt64(&r.triangleCount, 1) - 1
			r.triangles[slot] = tri
		}
	})
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
