package raster

import (
	"math"

	"github.com/tilecast/raster/vmath"
)

// runRasterStage walks every tile in parallel, and within each tile
// every triangle binned to it, filling pixels with an edge-function
// test. Two triangles can be binned to the same tile and even
// overlap the same pixel only through the depth test, never through a
// write race: each tile is only ever touched by the one worker that
// claimed it, so color and depth writes within a tile need no
// synchronization of their own.
func (r *Renderer) runRasterStage() {
	r.pool.runStage(stageRaster, len(r.tiles), func(tileIndex int) {
		t := &r.tiles[tileIndex]
		for i := 0; i < t.count; i++ {
			triIdx := r.tileTriIndices[t.offset+i]
			r.rasterizeTriangleInTile(&r.triangles[triIdx], t)
		}
	})
}

// edgeFunc evaluates the signed area of the parallelogram spanned by
// (b-a) and (p-a); its sign tells which side of line a->b the point p
// falls on.
func edgeFunc(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// isTopLeft reports whether the directed edge a->b is a "top" edge
// (horizontal, pointing left) or a "left" edge (pointing down) under a
// y-down screen convention. Pixels exactly on a top or left edge are
// kept; pixels on any other edge are dropped. This is the same
// tie-break rule used by hardware rasterizers to guarantee adjacent
// triangles sharing an edge never double-draw or leave a gap of
// unfilled pixels along the seam.
func isTopLeft(ax, ay, bx, by float64) bool {
	if ay == by && bx < ax {
		return true
	}
	return by > ay
}

func (r *Renderer) rasterizeTriangleInTile(tri *Triangle, tl *tile) {
	minX := maxInt(tri.MinX, tl.x0)
	maxX := minInt(tri.MaxX, tl.x1)
	minY := maxInt(tri.MinY, tl.y0)
	maxY := minInt(tri.MaxY, tl.y1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFunc(tri.X[0], tri.Y[0], tri.X[1], tri.Y[1], tri.X[2], tri.Y[2])
	if math.Abs(area) < degenerateAreaEpsilon {
		return
	}

	top0 := isTopLeft(tri.X[1], tri.Y[1], tri.X[2], tri.Y[2])
	top1 := isTopLeft(tri.X[2], tri.Y[2], tri.X[0], tri.Y[0])
	top2 := isTopLeft(tri.X[0], tri.Y[0], tri.X[1], tri.Y[1])

	dc := &r.queue.calls[tri.DrawIndex]
	var uniforms []byte
	if dc.hasUniforms {
		uniforms = r.arena.Bytes(dc.uniformOffset, dc.uniformSize)
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			x, y := float64(px)+0.5, float64(py)+0.5

			w0 := edgeFunc(tri.X[1], tri.Y[1], tri.X[2], tri.Y[2], x, y)
			w1 := edgeFunc(tri.X[2], tri.Y[2], tri.X[0], tri.Y[0], x, y)
			w2 := edgeFunc(tri.X[0], tri.Y[0], tri.X[1], tri.Y[1], x, y)

			in0 := w0 > 0 || (w0 == 0 && top0)
			in1 := w1 > 0 || (w1 == 0 && top1)
			in2 := w2 > 0 || (w2 == 0 && top2)
			if area < 0 {
				in0 = w0 < 0 || (w0 == 0 && top0)
				in1 = w1 < 0 || (w1 == 0 && top1)
				in2 = w2 < 0 || (w2 == 0 && top2)
			}
			if !(in0 && in1 && in2) {
				continue
			}

			b0, b1, b2 := w0/area, w1/area, w2/area

			invW := b0*tri.InvW[0] + b1*tri.InvW[1] + b2*tri.InvW[2]
			depth := b0*tri.Depth[0] + b1*tri.Depth[1] + b2*tri.Depth[2]

			pixelIdx := py*r.Width + px
			if depth >= r.Framebuffer.Depth[pixelIdx] {
				continue
			}

			// Perspective-correct interpolation: barycentric weights are
			// divided by w before blending, then renormalized by invW.
			pb0, pb1, pb2 := b0*tri.InvW[0]/invW, b1*tri.InvW[1]/invW, b2*tri.InvW[2]/invW

			v := Vertex{
				WorldPos: vmath.Vec3{
					X: pb0*tri.WorldPos[0].X + pb1*tri.WorldPos[1].X + pb2*tri.WorldPos[2].X,
					Y: pb0*tri.WorldPos[0].Y + pb1*tri.WorldPos[1].Y + pb2*tri.WorldPos[2].Y,
					Z: pb0*tri.WorldPos[0].Z + pb1*tri.WorldPos[1].Z + pb2*tri.WorldPos[2].Z,
				},
				Normal: vmath.Vec3{
					X: pb0*tri.Normal[0].X + pb1*tri.Normal[1].X + pb2*tri.Normal[2].X,
					Y: pb0*tri.Normal[0].Y + pb1*tri.Normal[1].Y + pb2*tri.Normal[2].Y,
					Z: pb0*tri.Normal[0].Z + pb1*tri.Normal[1].Z + pb2*tri.Normal[2].Z,
				},
				UV: [2]float64{
					pb0*tri.UV[0][0] + pb1*tri.UV[1][0] + pb2*tri.UV[2][0],
					pb0*tri.UV[0][1] + pb1*tri.UV[1][1] + pb2*tri.UV[2][1],
				},
				Color: blendColor3(tri.VColor[0], tri.VColor[1], tri.VColor[2], pb0, pb1, pb2),
			}

			color := dc.fs(v, uniforms)
			r.Framebuffer.Color[pixelIdx] = color
			r.Framebuffer.Depth[pixelIdx] = depth
		}
	}
}
