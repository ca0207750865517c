package raster

import (
	"math"
	"testing"

	"github.com/tilecast/raster/vmath"
)

type rendererUniforms struct {
	MVP vmath.Mat4
}

func passthroughVS(mesh *Mesh, i int, uniforms []byte, out *Vertex) {
	u := Uniforms[rendererUniforms](uniforms)
	p := mesh.Positions[i]
	out.Position = u.MVP.MulVec4(vmath.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	out.Normal = mesh.Normals[i]
	out.UV = mesh.UVs[i]
	out.Color = mesh.Colors[i]
}

func flatColorFS(v Vertex, uniforms []byte) Color {
	return v.Color
}

func frontFacingTriangle(z float64, color Color, reversed bool) *Mesh {
	m := NewMesh()
	a := m.AddVertex(vmath.Vec3{X: -1, Y: -1, Z: z}, vmath.Vec3{Y: -1}, [2]float64{}, color)
	b := m.AddVertex(vmath.Vec3{X: 1, Y: -1, Z: z}, vmath.Vec3{Y: -1}, [2]float64{}, color)
	c := m.AddVertex(vmath.Vec3{X: 0, Y: 1, Z: z}, vmath.Vec3{Y: -1}, [2]float64{}, color)
	if reversed {
		m.AddTriangle(uint32(c), uint32(b), uint32(a))
	} else {
		m.AddTriangle(uint32(a), uint32(b), uint32(c))
	}
	return m
}

func countPixels(r *Renderer, pred func(c Color) bool) int {
	n := 0
	for _, c := range r.ColorBuffer() {
		if pred(c) {
			n++
		}
	}
	return n
}

func renderOne(t *testing.T, mesh *Mesh, cull CullMode, mvp vmath.Mat4) *Renderer {
	t.Helper()
	r := newTestRenderer(t, 64, 64, 16)
	r.Reset()
	r.Clear(ColorBlack, 1)
	r.SetShaders(passthroughVS, flatColorFS)
	r.SetCullMode(cull)
	SetUniforms(r, rendererUniforms{MVP: mvp})
	r.DrawMesh(mesh)
	r.BinTriangles()
	r.Rasterize()
	return r
}

func TestDrawTriangleProducesCoverage(t *testing.T) {
	mvp := vmath.Perspective(math.Pi/3, 1, 0.1, 100)
	r := renderOne(t, frontFacingTriangle(5, ColorRed, false), CullNone, mvp)

	covered := countPixels(r, func(c Color) bool { return c == ColorRed })
	if covered == 0 {
		t.Fatalf("expected some pixels colored red, got none")
	}
}

func TestBackfaceCullingDiscardsExactlyOneWinding(t *testing.T) {
	mvp := vmath.Perspective(math.Pi/3, 1, 0.1, 100)

	none := renderOne(t, frontFacingTriangle(5, ColorRed, false), CullNone, mvp)
	baseline := countPixels(none, func(c Color) bool { return c == ColorRed })
	if baseline == 0 {
		t.Fatalf("baseline render produced no coverage")
	}

	fwd := renderOne(t, frontFacingTriangle(5, ColorRed, false), CullBack, mvp)
	rev := renderOne(t, frontFacingTriangle(5, ColorRed, true), CullBack, mvp)

	fwdCount := countPixels(fwd, func(c Color) bool { return c == ColorRed })
	revCount := countPixels(rev, func(c Color) bool { return c == ColorRed })

	if (fwdCount == 0) == (revCount == 0) {
		t.Fatalf("exactly one winding should survive CullBack, got forward=%d reversed=%d", fwdCount, revCount)
	}
	if fwdCount != baseline && revCount != baseline {
		t.Fatalf("surviving winding should match the unculled baseline of %d, got forward=%d reversed=%d", baseline, fwdCount, revCount)
	}
}

func TestNearPlaneRejectsCloseVertex(t *testing.T) {
	mvp := vmath.Perspective(math.Pi/3, 1, 0.1, 100)
	r := renderOne(t, frontFacingTriangle(0.05, ColorRed, false), CullNone, mvp)

	covered := countPixels(r, func(c Color) bool { return c == ColorRed })
	if covered != 0 {
		t.Fatalf("triangle with a vertex inside the near plane should be fully dropped, got %d covered pixels", covered)
	}
}

func TestDepthTestIsOrderIndependent(t *testing.T) {
	mvp := vmath.Perspective(math.Pi/3, 1, 0.1, 100)

	renderBoth := func(first, second *Mesh) *Renderer {
		r := newTestRenderer(t, 64, 64, 16)
		r.Reset()
		r.Clear(ColorBlack, 1)
		r.SetShaders(passthroughVS, flatColorFS)
		r.SetCullMode(CullNone)
		SetUniforms(r, rendererUniforms{MVP: mvp})
		r.DrawMesh(first)
		r.DrawMesh(second)
		r.BinTriangles()
		r.Rasterize()
		return r
	}

	near := frontFacingTriangle(3, ColorGreen, false)
	far := frontFacingTriangle(8, ColorRed, false)

	nearFirst := renderBoth(near, far)
	farFirst := renderBoth(far, near)

	greenNearFirst := countPixels(nearFirst, func(c Color) bool { return c == ColorGreen })
	greenFarFirst := countPixels(farFirst, func(c Color) bool { return c == ColorGreen })
	redNearFirst := countPixels(nearFirst, func(c Color) bool { return c == ColorRed })
	redFarFirst := countPixels(farFirst, func(c Color) bool { return c == ColorRed })

	if greenNearFirst == 0 {
		t.Fatalf("nearer triangle should be visible regardless of draw order")
	}
	if greenNearFirst != greenFarFirst || redNearFirst != redFarFirst {
		t.Fatalf("depth test result depended on draw order: green(%d,%d) red(%d,%d)",
			greenNearFirst, greenFarFirst, redNearFirst, redFarFirst)
	}
}

func TestTileBoundaryHasNoGapsOrOverdraw(t *testing.T) {
	mvp := vmath.Perspective(math.Pi/3, 1, 0.1, 100)
	mesh := frontFacingTriangle(5, ColorRed, false)

	coarse := newTestRenderer(t, 64, 64, 64) // one giant tile
	coarse.Reset()
	coarse.Clear(ColorBlack, 1)
	coarse.SetShaders(passthroughVS, flatColorFS)
	SetUniforms(coarse, rendererUniforms{MVP: mvp})
	coarse.DrawMesh(mesh)
	coarse.BinTriangles()
	coarse.Rasterize()

	fine := newTestRenderer(t, 64, 64, 8) // many small tiles
	fine.Reset()
	fine.Clear(ColorBlack, 1)
	fine.SetShaders(passthroughVS, flatColorFS)
	SetUniforms(fine, rendererUniforms{MVP: mvp})
	fine.DrawMesh(mesh)
	fine.BinTriangles()
	fine.Rasterize()

	coarseCount := countPixels(coarse, func(c Color) bool { return c == ColorRed })
	fineCount := countPixels(fine, func(c Color) bool { return c == ColorRed })
	if coarseCount != fineCount {
		t.Fatalf("tile size changed triangle coverage: %d tile vs %d tiles", coarseCount, fineCount)
	}
}
