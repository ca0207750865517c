package raster

// runGeometryStage transforms every vertex of every recorded draw call
// into clip space and then into window space, in parallel across draw
// calls. The work-item domain is the draw call count; vertices within
// one draw call are transformed serially on whichever worker picked up
// that call, since they share no state worth splitting further.
//
// Beyond invoking the vertex shader, this stage owns the near-plane
// test, the perspective divide and the viewport mapping to window
// space: each vertex is visited exactly once here, however many
// triangles of an indexed mesh reference it, rather than redoing that
// work per referencing triangle in assembly. A vertex that fails the
// near-plane test has its clip W overwritten with -1, the sentinel
// assembly uses to drop any triangle touching it.
func (r *Renderer) runGeometryStage() {
	calls := r.queue.calls
	r.pool.runStage(stageVertex, len(calls), func(drawIndex int) {
		dc := &calls[drawIndex]
		mesh := dc.mesh
		var uniforms []byte
		if dc.hasUniforms {
			uniforms = r.arena.Bytes(dc.uniformOffset, dc.uniformSize)
		}
		base := dc.vertexOffset
		for i := 0; i < mesh.VertexCount(); i++ {
			v := &r.vertexScratch[base+i]
			dc.vs(mesh, i, uniforms, v)

			if v.Position.W < NearPlane {
				v.Position.W = -1
				continue
			}

			invW := 1.0 / v.Position.W
			ndcX := v.Position.X * invW
			ndcY := v.Position.Y * invW
			ndcZ := v.Position.Z * invW

			v.screenX = (ndcX*0.5 + 0.5) * float64(r.Width)
			v.screenY = (1 - (ndcY*0.5 + 0.5)) * float64(r.Height)
			v.invW = invW
			v.depth = ndcZ
		}
	})
}
