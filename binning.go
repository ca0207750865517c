package raster

// tile names one square region of the framebuffer and its slice of the
// flattened triangle-index list built by binTriangles.
type tile struct {
	x0, y0, x1, y1 int
	offset         int
	count          int
}

// computeBins assigns every triangle to every tile it overlaps using a
// two-pass counting sort: pass one counts how many triangles touch each
// tile, a prefix sum turns those counts into offsets into a flat index
// array, and pass two writes each triangle's index into its tiles'
// slices. This runs single-threaded on the stage-owning goroutine
// between the assembly and rasterization barriers; there are no
// parallel-write hazards here, and a triangle touching k tiles is
// cheap enough serially that splitting it across workers would cost
// more in synchronization than it saves. Called by the public
// BinTriangles operation once assembly has populated r.triangles.
func (r *Renderer) computeBins() {
	triCount := int(r.triangleCount)
	for i := range r.tiles {
		r.tiles[i].count = 0
	}

	for i := 0; i < triCount; i++ {
		tx0, ty0, tx1, ty1 := r.triangles[i].boundsToTiles(r.TileSize, r.TilesX, r.TilesY)
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				r.tiles[ty*r.TilesX+tx].count++
			}
		}
	}

	offset := 0
	for i := range r.tiles {
		r.tiles[i].offset = offset
		offset += r.tiles[i].count
		r.tiles[i].count = 0
	}

	if cap(r.tileTriIndices) < offset {
		r.tileTriIndices = make([]int, offset)
	} else {
		r.tileTriIndices = r.tileTriIndices[:offset]
	}

	for i := 0; i < triCount; i++ {
		tx0, ty0, tx1, ty1 := r.triangles[i].boundsToTiles(r.TileSize, r.TilesX, r.TilesY)
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				t := &r.tiles[ty*r.TilesX+tx]
				r.tileTriIndices[t.offset+t.count] = i
				t.count++
			}
		}
	}
}
