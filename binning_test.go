package raster

import "testing"

func newTestRenderer(t *testing.T, w, h, tileSize int) *Renderer {
	t.Helper()
	r := NewRenderer(RendererConfig{Width: w, Height: h, TileSize: tileSize, ThreadCount: 2})
	t.Cleanup(r.Destroy)
	return r
}

func (r *Renderer) tileContains(tileIndex, triIndex int) bool {
	tl := r.tiles[tileIndex]
	for i := 0; i < tl.count; i++ {
		if r.tileTriIndices[tl.offset+i] == triIndex {
			return true
		}
	}
	return false
}

func TestBinTrianglesCoversEveryOverlappingTile(t *testing.T) {
	r := newTestRenderer(t, 64, 64, 16) // 4x4 tiles

	tri := Triangle{MinX: 10, MinY: 10, MaxX: 40, MaxY: 20} // spans tile columns 0,1,2 at row 0,1
	r.triangles = []Triangle{tri}
	r.triangleCount = 1

	r.computeBins()

	covered := map[[2]int]bool{}
	tx0, ty0, tx1, ty1 := tri.boundsToTiles(r.TileSize, r.TilesX, r.TilesY)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			covered[[2]int{tx, ty}] = true
		}
	}

	for ty := 0; ty < r.TilesY; ty++ {
		for tx := 0; tx < r.TilesX; tx++ {
			idx := ty*r.TilesX + tx
			want := covered[[2]int{tx, ty}]
			got := r.tileContains(idx, 0)
			if got != want {
				t.Errorf("tile (%d,%d): binned=%v, want %v", tx, ty, got, want)
			}
		}
	}
}

func TestBinTrianglesResetsBetweenCalls(t *testing.T) {
	r := newTestRenderer(t, 32, 32, 16) // 2x2 tiles

	r.triangles = []Triangle{{MinX: 0, MinY: 0, MaxX: 31, MaxY: 31}}
	r.triangleCount = 1
	r.computeBins()
	if r.tiles[0].count == 0 {
		t.Fatalf("expected tile 0 to be covered on first pass")
	}

	r.triangles = []Triangle{{MinX: 20, MinY: 20, MaxX: 25, MaxY: 25}}
	r.triangleCount = 1
	r.computeBins()
	if r.tiles[0].count != 0 {
		t.Fatalf("stale binning from previous frame: tile 0 count=%d", r.tiles[0].count)
	}
}
