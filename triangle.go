package raster

import "github.com/tilecast/raster/vmath"

// Triangle is a fully assembled, screen-space triangle ready for
// binning and rasterization. It carries everything the rasterizer needs
// per vertex to interpolate attributes with perspective correction:
// screen-space position, 1/w, and NDC depth, alongside the raw
// attributes (normal/UV/color) the fragment shader reads.
type Triangle struct {
	X, Y     [3]float64
	InvW     [3]float64
	Depth    [3]float64
	WorldPos [3]vmath.Vec3
	Normal   [3]vmath.Vec3
	UV       [3][2]float64
	VColor   [3]Color

	DrawIndex int

	MinX, MinY, MaxX, MaxY int
}

// boundsToTiles clamps the triangle's pixel bounding box to the
// framebuffer and expresses it in tile coordinates.
func (t *Triangle) boundsToTiles(tileSize, tilesX, tilesY int) (tx0, ty0, tx1, ty1 int) {
	tx0 = clampInt(t.MinX/tileSize, 0, tilesX-1)
	ty0 = clampInt(t.MinY/tileSize, 0, tilesY-1)
	tx1 = clampInt(t.MaxX/tileSize, 0, tilesX-1)
	ty1 = clampInt(t.MaxY/tileSize, 0, tilesY-1)
	return
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
