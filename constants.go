package raster

// NearPlane is the view-space-z/clip-w threshold below which a vertex
// is rejected rather than rasterized. Grounded on the teacher's
// Camera.Near field (camera.go), which the same ProjectPoint call uses
// as its own "too close, don't draw" cutoff.
const NearPlane = 0.1

// DefaultTileSize is the edge length, in pixels, of a square bin tile.
const DefaultTileSize = 16
