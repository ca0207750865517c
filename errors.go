package raster

import "fmt"

// UsageError is panicked for programmer mistakes the renderer has no
// sane fallback for: bad construction parameters, a nil mesh passed to
// DrawMesh. These are bugs in the caller, not data the renderer can
// route around, so they panic instead of returning an error value.
// Degenerate-but-legal geometry (zero-area triangles, fully off-screen
// tiles) is handled silently per the binning and rasterization rules,
// and a DrawMesh call with no shaders bound is silently skipped rather
// than treated as a usage error, and neither reaches this type.
type UsageError struct {
	Op  string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("raster: %s: %s", e.Op, e.Msg)
}

func usageErrorf(op, format string, args ...any) {
	panic(&UsageError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
