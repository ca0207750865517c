package raster

import "unsafe"

// FrameArena is a byte-addressed bump allocator for per-draw-call
// uniform snapshots. SetUniforms copies the caller's struct in by value
// at record time, so mutating the original between draw calls can never
// reach an already-recorded snapshot.
//
// Grounded on two teacher idioms fused together: object_pool.go's
// "reset length, keep capacity" pool lifecycle (Reset just truncates the
// backing slice instead of freeing it), and renderer_vulkan.go's
// unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)) pattern for
// copying a uniform struct into a byte buffer ahead of a GPU upload.
// Growth of the backing slice itself is left to append's built-in
// amortized doubling rather than object_pool's manual capacity
// bookkeeping, since append already gives the same asymptotic behavior
// idiomatically.
type FrameArena struct {
	buf []byte
}

// NewFrameArena returns an arena pre-sized to initialCap bytes of
// capacity (length zero).
func NewFrameArena(initialCap int) *FrameArena {
	return &FrameArena{buf: make([]byte, 0, initialCap)}
}

// Reset truncates the arena to length zero without releasing capacity.
func (a *FrameArena) Reset() {
	a.buf = a.buf[:0]
}

// write copies data into the arena and returns the byte offset it was
// written at.
func (a *FrameArena) write(data []byte) int {
	offset := len(a.buf)
	a.buf = append(a.buf, data...)
	return offset
}

// Bytes returns the size bytes stored at offset. The returned slice
// aliases the arena and is only valid until the next Reset.
func (a *FrameArena) Bytes(offset, size int) []byte {
	return a.buf[offset : offset+size]
}

// asBytes reinterprets a value of type T as its raw memory, the same
// way renderer_vulkan.go serializes a uniform buffer object before
// mapping it into device memory.
func asBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// writeUniforms snapshots u into the arena by value and returns its
// offset and size.
func writeUniforms[T any](a *FrameArena, u T) (offset, size int) {
	b := asBytes(&u)
	return a.write(b), len(b)
}

// Uniforms reinterprets the size bytes at offset as a *T. Callers use
// this inside a shader to recover the struct passed to SetUniforms for
// the draw call currently being processed. T must be the same type
// used to record the snapshot; the rasterizer never checks this, the
// same way a GPU never checks what a uniform buffer binding contains.
func Uniforms[T any](data []byte) *T {
	return (*T)(unsafe.Pointer(&data[0]))
}
