package raster

import "testing"

type testUniforms struct {
	Tint   Color
	Scale  float64
	Flags  [4]byte
}

func TestFrameArenaSnapshotIsolatesCaller(t *testing.T) {
	a := NewFrameArena(64)
	u := testUniforms{Tint: ColorRed, Scale: 2}

	offset, size := writeUniforms(a, u)

	u.Tint = ColorBlue
	u.Scale = 99

	snap := Uniforms[testUniforms](a.Bytes(offset, size))
	if snap.Tint != ColorRed || snap.Scale != 2 {
		t.Fatalf("mutating caller struct after snapshot changed arena contents: got %+v", snap)
	}
}

func TestFrameArenaResetReusesCapacity(t *testing.T) {
	a := NewFrameArena(16)
	writeUniforms(a, testUniforms{Scale: 1})
	before := cap(a.buf)

	a.Reset()
	if len(a.buf) != 0 {
		t.Fatalf("Reset left length %d, want 0", len(a.buf))
	}
	writeUniforms(a, testUniforms{Scale: 2})
	if cap(a.buf) != before {
		t.Fatalf("Reset should not shrink capacity, was %d now %d", before, cap(a.buf))
	}
}

func TestFrameArenaGrowsPastInitialCapacity(t *testing.T) {
	a := NewFrameArena(4)
	type entry struct {
		offset, size int
	}
	var entries []entry
	for i := 0; i < 20; i++ {
		off, size := writeUniforms(a, testUniforms{Scale: float64(i)})
		entries = append(entries, entry{off, size})
	}
	for i, e := range entries {
		got := Uniforms[testUniforms](a.Bytes(e.offset, e.size)).Scale
		if got != float64(i) {
			t.Errorf("offset %d: got scale %v, want %v", e.offset, got, i)
		}
	}
}
