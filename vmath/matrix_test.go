package vmath

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestIdentityIsNoOp(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want unchanged", p, got)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(5, -3, 10).Mul(RotateY(0.7)).Mul(Scale(2, 2, 2))
	inv := m.Invert()

	points := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-5, 10, -20}, {100, 200, 300}}
	for _, p := range points {
		roundTripped := inv.TransformPoint(m.TransformPoint(p))
		if absDiff(roundTripped.X, p.X) > 1e-9 ||
			absDiff(roundTripped.Y, p.Y) > 1e-9 ||
			absDiff(roundTripped.Z, p.Z) > 1e-9 {
			t.Errorf("round trip for %v landed on %v", p, roundTripped)
		}
	}
}

func TestPerspectiveNearRejectsBehindCamera(t *testing.T) {
	proj := Perspective(math.Pi/3, 1, 0.1, 100)
	behind := proj.MulVec4(Vec4{0, 0, -1, 1})
	if behind.W >= 0.1 {
		t.Errorf("point behind camera should have clip.w < near, got %v", behind.W)
	}

	ahead := proj.MulVec4(Vec4{0, 0, 10, 1})
	if ahead.W < 0.1 {
		t.Errorf("point in front of camera should have clip.w >= near, got %v", ahead.W)
	}
}

func TestLookAtPlacesTargetOnForwardAxis(t *testing.T) {
	view := LookAt(Vec3{0, 0, -5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	target := view.TransformPoint(Vec3{0, 0, 0})
	if target.X > 1e-9 || target.Y > 1e-9 {
		t.Errorf("target should lie on the view-space Z axis, got %v", target)
	}
	if target.Z <= 0 {
		t.Errorf("target should be in front of the camera, got z=%v", target.Z)
	}
}
