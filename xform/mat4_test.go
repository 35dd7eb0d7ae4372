package xform

import "testing"

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestMat4MulOrder(t *testing.T) {
	tr := Mat4Translate(V3(1, 0, 0))
	sc := Mat4ScaleAniso(Mat4Identity(), 2, 2, 2)
	p := Vec4{X: 1, W: 1}

	// Scale then translate: 2*1 + 1.
	if got := Mat4MulV4(Mat4Mul(tr, sc), p); got.X != 3 {
		t.Fatalf("translate*scale gave x=%v", got.X)
	}
	// Translate then scale: (1 + 1) * 2.
	if got := Mat4MulV4(Mat4Mul(sc, tr), p); got.X != 4 {
		t.Fatalf("scale*translate gave x=%v", got.X)
	}
}

func TestMat4OrthoUnit(t *testing.T) {
	if got := Mat4Ortho(-1, 1, -1, 1, 1, -1); got != Mat4Identity() {
		t.Fatalf("unit ortho with reversed depth should be identity, got %v", got)
	}
	m := Mat4Ortho(0, 4, 0, 2, -1, 1)
	v := Mat4MulV4(m, Vec4{X: 4, Y: 2, Z: 0, W: 1})
	if v.X != 1 || v.Y != 1 || v.W != 1 {
		t.Fatalf("corner maps to %+v", v)
	}
}

func TestMat4Shear(t *testing.T) {
	m := Mat4Shear(3, 7)
	if m.At(1, 0) != 7 || m.At(0, 1) != 3 {
		t.Fatalf("shear parameters misplaced: %v", m)
	}
	for _, rc := range [][2]int{{2, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		if v := m.At(rc[0], rc[1]); v != 1 {
			t.Fatalf("element (%d,%d) = %v, want 1", rc[0], rc[1], v)
		}
	}
}
