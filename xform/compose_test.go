package xform

import (
	"math"
	"testing"
)

func near(a, b Mat4) bool {
	const tol = 1e-5
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func TestComposeDefaultsGolden(t *testing.T) {
	want := Mat4{
		5, 0, 1, 0,
		0, 5, 1, 0,
		1, 1, 5, 0,
		0, 0, 0, 5,
	}
	got := Compose(DefaultState(), 1)
	if got != want {
		t.Fatalf("default frame matrix mismatch:\nhave %v\nwant %v", got, want)
	}
	if again := Compose(DefaultState(), 1); again != got {
		t.Fatalf("Compose is not deterministic")
	}
}

func TestComposeAspect(t *testing.T) {
	want := Mat4{
		2.5, 0, 1, 0,
		0, 5, 1, 0,
		0.5, 1, 5, 0,
		0, 0, 0, 5,
	}
	if got := Compose(DefaultState(), 2); !near(got, want) {
		t.Fatalf("aspect 2 mismatch:\nhave %v\nwant %v", got, want)
	}
}

func TestComposeTranslate(t *testing.T) {
	s := DefaultState()
	s.TranslateX = -2
	s.TranslateY = 4
	got := Compose(s, 1)
	if got.At(0, 3) != -2 || got.At(1, 3) != 4 {
		t.Fatalf("translation column = %v", got[12:16])
	}
	base := Compose(DefaultState(), 1)
	for i := 0; i < 12; i++ {
		if got[i] != base[i] {
			t.Fatalf("element %d changed: %v != %v", i, got[i], base[i])
		}
	}
}

func TestComposeShear(t *testing.T) {
	s := DefaultState()
	s.ShearValue = 2
	want := Mat4{
		5, 2, 1, 0,
		2, 5, 1, 0,
		1, 1, 5, 0,
		0, 0, 0, 5,
	}
	if got := Compose(s, 1); got != want {
		t.Fatalf("shear mismatch:\nhave %v\nwant %v", got, want)
	}
}

func TestComposeRotate(t *testing.T) {
	s := DefaultState()
	s.RotationValue = math.Pi / 2
	want := Mat4{
		4, 1, 1, 0,
		-1, 4, 1, 0,
		1, 1, 5, 0,
		0, 0, 0, 5,
	}
	if got := Compose(s, 1); !near(got, want) {
		t.Fatalf("rotate mismatch:\nhave %v\nwant %v", got, want)
	}
}

func TestComposeScaleUnclamped(t *testing.T) {
	s := DefaultState()
	s.ScaleValue = -1000
	got := Compose(s, 1)
	if got.At(0, 0) != -996 || got.At(1, 1) != -996 || got.At(2, 2) != -996 || got.At(3, 3) != 5 {
		t.Fatalf("diagonal = %v %v %v %v", got.At(0, 0), got.At(1, 1), got.At(2, 2), got.At(3, 3))
	}
}

func TestComposeZeroAspect(t *testing.T) {
	got := Compose(DefaultState(), 0)
	for i, v := range got {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("element %d is %v", i, v)
		}
	}
}

func TestStateApply(t *testing.T) {
	s := DefaultState()
	s.Apply(Delta{Scale: ScaleStep})
	s.Apply(Delta{TranslateY: -TranslateStep, Shear: ShearStep})
	want := State{ScaleValue: 2, TranslateY: -2, ShearValue: 2}
	if s != want {
		t.Fatalf("state = %+v, want %+v", s, want)
	}
	if !(Delta{}).IsZero() || (Delta{Rotation: RotationStep}).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
