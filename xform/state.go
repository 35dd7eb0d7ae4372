package xform

import "math"

// Per-press increments.
const (
	TranslateStep float32 = 2.0
	ScaleStep     float32 = 1.0
	RotationStep  float32 = math.Pi / 3
	ShearStep     float32 = 2.0
)

// State is the viewer's interaction state. Fields are unbounded.
type State struct {
	ScaleValue    float32
	TranslateX    float32
	TranslateY    float32
	RotationValue float32 // radians
	ShearValue    float32
}

// DefaultState is scale 1, everything else 0.
func DefaultState() State {
	return State{ScaleValue: 1}
}

// Delta is a change to apply to a State.
type Delta struct {
	Scale      float32
	TranslateX float32
	TranslateY float32
	Rotation   float32
	Shear      float32
}

// IsZero reports whether d changes nothing.
func (d Delta) IsZero() bool { return d == Delta{} }

// Apply adds d to s.
func (s *State) Apply(d Delta) {
	s.ScaleValue += d.Scale
	s.TranslateX += d.TranslateX
	s.TranslateY += d.TranslateY
	s.RotationValue += d.Rotation
	s.ShearValue += d.Shear
}
