package xform

// Compose builds the frame matrix from s for a viewport of the given aspect
// ratio (width/height).
//
// The model matrix is the sum, not the product, of identity, scale, shear,
// translate and rotate. The projection is then applied by multiplication.
func Compose(s State, aspect float32) Mat4 {
	m := Mat4Identity()

	scale := Mat4ScaleAniso(Mat4Identity(), s.ScaleValue, s.ScaleValue, s.ScaleValue)
	m = Mat4Add(scale, m)

	shear := Mat4Mul(Mat4Identity(), Mat4Shear(s.ShearValue, s.ShearValue))
	m = Mat4Add(m, shear)

	translate := Mat4Translate(V3(s.TranslateX, s.TranslateY, 0))
	m = Mat4Add(m, translate)

	rotate := Mat4Mul(Mat4Identity(), Mat4RotateZ(s.RotationValue))
	m = Mat4Add(m, rotate)

	p := Mat4Ortho(-aspect, aspect, -1, 1, 1, -1)
	return Mat4Mul(p, m)
}
