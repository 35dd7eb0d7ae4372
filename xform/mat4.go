// Package xform holds the viewer's interaction state and composes it into the
// per-frame model-view-projection matrix.
package xform

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]float32

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 { return m[col*4+row] }

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

// Mat4Add is component-wise addition.
func Mat4Add(a, b Mat4) Mat4 {
	var out Mat4
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Mat4ScaleAniso scales the first three columns of a by x, y and z.
func Mat4ScaleAniso(a Mat4, x, y, z float32) Mat4 {
	for row := 0; row < 4; row++ {
		a[0*4+row] *= x
		a[1*4+row] *= y
		a[2*4+row] *= z
	}
	return a
}

func Mat4RotateZ(rad float32) Mat4 {
	c := float32(math.Cos(float64(rad)))
	s := float32(math.Sin(float64(rad)))
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Shear returns the viewer's shear matrix. It is not a linear shear: the
// third row and column are filled with ones.
//
//	col0 = [1, y, 1, 0]
//	col1 = [x, 1, 1, 0]
//	col2 = [1, 1, 1, 0]
//	col3 = [0, 0, 0, 1]
func Mat4Shear(x, y float32) Mat4 {
	return Mat4{
		1, y, 1, 0,
		x, 1, 1, 0,
		1, 1, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Ortho is the OpenGL orthographic projection. Passing zNear > zFar (as
// the viewer does with 1, -1) flips the depth axis, giving the identity for
// the unit cube.
func Mat4Ortho(left, right, bottom, top, zNear, zFar float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(zFar + zNear) / fn, 1,
	}
}
