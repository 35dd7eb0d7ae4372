package hal

import "ppmview/xform"

// quadVertexes is the textured quad: two triangles covering [-1,1]^2 with
// texture row 0 at the top edge.
var quadVertexes = [6]struct {
	x, y float32
	u, v float32
}{
	{-1, 1, 0, 0},
	{1, 1, 0.99999, 0},

	{-1, -1, 0, 0.99999},
	{1, 1, 0.99999, 0},

	{1, -1, 0.99999, 0.99999},
	{-1, -1, 0, 0.99999},
}

// minClipW keeps the perspective divide away from zero.
const minClipW = 1e-6

type clipVertex struct {
	p    xform.Vec4
	u, v float32
}

// screenVertex is a viewport position in pixels (origin top left) with its
// texture coordinate in [0,1).
type screenVertex struct {
	X, Y float32
	U, V float32
}

type screenTriangle [3]screenVertex

var clipPlanes = [...]func(p xform.Vec4) float32{
	func(p xform.Vec4) float32 { return p.W + p.X },
	func(p xform.Vec4) float32 { return p.W - p.X },
	func(p xform.Vec4) float32 { return p.W + p.Y },
	func(p xform.Vec4) float32 { return p.W - p.Y },
	func(p xform.Vec4) float32 { return p.W + p.Z },
	func(p xform.Vec4) float32 { return p.W - p.Z },
	func(p xform.Vec4) float32 { return p.W - minClipW },
}

// projectQuad transforms the quad by mvp, clips each triangle to the view
// volume and maps the result onto a w x h viewport. The returned slice is
// appended to dst.
func projectQuad(dst []screenTriangle, mvp xform.Mat4, w, h int) []screenTriangle {
	var poly, scratch []clipVertex
	for i := 0; i+2 < len(quadVertexes); i += 3 {
		poly = poly[:0]
		for _, qv := range quadVertexes[i : i+3] {
			p := xform.Mat4MulV4(mvp, xform.Vec4{X: qv.x, Y: qv.y, Z: 0, W: 1})
			poly = append(poly, clipVertex{p: p, u: qv.u, v: qv.v})
		}
		poly, scratch = clipPolygon(poly, scratch)
		if len(poly) < 3 {
			continue
		}
		s0 := toScreen(poly[0], w, h)
		for j := 1; j+1 < len(poly); j++ {
			dst = append(dst, screenTriangle{s0, toScreen(poly[j], w, h), toScreen(poly[j+1], w, h)})
		}
	}
	return dst
}

// clipPolygon clips poly against every plane in turn (Sutherland-Hodgman).
// scratch is reused between passes; both slices are returned for reuse.
func clipPolygon(poly, scratch []clipVertex) ([]clipVertex, []clipVertex) {
	for _, plane := range clipPlanes {
		if len(poly) == 0 {
			break
		}
		out := scratch[:0]
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			da, db := plane(a.p), plane(b.p)
			if da >= 0 {
				out = append(out, a)
			}
			if (da >= 0) != (db >= 0) {
				out = append(out, lerpClip(a, b, da/(da-db)))
			}
		}
		poly, scratch = out, poly
	}
	return poly, scratch
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	mix := func(x, y float32) float32 { return x + (y-x)*t }
	return clipVertex{
		p: xform.Vec4{
			X: mix(a.p.X, b.p.X),
			Y: mix(a.p.Y, b.p.Y),
			Z: mix(a.p.Z, b.p.Z),
			W: mix(a.p.W, b.p.W),
		},
		u: mix(a.u, b.u),
		v: mix(a.v, b.v),
	}
}

func toScreen(c clipVertex, w, h int) screenVertex {
	invW := 1 / c.p.W
	nx := c.p.X * invW
	ny := c.p.Y * invW
	return screenVertex{
		X: (nx*0.5 + 0.5) * float32(w),
		Y: (1 - (ny*0.5 + 0.5)) * float32(h),
		U: c.u,
		V: c.v,
	}
}
