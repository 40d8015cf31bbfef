// This file is part of Lantern.
//
// Lantern is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lantern is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lantern.  If not, see <https://www.gnu.org/licenses/>.

package geom_test

import (
	"testing"

	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/test"
)

const epsilon = 1e-4

func TestQuadFromRectRoundTrip(t *testing.T) {
	r := geom.RectFromXYWH(3, 7, 20, 10)
	b := geom.QuadFromRect(r).BoundingRect()

	test.ApproxEquate(t, b.Pos.X, r.Pos.X, epsilon)
	test.ApproxEquate(t, b.Pos.Y, r.Pos.Y, epsilon)
	test.ApproxEquate(t, b.Dim.X, r.Dim.X, epsilon)
	test.ApproxEquate(t, b.Dim.Y, r.Dim.Y, epsilon)
}

func TestRotationDirection(t *testing.T) {
	// counterclockwise on screen: with y pointing down, the point (1, 0)
	// rotated 90 degrees must end up pointing up, at (0, -1)
	v := geom.Vec2{X: 1, Y: 0}.Rotated(90)
	test.ApproxEquate(t, v.X, 0, epsilon)
	test.ApproxEquate(t, v.Y, -1, epsilon)
}

func TestTransformApply(t *testing.T) {
	xf := geom.TransformAt(geom.Vec2{X: 100, Y: 50}).WithScale(2)
	p := xf.Apply(geom.Vec2{X: 3, Y: 4})
	test.ApproxEquate(t, p.X, 106, epsilon)
	test.ApproxEquate(t, p.Y, 58, epsilon)

	// negative scale flips
	xf.Scale = geom.Vec2{X: -1, Y: 1}
	p = xf.Apply(geom.Vec2{X: 3, Y: 4})
	test.ApproxEquate(t, p.X, 97, epsilon)
	test.ApproxEquate(t, p.Y, 54, epsilon)
}

func TestRectIntersection(t *testing.T) {
	a := geom.RectFromXYWH(0, 0, 10, 10)
	b := geom.RectFromXYWH(5, 5, 10, 10)

	test.ExpectedSuccess(t, a.Overlaps(b))

	i := a.Intersection(b)
	test.ApproxEquate(t, i.Pos.X, 5, epsilon)
	test.ApproxEquate(t, i.Pos.Y, 5, epsilon)
	test.ApproxEquate(t, i.Dim.X, 5, epsilon)
	test.ApproxEquate(t, i.Dim.Y, 5, epsilon)

	c := geom.RectFromXYWH(20, 20, 1, 1)
	test.ExpectedFailure(t, a.Overlaps(c))
}

func TestAAQuadFlip(t *testing.T) {
	aa := geom.AAQuad{Left: 0, Top: 0, Right: 1, Bottom: 1}
	fh := aa.FlippedHorizontal()
	test.Equate(t, fh.Left, 1)
	test.Equate(t, fh.Right, 0)

	fv := aa.FlippedVertical()
	test.Equate(t, fv.Top, 1)
	test.Equate(t, fv.Bottom, 0)
}

func TestOrthoDepthPlanes(t *testing.T) {
	m := geom.OrthoPixel(320, 180)

	// vertices carry z = -depth. depth 0 is the cleared/farthest plane and
	// must land on NDC -1; depth 100 on NDC +1
	far := m.MulVec4(geom.Vec4{X: 0, Y: 0, Z: 0, W: 1})
	test.ApproxEquate(t, far.Z, -1, epsilon)

	near := m.MulVec4(geom.Vec4{X: 0, Y: 0, Z: -100, W: 1})
	test.ApproxEquate(t, near.Z, 1, epsilon)

	// top-left corner of the pixel space maps to the top-left of NDC
	tl := m.MulVec4(geom.Vec4{X: 0, Y: 0, Z: 0, W: 1})
	test.ApproxEquate(t, tl.X, -1, epsilon)
	test.ApproxEquate(t, tl.Y, 1, epsilon)

	br := m.MulVec4(geom.Vec4{X: 320, Y: 180, Z: 0, W: 1})
	test.ApproxEquate(t, br.X, 1, epsilon)
	test.ApproxEquate(t, br.Y, -1, epsilon)
}

func TestMatrixIdentityMul(t *testing.T) {
	m := geom.OrthoPixel(320, 180)
	r := geom.Mat4Identity().Mul(m)
	for i := range r {
		test.ApproxEquate(t, r[i], m[i], epsilon)
	}
}

func TestColorPremultiply(t *testing.T) {
	c := geom.RGBA(1, 0, 0, 0.5).Premultiplied()
	test.ApproxEquate(t, c.R, 0.5, epsilon)
	test.ApproxEquate(t, c.A, 0.5, epsilon)
}
