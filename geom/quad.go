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

package geom

// AAQuad is an axis aligned quad in UV space. Unlike a Rect the edges are
// stored explicitly which means Left > Right or Top > Bottom are permitted;
// a quad stored that way samples its texture region flipped.
type AAQuad struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// AAQuadFromRect converts a Rect to an AAQuad.
func AAQuadFromRect(r Rect) AAQuad {
	return AAQuad{Left: r.Left(), Top: r.Top(), Right: r.Right(), Bottom: r.Bottom()}
}

// FlippedHorizontal swaps the left and right edges.
func (aa AAQuad) FlippedHorizontal() AAQuad {
	return AAQuad{Left: aa.Right, Top: aa.Top, Right: aa.Left, Bottom: aa.Bottom}
}

// FlippedVertical swaps the top and bottom edges.
func (aa AAQuad) FlippedVertical() AAQuad {
	return AAQuad{Left: aa.Left, Top: aa.Bottom, Right: aa.Right, Bottom: aa.Top}
}

// Center returns the arithmetic center of the quad.
func (aa AAQuad) Center() Vec2 {
	return Vec2{X: (aa.Left + aa.Right) / 2, Y: (aa.Top + aa.Bottom) / 2}
}

// Collapsed returns a zero-area quad at the center point. Used by the
// flat-color debug drawmode to force a single-texel fetch.
func (aa AAQuad) Collapsed() AAQuad {
	c := aa.Center()
	return AAQuad{Left: c.X, Top: c.Y, Right: c.X, Bottom: c.Y}
}

// Quad is four vertex positions in the order right-top, right-bottom,
// left-bottom, left-top.
type Quad struct {
	RightTop    Vec2
	RightBottom Vec2
	LeftBottom  Vec2
	LeftTop     Vec2
}

// QuadFromRect builds an axis aligned quad from the rect corners.
func QuadFromRect(r Rect) Quad {
	return Quad{
		RightTop:    Vec2{X: r.Right(), Y: r.Top()},
		RightBottom: Vec2{X: r.Right(), Y: r.Bottom()},
		LeftBottom:  Vec2{X: r.Left(), Y: r.Bottom()},
		LeftTop:     Vec2{X: r.Left(), Y: r.Top()},
	}
}

// QuadFromRectTransformed places the rect relative to the pivot point and
// applies the transform: corners are offset by -pivot, scaled, rotated and
// translated to the transform position.
func QuadFromRectTransformed(r Rect, pivot Vec2, t Transform) Quad {
	return Quad{
		RightTop:    t.Apply(Vec2{X: r.Right(), Y: r.Top()}.Sub(pivot)),
		RightBottom: t.Apply(Vec2{X: r.Right(), Y: r.Bottom()}.Sub(pivot)),
		LeftBottom:  t.Apply(Vec2{X: r.Left(), Y: r.Bottom()}.Sub(pivot)),
		LeftTop:     t.Apply(Vec2{X: r.Left(), Y: r.Top()}.Sub(pivot)),
	}
}

// BoundingRect returns the tightest axis aligned rect containing all four
// vertices.
func (q Quad) BoundingRect() Rect {
	left := min(q.RightTop.X, q.RightBottom.X, q.LeftBottom.X, q.LeftTop.X)
	right := max(q.RightTop.X, q.RightBottom.X, q.LeftBottom.X, q.LeftTop.X)
	top := min(q.RightTop.Y, q.RightBottom.Y, q.LeftBottom.Y, q.LeftTop.Y)
	bottom := max(q.RightTop.Y, q.RightBottom.Y, q.LeftBottom.Y, q.LeftTop.Y)
	return Rect{
		Pos: Vec2{X: left, Y: top},
		Dim: Vec2{X: right - left, Y: bottom - top},
	}
}
