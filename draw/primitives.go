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

package draw

import (
	"github.com/chewxy/math32"
	"github.com/lanternengine/lantern/geom"
)

// circle segment count limits. the formula below keeps the visible pixel
// error under half a pixel; see "A Fast Bresenham Type Algorithm For
// Drawing Circles" (Kennedy)
const (
	circleSegmentsMin = 4
	circleSegmentsMax = 128
)

func circleSegments(radius float32) int {
	q := 1 - 0.5/radius
	segments := int(math32.Ceil(2 * math32.Pi / math32.Acos(2*q*q-1)))
	if segments < circleSegmentsMin {
		segments = circleSegmentsMin
	}
	if segments > circleSegmentsMax {
		segments = circleSegmentsMax
	}
	if segments%2 == 1 {
		segments++
	}
	return segments
}

// drawUntexturedQuad pushes a quad sampling the atlas's white pixel so that
// solid primitives run through the same shader as sprites.
func (st *State) drawUntexturedQuad(quad geom.Quad, p Params) {
	st.DrawQuad(quad, st.atl.UntexturedUV(), false, st.atl.UntexturedTextureIndex(), p)
}

// DrawPixel plots exactly one pixel at floor(pos).
func (st *State) DrawPixel(pos geom.Vec2, p Params) {
	f := pos.Floored()
	st.drawUntexturedQuad(geom.QuadFromRect(geom.Rect{Pos: f, Dim: geom.Vec2{X: 1, Y: 1}}), p)
}

// DrawRect draws an axis aligned rect. Filled rects are a single quad.
// Outlines are pixel-snapped and drawn as four line segments, each stopping
// one pixel short, so adjacent rect outlines tile without overlap or gap.
func (st *State) DrawRect(rect geom.Rect, filled bool, p Params) {
	if filled {
		st.drawUntexturedQuad(geom.QuadFromRect(rect), p)
		return
	}

	pos := rect.Pos.Floored()
	w := math32.Floor(rect.Dim.X)
	h := math32.Floor(rect.Dim.Y)
	if w < 1 || h < 1 {
		return
	}

	lt := pos
	rt := geom.Vec2{X: pos.X + w - 1, Y: pos.Y}
	rb := geom.Vec2{X: pos.X + w - 1, Y: pos.Y + h - 1}
	lb := geom.Vec2{X: pos.X, Y: pos.Y + h - 1}

	st.DrawLineBresenham(lt, rt, true, p)
	st.DrawLineBresenham(rt, rb, true, p)
	st.DrawLineBresenham(rb, lb, true, p)
	st.DrawLineBresenham(lb, lt, true, p)
}

// DrawRectTransformed draws a rect of the given dimensions under a
// transform. With centered the pivot is the rect center, otherwise the
// supplied pivot is used.
func (st *State) DrawRectTransformed(dim geom.Vec2, filled bool, centered bool, pivot geom.Vec2, t geom.Transform, p Params) {
	if centered {
		pivot = dim.Scale(0.5)
	}

	quad := geom.QuadFromRectTransformed(geom.Rect{Dim: dim}, pivot, t)
	if filled {
		st.drawUntexturedQuad(quad, p)
		return
	}

	st.DrawLineBresenham(quad.LeftTop, quad.RightTop, true, p)
	st.DrawLineBresenham(quad.RightTop, quad.RightBottom, true, p)
	st.DrawLineBresenham(quad.RightBottom, quad.LeftBottom, true, p)
	st.DrawLineBresenham(quad.LeftBottom, quad.LeftTop, true, p)
}

// DrawCircleFilled draws a fan-triangulated filled circle. The segment
// count follows the radius so that the polygonisation error stays below
// half a pixel. A radius below half a pixel degenerates to a single pixel.
func (st *State) DrawCircleFilled(center geom.Vec2, radius float32, p Params) {
	if radius < 0.5 {
		st.DrawPixel(center, p)
		return
	}

	segments := circleSegments(radius)
	uv := st.atl.UntexturedUV().Center()

	vertices := make([]Vertex, 0, segments+1)
	vertices = append(vertices, Vertex{Pos: center, UV: uv})
	for i := 0; i < segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		vertices = append(vertices, Vertex{
			Pos: geom.Vec2{
				X: center.X + radius*math32.Cos(angle),
				Y: center.Y + radius*math32.Sin(angle),
			},
			UV: uv,
		})
	}

	indices := make([]uint32, 0, segments*3)
	for i := 0; i < segments; i++ {
		next := uint32(i+1)%uint32(segments) + 1
		indices = append(indices, 0, uint32(i)+1, next)
	}

	st.DrawPolygon(vertices, indices, false, st.atl.UntexturedTextureIndex(), p)
}

// DrawRing draws a circle outline of the given thickness as a strip of
// quads between the inner radius r-t/2 and the outer radius r+t/2.
func (st *State) DrawRing(center geom.Vec2, radius float32, thickness float32, p Params) {
	segments := circleSegments(radius)
	uv := st.atl.UntexturedUV().Center()

	inner := radius - thickness/2
	outer := radius + thickness/2
	if inner < 0 {
		inner = 0
	}

	vertices := make([]Vertex, 0, segments*2)
	for i := 0; i < segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		dir := geom.Vec2{X: math32.Cos(angle), Y: math32.Sin(angle)}
		vertices = append(vertices,
			Vertex{Pos: center.Add(dir.Scale(inner)), UV: uv},
			Vertex{Pos: center.Add(dir.Scale(outer)), UV: uv},
		)
	}

	indices := make([]uint32, 0, segments*6)
	for i := 0; i < segments; i++ {
		i0 := uint32(i * 2)
		i1 := i0 + 1
		j0 := uint32(((i + 1) % segments) * 2)
		j1 := j0 + 1
		indices = append(indices, i0, i1, j1, i0, j1, j0)
	}

	st.DrawPolygon(vertices, indices, false, st.atl.UntexturedTextureIndex(), p)
}

// DrawCircleBresenham plots an integer midpoint circle. Each octant step
// plots up to eight symmetric pixels; duplicates on the diagonals and axes
// are skipped so that translucent circles do not double-blend.
func (st *State) DrawCircleBresenham(center geom.Vec2, radius float32, p Params) {
	c := center.Floored()
	cx := int(c.X)
	cy := int(c.Y)
	r := int(radius)
	if r <= 0 {
		st.DrawPixel(center, p)
		return
	}

	var pixels []geom.Vec2
	plot := func(x, y int) {
		pixels = append(pixels, geom.Vec2{X: float32(x), Y: float32(y)})
	}

	x := r
	y := 0
	d := 1 - r

	for x >= y {
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		if y != 0 {
			plot(cx+x, cy-y)
			plot(cx-x, cy-y)
		}
		if x != y {
			plot(cx+y, cy+x)
			plot(cx+y, cy-x)
			if y != 0 {
				plot(cx-y, cy+x)
				plot(cx-y, cy-x)
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}

	st.drawPixelRun(pixels, p)
}

// DrawLineBresenham plots an integer line from start to end. With skipLast
// the final pixel is left unplotted, which avoids double-blending where
// translucent line strips meet.
func (st *State) DrawLineBresenham(start geom.Vec2, end geom.Vec2, skipLast bool, p Params) {
	s := start.Floored()
	e := end.Floored()
	x0 := int(s.X)
	y0 := int(s.Y)
	x1 := int(e.X)
	y1 := int(e.Y)

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	var pixels []geom.Vec2
	for {
		last := x0 == x1 && y0 == y1
		if !last || !skipLast {
			pixels = append(pixels, geom.Vec2{X: float32(x0), Y: float32(y0)})
		}
		if last {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}

	st.drawPixelRun(pixels, p)
}

// drawPixelRun submits a set of single pixels as one mesh drawable.
func (st *State) drawPixelRun(pixels []geom.Vec2, p Params) {
	if len(pixels) == 0 {
		return
	}

	uv := st.atl.UntexturedUV().Center()
	vertices := make([]Vertex, 0, len(pixels)*4)
	indices := make([]uint32, 0, len(pixels)*6)

	for _, px := range pixels {
		base := uint32(len(vertices))
		vertices = append(vertices,
			Vertex{Pos: geom.Vec2{X: px.X + 1, Y: px.Y}, UV: uv},
			Vertex{Pos: geom.Vec2{X: px.X + 1, Y: px.Y + 1}, UV: uv},
			Vertex{Pos: geom.Vec2{X: px.X, Y: px.Y + 1}, UV: uv},
			Vertex{Pos: geom.Vec2{X: px.X, Y: px.Y}, UV: uv},
		)
		for _, idx := range quadIndexPattern {
			indices = append(indices, base+idx)
		}
	}

	st.DrawPolygon(vertices, indices, false, st.atl.UntexturedTextureIndex(), p)
}

// DrawLineWithThickness draws a thick line as two quads meeting at the
// medial line. With smoothEdges the outer vertices take a transparent
// color, producing a one-quad anti-aliased feather on each side.
func (st *State) DrawLineWithThickness(start geom.Vec2, end geom.Vec2, thickness float32, smoothEdges bool, p Params) {
	dir := end.Sub(start).Normalized(geom.Vec2{X: 1, Y: 0})
	normal := geom.Vec2{X: -dir.Y, Y: dir.X}.Scale(thickness / 2)

	uv := st.atl.UntexturedUV().Center()
	outerColor := p.Color
	if smoothEdges {
		outerColor = geom.ColorTransparent
	}

	vertices := []Vertex{
		{Pos: start.Add(normal), UV: uv, Color: outerColor},
		{Pos: end.Add(normal), UV: uv, Color: outerColor},
		{Pos: start, UV: uv, Color: p.Color},
		{Pos: end, UV: uv, Color: p.Color},
		{Pos: start.Sub(normal), UV: uv, Color: outerColor},
		{Pos: end.Sub(normal), UV: uv, Color: outerColor},
	}

	indices := []uint32{
		0, 1, 3, 0, 3, 2,
		2, 3, 5, 2, 5, 4,
	}

	if smoothEdges {
		// feathered edges blend; force the translucent regime regardless
		// of the params alpha
		st.drawLineMeshInternal(vertices, indices, true, st.atl.UntexturedTextureIndex(), p)
		return
	}
	st.drawLineMeshInternal(vertices, indices, false, st.atl.UntexturedTextureIndex(), p)
}
