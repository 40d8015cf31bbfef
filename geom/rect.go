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

// Rect is an axis aligned rectangle. Pos is the top-left corner under the
// y-down convention.
type Rect struct {
	Pos Vec2
	Dim Vec2
}

// RectFromXYWH is a convenience constructor for a Rect.
func RectFromXYWH(x, y, w, h float32) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Dim: Vec2{X: w, Y: h}}
}

func (r Rect) Left() float32 {
	return r.Pos.X
}

func (r Rect) Top() float32 {
	return r.Pos.Y
}

func (r Rect) Right() float32 {
	return r.Pos.X + r.Dim.X
}

func (r Rect) Bottom() float32 {
	return r.Pos.Y + r.Dim.Y
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.Pos.X + r.Dim.X/2, Y: r.Pos.Y + r.Dim.Y/2}
}

// Translated returns the rect moved by the given offset.
func (r Rect) Translated(offset Vec2) Rect {
	return Rect{Pos: r.Pos.Add(offset), Dim: r.Dim}
}

// Scaled returns the rect with position and dimensions multiplied by s.
func (r Rect) Scaled(s float32) Rect {
	return Rect{Pos: r.Pos.Scale(s), Dim: r.Dim.Scale(s)}
}

// ContainsPoint tests whether the point is inside the rect. The right and
// bottom edges are exclusive.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// ContainsRect tests whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Overlaps tests whether the two rects share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Intersection returns the overlapping area of the two rects. The result has
// zero or negative dimensions if the rects do not overlap; check Overlaps()
// first if that matters.
func (r Rect) Intersection(o Rect) Rect {
	left := max(r.Left(), o.Left())
	top := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	return Rect{
		Pos: Vec2{X: left, Y: top},
		Dim: Vec2{X: right - left, Y: bottom - top},
	}
}
