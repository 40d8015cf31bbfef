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

// Transform describes where and how a shape is placed: position, scale and a
// rotation angle in degrees, counterclockwise as seen on screen. Negative
// scale components flip the shape on that axis.
type Transform struct {
	Pos   Vec2
	Scale Vec2
	Angle float32
}

// TransformAt returns an unrotated, unscaled transform at the given position.
func TransformAt(pos Vec2) Transform {
	return Transform{Pos: pos, Scale: Vec2{X: 1, Y: 1}}
}

// WithScale returns a copy of the transform with a uniform scale.
func (t Transform) WithScale(s float32) Transform {
	t.Scale = Vec2{X: s, Y: s}
	return t
}

// WithAngle returns a copy of the transform with the given angle in degrees.
func (t Transform) WithAngle(angleDegrees float32) Transform {
	t.Angle = angleDegrees
	return t
}

// PixelSnapped returns a copy of the transform with the position floored to
// the pixel grid. Snapping must happen at the last possible moment, just
// before vertex construction, so that sub-pixel motion never leaks into
// vertex positions.
func (t Transform) PixelSnapped() Transform {
	t.Pos = t.Pos.Floored()
	return t
}

// Apply maps a pivot-relative point into the transform's target space: the
// point is scaled, rotated and then translated by the transform position.
func (t Transform) Apply(p Vec2) Vec2 {
	return t.Pos.Add(p.Mul(t.Scale).Rotated(t.Angle))
}
