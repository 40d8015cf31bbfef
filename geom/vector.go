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

import (
	"github.com/chewxy/math32"
)

// Vec2 is a two dimensional vector. The coordinate convention throughout the
// project is y-down: (0, 0) is the top-left of the screen/canvas and y
// increases towards the bottom.
type Vec2 struct {
	X float32
	Y float32
}

// Vec2Zero is the zero vector.
func Vec2Zero() Vec2 {
	return Vec2{}
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) DistanceTo(w Vec2) float32 {
	return v.Sub(w).Length()
}

// Normalized returns the unit vector in the direction of v. The fallback is
// returned when the length of v is too close to zero for the division to be
// meaningful.
func (v Vec2) Normalized(fallback Vec2) Vec2 {
	l := v.Length()
	if l < 1e-6 {
		return fallback
	}
	return v.Scale(1 / l)
}

// Floored returns the vector with both components rounded towards negative
// infinity. Flooring a world point is what "pixel-snapping" means in this
// project.
func (v Vec2) Floored() Vec2 {
	return Vec2{X: math32.Floor(v.X), Y: math32.Floor(v.Y)}
}

// Rotated returns the vector rotated counterclockwise by the angle given in
// degrees. Note that counterclockwise is in terms of what appears on screen;
// with the y-down convention this is a clockwise rotation in the mathematical
// sense.
func (v Vec2) Rotated(angleDegrees float32) Vec2 {
	if angleDegrees == 0 {
		return v
	}
	r := angleDegrees * (math32.Pi / 180)
	sin := math32.Sin(r)
	cos := math32.Cos(r)
	return Vec2{
		X: v.X*cos + v.Y*sin,
		Y: -v.X*sin + v.Y*cos,
	}
}

// Vec3 is a three dimensional vector.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Vec4 is a four dimensional vector.
type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Clamp limits the value to the range [min, max].
func Clamp(v float32, min float32, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp linearly interpolates between a and b. t=0 yields a, t=1 yields b.
func Lerp(a float32, b float32, t float32) float32 {
	return a + (b-a)*t
}
