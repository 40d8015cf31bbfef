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

// Default world depth planes. The znear plane maps to window depth 0 and the
// zfar plane to window depth 1. Combined with a GEQUAL depth test and a clear
// value of 0 this gives paper-stack ordering: larger depth values are nearer.
const (
	DefaultWorldZNear float32 = 0.0
	DefaultWorldZFar  float32 = -100.0
)

// Mat4 is a 4x4 matrix in column-major order, matching the memory layout
// expected by the GPU backend for uniform upload.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec4 transforms the vector v by the matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Ortho builds an orthographic projection for the y-down pixel coordinate
// convention. The rectangle (left, top)-(right, bottom) maps to the full
// viewport with (left, top) at the top-left of the screen.
//
// znear and zfar are world-space z coordinates of the depth planes; znear
// maps to NDC -1 (window depth 0, the cleared/farthest value) and zfar to
// NDC +1 (window depth 1, nearest). Vertices carry z = -depth so that with
// the default planes a depth of 100 lands on the zfar plane.
func Ortho(left, right, top, bottom, znear, zfar float32) Mat4 {
	w := right - left
	h := bottom - top
	d := zfar - znear
	return Mat4{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, 2 / d, 0,
		-(right + left) / w, (bottom + top) / h, -2*znear/d - 1, 1,
	}
}

// OrthoPixel is the projection used for the canvas and screen drawspaces:
// one unit is one pixel, origin at the top-left, default depth planes.
func OrthoPixel(width, height float32) Mat4 {
	return Ortho(0, width, 0, height, DefaultWorldZNear, DefaultWorldZFar)
}

// OrthoWorld is the projection used for the world drawspace. The camera
// position gives the world coordinate of the top-left of the view.
func OrthoWorld(cameraPos Vec2, viewWidth, viewHeight float32) Mat4 {
	return Ortho(cameraPos.X, cameraPos.X+viewWidth, cameraPos.Y, cameraPos.Y+viewHeight,
		DefaultWorldZNear, DefaultWorldZFar)
}
