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

// Color is four float components in [0, 1]. All blending in the pipeline is
// premultiplied alpha: a fully transparent pixel is (0,0,0,0), a
// half-transparent red is (0.5,0,0,0.5). Non-premultiplied colors must go
// through Premultiplied() before being handed to the draw API.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	ColorWhite       = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack       = Color{R: 0, G: 0, B: 0, A: 1}
	ColorTransparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from non-premultiplied components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Premultiplied multiplies the color channels by the alpha channel.
func (c Color) Premultiplied() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Mul multiplies two colors component-wise.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// WithAlpha scales all components by a. For premultiplied colors scaling
// every channel is the correct way to fade.
func (c Color) WithAlpha(a float32) Color {
	return Color{R: c.R * a, G: c.G * a, B: c.B * a, A: c.A * a}
}

// FromBytes converts 8-bit channel values to a Color.
func FromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}
