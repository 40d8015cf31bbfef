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

// Package shaders embeds the GLSL source for the glrender backend.
package shaders

import _ "embed"

//go:embed "default.vert"
var DefaultVertexShader []byte

//go:embed "default.frag"
var DefaultFragShader []byte

//go:embed "blit.vert"
var BlitVertexShader []byte

//go:embed "blit.frag"
var BlitFragShader []byte
