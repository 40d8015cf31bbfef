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

// Package render defines the contract between the draw pipeline and a GPU
// backend. The draw package emits plain data - vertex floats, index values,
// uniform blocks and draw descriptors - and a Renderer implementation turns
// them into driver calls. The glrender sub-package is the OpenGL
// implementation; tests use a recording implementation instead.
package render

import (
	"github.com/lanternengine/lantern/geom"
)

// DefaultFramebuffer is the name of the window-system framebuffer.
const DefaultFramebuffer = ""

// Shader identifies one of the built-in shader programs.
type Shader int

const (
	// ShaderDefault is the textured, colored, additivity-blended pipeline
	// with premultiplied-alpha output. Uniforms: Transform and Color.
	ShaderDefault Shader = iota

	// ShaderBlit copies a texture without blending or depth testing.
	// Uniforms: Transform only.
	ShaderBlit
)

// Vertex layout for the default shader, in floats:
//
//	position x, y, z
//	uv u, v
//	color r, g, b, a (premultiplied)
//	additivity
const (
	VertexStride        = 10
	VertexOffsetPos     = 0
	VertexOffsetUV      = 3
	VertexOffsetColor   = 5
	VertexOffsetAdditiv = 9
)

// Uniforms is the per-draw-call uniform block. Plain float vectors so that a
// backend can upload them without interpretation.
type Uniforms struct {
	// 16-float projection/view transform, column-major
	Transform geom.Mat4

	// 4-float global color modulate. only the default shader reads it
	Color [4]float32
}

// WhiteColorUniform is the identity value for the Color uniform.
func WhiteColorUniform() [4]float32 {
	return [4]float32{1, 1, 1, 1}
}

// DrawCall describes one batch execution: a contiguous index range drawn
// with one shader, one texture and one target framebuffer.
type DrawCall struct {
	Shader      Shader
	Uniforms    Uniforms
	Framebuffer string
	Texture     string
	IndexStart  int
	IndexCount  int

	// opaque batches use a GEQUAL depth test with depth write enabled.
	// translucent batches are drawn back-to-front by the batcher; depth
	// write stays enabled for them too
	Opaque bool
}

// Renderer is the GPU backend contract.
//
// Textures and framebuffers have named create-or-update-or-free lifecycles:
// updating a name that does not exist creates the resource, updating an
// existing name replaces its contents, freeing forgets it. Errors from
// Update calls are fatal to the caller; the name of the offending resource
// is carried in the error.
type Renderer interface {
	// UpdateTexture creates or replaces a named RGBA texture. Sampling is
	// always nearest-neighbor; this is a pixel-art pipeline.
	UpdateTexture(name string, width int, height int, pixels []uint8) error

	// FreeTexture releases a named texture. Unknown names are ignored.
	FreeTexture(name string)

	// UpdateFramebuffer creates or resizes a named framebuffer with a color
	// and depth attachment.
	UpdateFramebuffer(name string, width int, height int) error

	// FreeFramebuffer releases a named framebuffer. Unknown names are
	// ignored.
	FreeFramebuffer(name string)

	// UploadGeometry replaces the shared vertex and index buffers for the
	// current frame.
	UploadGeometry(vertices []float32, indices []uint32)

	// Clear fills the named framebuffer. A nil color or depth leaves that
	// buffer untouched.
	Clear(framebuffer string, color *geom.Color, depth *float32)

	// Blit copies a rect from one framebuffer to another. Nearest sampled,
	// no blending, no depth test.
	Blit(srcFramebuffer string, dstFramebuffer string, src geom.Rect, dst geom.Rect)

	// Draw executes one draw call against the geometry last uploaded with
	// UploadGeometry.
	Draw(call DrawCall)
}
