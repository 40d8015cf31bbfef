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

// Package glrender is the OpenGL 3.2 implementation of the render contract.
// It must be used from the thread that owns the GL context.
package glrender

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/logger"
	"github.com/lanternengine/lantern/render"
	"github.com/lanternengine/lantern/render/glrender/shaders"
)

type texture struct {
	id     uint32
	width  int
	height int
}

type framebuffer struct {
	fbo   uint32
	color uint32
	depth uint32

	width  int
	height int
}

// Renderer is the OpenGL backend. One instance per GL context.
type Renderer struct {
	vaoHandle      uint32
	vboHandle      uint32
	elementsHandle uint32

	textures     map[string]*texture
	framebuffers map[string]*framebuffer

	defaultShader shaderProgram
	blitShader    shaderProgram

	// dimensions of the window-system framebuffer, set by SetWindowSize
	windowWidth  int
	windowHeight int

	numIndices int
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. The GL context must be current on the calling thread.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fault.Errorf("glrender: %w", err)
	}

	rnd := &Renderer{
		textures:     make(map[string]*texture),
		framebuffers: make(map[string]*framebuffer),
	}

	if err := rnd.defaultShader.createProgram("default",
		string(shaders.DefaultVertexShader), string(shaders.DefaultFragShader)); err != nil {
		return nil, err
	}
	if err := rnd.blitShader.createProgram("blit",
		string(shaders.BlitVertexShader), string(shaders.BlitFragShader)); err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &rnd.vaoHandle)
	gl.GenBuffers(1, &rnd.vboHandle)
	gl.GenBuffers(1, &rnd.elementsHandle)

	// log GPU vendor information
	logger.Logf("glrender", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("glrender", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("glrender", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return rnd, nil
}

// Destroy releases all GL resources held by the Renderer.
func (rnd *Renderer) Destroy() {
	if rnd.vboHandle != 0 {
		gl.DeleteBuffers(1, &rnd.vboHandle)
	}
	rnd.vboHandle = 0

	if rnd.elementsHandle != 0 {
		gl.DeleteBuffers(1, &rnd.elementsHandle)
	}
	rnd.elementsHandle = 0

	if rnd.vaoHandle != 0 {
		gl.DeleteVertexArrays(1, &rnd.vaoHandle)
	}
	rnd.vaoHandle = 0

	for _, tex := range rnd.textures {
		gl.DeleteTextures(1, &tex.id)
	}
	clear(rnd.textures)

	for _, fb := range rnd.framebuffers {
		rnd.destroyFramebuffer(fb)
	}
	clear(rnd.framebuffers)

	rnd.defaultShader.destroy()
	rnd.blitShader.destroy()
}

// SetWindowSize tells the Renderer the dimensions of the window-system
// framebuffer. Call whenever the window is resized, before the frame is
// rendered.
func (rnd *Renderer) SetWindowSize(width int, height int) {
	rnd.windowWidth = width
	rnd.windowHeight = height
}

// UpdateTexture implements the render.Renderer interface.
func (rnd *Renderer) UpdateTexture(name string, width int, height int, pixels []uint8) error {
	if len(pixels) < width*height*4 {
		return fault.Errorf("glrender: texture %s: not enough pixel data", name)
	}

	tex, ok := rnd.textures[name]
	if !ok {
		tex = &texture{}
		gl.GenTextures(1, &tex.id)
		rnd.textures[name] = tex
	}
	tex.width = width
	tex.height = height

	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))

	// pixel-art pipeline: nearest neighbour everywhere
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return nil
}

// FreeTexture implements the render.Renderer interface.
func (rnd *Renderer) FreeTexture(name string) {
	tex, ok := rnd.textures[name]
	if !ok {
		return
	}
	gl.DeleteTextures(1, &tex.id)
	delete(rnd.textures, name)
}

// UpdateFramebuffer implements the render.Renderer interface.
func (rnd *Renderer) UpdateFramebuffer(name string, width int, height int) error {
	if width <= 0 || height <= 0 {
		return fault.Errorf("glrender: framebuffer %s: bad dimensions: %dx%d", name, width, height)
	}

	fb, ok := rnd.framebuffers[name]
	if ok {
		if fb.width == width && fb.height == height {
			return nil
		}
		rnd.destroyFramebuffer(fb)
	} else {
		fb = &framebuffer{}
		rnd.framebuffers[name] = fb
	}

	fb.width = width
	fb.height = height

	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	gl.GenTextures(1, &fb.color)
	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color, 0)

	gl.GenRenderbuffers(1, &fb.depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		rnd.destroyFramebuffer(fb)
		delete(rnd.framebuffers, name)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fault.Errorf("glrender: framebuffer %s: incomplete (status %#x)", name, status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return nil
}

// FreeFramebuffer implements the render.Renderer interface.
func (rnd *Renderer) FreeFramebuffer(name string) {
	fb, ok := rnd.framebuffers[name]
	if !ok {
		return
	}
	rnd.destroyFramebuffer(fb)
	delete(rnd.framebuffers, name)
}

func (rnd *Renderer) destroyFramebuffer(fb *framebuffer) {
	gl.DeleteRenderbuffers(1, &fb.depth)
	gl.DeleteTextures(1, &fb.color)
	gl.DeleteFramebuffers(1, &fb.fbo)
	fb.fbo = 0
	fb.color = 0
	fb.depth = 0
}

// UploadGeometry implements the render.Renderer interface.
func (rnd *Renderer) UploadGeometry(vertices []float32, indices []uint32) {
	rnd.numIndices = len(indices)
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}

	gl.BindVertexArray(rnd.vaoHandle)

	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vboHandle)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rnd.elementsHandle)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STREAM_DRAW)
}

// target binds the named framebuffer and returns its height, which is needed
// for the y-flip between the pipeline's y-down coordinates and GL's y-up
// framebuffer coordinates.
func (rnd *Renderer) target(name string) (height int, ok bool) {
	if name == render.DefaultFramebuffer {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(rnd.windowWidth), int32(rnd.windowHeight))
		return rnd.windowHeight, true
	}

	fb, found := rnd.framebuffers[name]
	if !found {
		logger.Logf("glrender", "draw to unknown framebuffer: %s", name)
		return 0, false
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, int32(fb.width), int32(fb.height))
	return fb.height, true
}

// Clear implements the render.Renderer interface. The depth value is in
// window coordinates: zero is the farthest value under the pipeline's GEQUAL
// convention.
func (rnd *Renderer) Clear(framebuffer string, color *geom.Color, depth *float32) {
	if _, ok := rnd.target(framebuffer); !ok {
		return
	}

	var mask uint32
	if color != nil {
		gl.ClearColor(color.R, color.G, color.B, color.A)
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth != nil {
		gl.ClearDepth(float64(*depth))
		gl.DepthMask(true)
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

// Blit implements the render.Renderer interface.
func (rnd *Renderer) Blit(srcFramebuffer string, dstFramebuffer string, src geom.Rect, dst geom.Rect) {
	var srcFBO uint32
	srcH := rnd.windowHeight
	if srcFramebuffer != render.DefaultFramebuffer {
		fb, ok := rnd.framebuffers[srcFramebuffer]
		if !ok {
			logger.Logf("glrender", "blit from unknown framebuffer: %s", srcFramebuffer)
			return
		}
		srcFBO = fb.fbo
		srcH = fb.height
	}

	var dstFBO uint32
	dstH := rnd.windowHeight
	if dstFramebuffer != render.DefaultFramebuffer {
		fb, ok := rnd.framebuffers[dstFramebuffer]
		if !ok {
			logger.Logf("glrender", "blit to unknown framebuffer: %s", dstFramebuffer)
			return
		}
		dstFBO = fb.fbo
		dstH = fb.height
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, srcFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, dstFBO)

	// both rects are y-down from the top. GL framebuffer coordinates are
	// y-up so the vertical extents flip around the framebuffer height
	gl.BlitFramebuffer(
		int32(src.Left()), int32(float32(srcH)-src.Bottom()),
		int32(src.Right()), int32(float32(srcH)-src.Top()),
		int32(dst.Left()), int32(float32(dstH)-dst.Bottom()),
		int32(dst.Right()), int32(float32(dstH)-dst.Top()),
		gl.COLOR_BUFFER_BIT, gl.NEAREST)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Draw implements the render.Renderer interface.
func (rnd *Renderer) Draw(call render.DrawCall) {
	if call.IndexCount == 0 {
		return
	}
	if call.IndexStart+call.IndexCount > rnd.numIndices {
		logger.Logf("glrender", "draw call over-runs index buffer (%d+%d of %d)",
			call.IndexStart, call.IndexCount, rnd.numIndices)
		return
	}

	if _, ok := rnd.target(call.Framebuffer); !ok {
		return
	}

	tex, ok := rnd.textures[call.Texture]
	if !ok {
		logger.Logf("glrender", "draw call with unknown texture: %s", call.Texture)
		return
	}

	// premultiplied alpha blending. opaque batches blend too: a source
	// alpha of one degenerates to plain replacement
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	// non-translucent drawables rely on the depth test for ordering.
	// translucent batches arrive back-to-front and keep writing depth
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.GEQUAL)
	gl.DepthMask(true)

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(rnd.vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vboHandle)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rnd.elementsHandle)

	switch call.Shader {
	case render.ShaderBlit:
		rnd.blitShader.setAttributes(call.Uniforms, tex.id)
	default:
		rnd.defaultShader.setAttributes(call.Uniforms, tex.id)
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(call.IndexCount), gl.UNSIGNED_INT, uintptr(call.IndexStart*4))

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		logger.Logf("glrender", "gl error %#x during draw", glErr)
	}
}
