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

// Package draw is the retained-batch 2D pipeline. Game code calls the draw
// API during the frame; each call appends a transient drawable. FinishFrame
// sorts the drawables into texture batches, pushes them through the render
// contract and drains the lists for the next frame.
package draw

import (
	"fmt"

	"github.com/lanternengine/lantern/atlas"
	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/render"
)

// CanvasFramebuffer is the name of the fixed-resolution offscreen target.
const CanvasFramebuffer = "canvas"

// Spec is the constructor specification for the draw State.
type Spec struct {
	// dimensions of the fixed-resolution canvas. zero for no canvas, in
	// which case all drawspaces render directly to the screen
	CanvasWidth  int
	CanvasHeight int

	// color of the canvas background each frame
	CanvasClearColor geom.Color

	// color of the letterbox/pillarbox bars around the canvas blit
	LetterboxColor geom.Color
}

// State owns the per-frame drawable lists and everything needed to turn
// them into render contract calls. One State per game; it is not safe for
// concurrent use.
type State struct {
	atl *atlas.Atlas

	spec      Spec
	hasCanvas bool

	screenW int
	screenH int

	// world camera. the position is the world coordinate of the canvas
	// top-left; it is pixel-snapped when the projection is built
	CameraPos geom.Vec2

	// collapse all UVs to their center, eliding texture detail while
	// preserving color modulation. useful for visualizing draw order
	DebugFlatColor bool

	// drawables are split by regime at submission time. buffers are reused
	// across frames to avoid steady-state allocation
	opaque      []drawable
	translucent []drawable

	vertices []float32
	indices  []uint32
	batches  []Batch

	// interned texture names for the atlas pages, refreshed on SetAtlas
	textureNames  []string
	atlasUploaded bool

	canvasUploadedW int
	canvasUploadedH int
}

// NewState is the preferred method of initialisation for the State type.
func NewState(atl *atlas.Atlas, spec Spec) (*State, error) {
	if atl == nil {
		return nil, fault.Errorf("draw: no atlas")
	}
	if (spec.CanvasWidth == 0) != (spec.CanvasHeight == 0) || spec.CanvasWidth < 0 || spec.CanvasHeight < 0 {
		return nil, fault.Errorf("draw: bad canvas dimensions: %dx%d", spec.CanvasWidth, spec.CanvasHeight)
	}

	st := &State{
		spec:      spec,
		hasCanvas: spec.CanvasWidth > 0,
	}
	st.setAtlas(atl)

	return st, nil
}

// Atlas returns the atlas the state draws from.
func (st *State) Atlas() *atlas.Atlas {
	return st.atl
}

// SetAtlas swaps in a new atlas. Used by hot-reload; all sprite and texture
// indices held by the caller are invalidated.
func (st *State) SetAtlas(atl *atlas.Atlas) {
	st.setAtlas(atl)
}

func (st *State) setAtlas(atl *atlas.Atlas) {
	st.atl = atl
	st.atlasUploaded = false
	st.textureNames = st.textureNames[:0]
	for i := range atl.Pages {
		st.textureNames = append(st.textureNames, fmt.Sprintf("atlas/%d", i))
	}
}

// checkParams panics on out-of-contract drawing parameters. Violations are
// programmer errors, not recoverable conditions.
func checkParams(p Params) {
	if p.Depth < DepthMin || p.Depth > DepthMax {
		panic(fmt.Sprintf("draw: depth out of range: %f", p.Depth))
	}
	if p.Additivity < 0 || p.Additivity > 1 {
		panic(fmt.Sprintf("draw: additivity out of range: %f", p.Additivity))
	}
}

// DrawQuad is the funnel every drawing operation goes through: one textured
// quad with explicit UVs. Untextured primitives pass the atlas's
// single-texel white UV so that solid geometry uses the same shader as
// sprites.
func (st *State) DrawQuad(quad geom.Quad, uvs geom.AAQuad, uvHasTranslucency bool, textureIndex int, p Params) {
	checkParams(p)

	if st.DebugFlatColor {
		uvs = uvs.Collapsed()
	}

	d := drawable{
		textureIndex:      textureIndex,
		uvHasTranslucency: uvHasTranslucency,
		params:            p,
		kind:              quadMesh,
		quad:              quad,
		uvs:               uvs,
	}

	st.submit(d)
}

// DrawPolygon submits a triangulated polygon. Indices are relative to the
// supplied vertex slice. Vertex colors are ignored; the params color
// applies to the whole polygon.
func (st *State) DrawPolygon(vertices []Vertex, indices []uint32, uvHasTranslucency bool, textureIndex int, p Params) {
	checkParams(p)

	d := drawable{
		textureIndex:      textureIndex,
		uvHasTranslucency: uvHasTranslucency,
		params:            p,
		kind:              polygonMesh,
		vertices:          vertices,
		indices:           indices,
	}

	st.submit(d)
}

// drawLineMeshInternal submits fully-specified vertices, color included.
func (st *State) drawLineMeshInternal(vertices []Vertex, indices []uint32, uvHasTranslucency bool, textureIndex int, p Params) {
	checkParams(p)

	d := drawable{
		textureIndex:      textureIndex,
		uvHasTranslucency: uvHasTranslucency,
		params:            p,
		kind:              lineMesh,
		vertices:          vertices,
		indices:           indices,
	}

	st.submit(d)
}

func (st *State) submit(d drawable) {
	if d.isTranslucent() {
		st.translucent = append(st.translucent, d)
	} else {
		st.opaque = append(st.opaque, d)
	}
}

// NumPendingDrawables returns how many drawables have been submitted since
// the last FinishFrame.
func (st *State) NumPendingDrawables() int {
	return len(st.opaque) + len(st.translucent)
}

// Batches returns the batch list built by the last FinishFrame. Valid until
// the next draw call.
func (st *State) Batches() []Batch {
	return st.batches
}

// FinishFrame drains the frame's drawables through the renderer. screenW
// and screenH are the current dimensions of the default framebuffer.
func (st *State) FinishFrame(rnd render.Renderer, screenW int, screenH int) error {
	st.screenW = screenW
	st.screenH = screenH

	if !st.atlasUploaded {
		for i, page := range st.atl.Pages {
			sz := page.Bounds().Dx()
			if err := rnd.UpdateTexture(st.textureNames[i], sz, sz, page.Pix); err != nil {
				return fault.Errorf("draw: %w", err)
			}
		}
		st.atlasUploaded = true
	}

	if st.hasCanvas && (st.canvasUploadedW != st.spec.CanvasWidth || st.canvasUploadedH != st.spec.CanvasHeight) {
		if err := rnd.UpdateFramebuffer(CanvasFramebuffer, st.spec.CanvasWidth, st.spec.CanvasHeight); err != nil {
			return fault.Errorf("draw: %w", err)
		}
		st.canvasUploadedW = st.spec.CanvasWidth
		st.canvasUploadedH = st.spec.CanvasHeight
	}

	st.buildBatches()
	rnd.UploadGeometry(st.vertices, st.indices)

	clearDepth := DepthMin

	if st.hasCanvas {
		rnd.Clear(CanvasFramebuffer, &st.spec.CanvasClearColor, &clearDepth)
		st.drawSpace(rnd, SpaceWorld, CanvasFramebuffer, st.worldProjection())
		st.drawSpace(rnd, SpaceCanvas, CanvasFramebuffer, st.canvasProjection())

		rnd.Clear(render.DefaultFramebuffer, &st.spec.LetterboxColor, &clearDepth)
		rnd.Blit(CanvasFramebuffer, render.DefaultFramebuffer,
			geom.RectFromXYWH(0, 0, float32(st.spec.CanvasWidth), float32(st.spec.CanvasHeight)),
			st.BlitRect())
		st.drawSpace(rnd, SpaceScreen, render.DefaultFramebuffer, st.screenProjection())
	} else {
		rnd.Clear(render.DefaultFramebuffer, &st.spec.LetterboxColor, &clearDepth)
		st.drawSpace(rnd, SpaceWorld, render.DefaultFramebuffer, st.worldProjection())
		st.drawSpace(rnd, SpaceCanvas, render.DefaultFramebuffer, st.screenProjection())
		st.drawSpace(rnd, SpaceScreen, render.DefaultFramebuffer, st.screenProjection())
	}

	return nil
}

func (st *State) drawSpace(rnd render.Renderer, space Space, framebuffer string, proj geom.Mat4) {
	for i := range st.batches {
		b := &st.batches[i]
		if b.Space != space {
			continue
		}
		rnd.Draw(render.DrawCall{
			Shader: render.ShaderDefault,
			Uniforms: render.Uniforms{
				Transform: proj,
				Color:     render.WhiteColorUniform(),
			},
			Framebuffer: framebuffer,
			Texture:     st.textureNames[b.TextureIndex],
			IndexStart:  b.IndexStart,
			IndexCount:  b.IndexCount,
			Opaque:      !b.Translucent,
		})
	}
}

func (st *State) viewDim() (float32, float32) {
	if st.hasCanvas {
		return float32(st.spec.CanvasWidth), float32(st.spec.CanvasHeight)
	}
	return float32(st.screenW), float32(st.screenH)
}

func (st *State) worldProjection() geom.Mat4 {
	w, h := st.viewDim()
	return geom.OrthoWorld(st.CameraPos.Floored(), w, h)
}

func (st *State) canvasProjection() geom.Mat4 {
	return geom.OrthoPixel(float32(st.spec.CanvasWidth), float32(st.spec.CanvasHeight))
}

func (st *State) screenProjection() geom.Mat4 {
	return geom.OrthoPixel(float32(st.screenW), float32(st.screenH))
}
