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
	"sort"

	"github.com/lanternengine/lantern/render"
)

// Batch is a contiguous run of indices in the shared buffer that renders
// with one texture into one drawspace.
type Batch struct {
	Space        Space
	TextureIndex int
	Translucent  bool
	IndexStart   int
	IndexCount   int

	// depth range of the drawables in the batch. informational; used by
	// tests and debug overlays
	MinDepth float32
	MaxDepth float32
}

// quad vertices are pushed in the order right-top(0), right-bottom(1),
// left-bottom(2), left-top(3). the index pattern cuts the quad into two
// triangles sharing the left-top to right-bottom diagonal.
var quadIndexPattern = [6]uint32{3, 0, 1, 2, 1, 3}

// buildBatches drains the drawable lists into the shared vertex/index
// buffers and the batch list.
//
// Non-translucent drawables keep their submission order; they depth-test so
// no sorting is needed. Translucent drawables are stable-sorted back to
// front within (space, texture) so that alpha compositing is correct; the
// stable sort makes submission order the tiebreak for equal keys.
//
// A new batch starts whenever (space, texture) changes and at the
// transition from the non-translucent to the translucent regime.
func (st *State) buildBatches() {
	st.vertices = st.vertices[:0]
	st.indices = st.indices[:0]
	st.batches = st.batches[:0]

	sort.SliceStable(st.translucent, func(i, j int) bool {
		a := &st.translucent[i]
		b := &st.translucent[j]
		if a.params.Space != b.params.Space {
			return a.params.Space < b.params.Space
		}
		if a.textureIndex != b.textureIndex {
			return a.textureIndex < b.textureIndex
		}
		return a.params.Depth < b.params.Depth
	})

	for i := range st.opaque {
		st.pushDrawable(&st.opaque[i], false)
	}
	for i := range st.translucent {
		st.pushDrawable(&st.translucent[i], true)
	}

	st.opaque = st.opaque[:0]
	st.translucent = st.translucent[:0]
}

func (st *State) pushDrawable(d *drawable, translucent bool) {
	// start a new batch on any key change
	if len(st.batches) == 0 {
		st.batches = append(st.batches, Batch{
			Space:        d.params.Space,
			TextureIndex: d.textureIndex,
			Translucent:  translucent,
			IndexStart:   len(st.indices),
			MinDepth:     d.params.Depth,
			MaxDepth:     d.params.Depth,
		})
	} else {
		b := &st.batches[len(st.batches)-1]
		if b.Space != d.params.Space || b.TextureIndex != d.textureIndex || b.Translucent != translucent {
			st.batches = append(st.batches, Batch{
				Space:        d.params.Space,
				TextureIndex: d.textureIndex,
				Translucent:  translucent,
				IndexStart:   len(st.indices),
				MinDepth:     d.params.Depth,
				MaxDepth:     d.params.Depth,
			})
		}
	}

	switch d.kind {
	case quadMesh:
		st.pushQuad(d)
	case polygonMesh, lineMesh:
		st.pushMesh(d)
	}

	b := &st.batches[len(st.batches)-1]
	b.IndexCount = len(st.indices) - b.IndexStart
	if d.params.Depth < b.MinDepth {
		b.MinDepth = d.params.Depth
	}
	if d.params.Depth > b.MaxDepth {
		b.MaxDepth = d.params.Depth
	}
}

func (st *State) pushVertex(x, y float32, u, v float32, d *drawable, color *Vertex) {
	r := d.params.Color
	if color != nil {
		r = color.Color
	}
	st.vertices = append(st.vertices,
		x, y, -d.params.Depth,
		u, v,
		r.R, r.G, r.B, r.A,
		d.params.Additivity,
	)
}

func (st *State) pushQuad(d *drawable) {
	base := uint32(len(st.vertices) / render.VertexStride)

	st.pushVertex(d.quad.RightTop.X, d.quad.RightTop.Y, d.uvs.Right, d.uvs.Top, d, nil)
	st.pushVertex(d.quad.RightBottom.X, d.quad.RightBottom.Y, d.uvs.Right, d.uvs.Bottom, d, nil)
	st.pushVertex(d.quad.LeftBottom.X, d.quad.LeftBottom.Y, d.uvs.Left, d.uvs.Bottom, d, nil)
	st.pushVertex(d.quad.LeftTop.X, d.quad.LeftTop.Y, d.uvs.Left, d.uvs.Top, d, nil)

	for _, idx := range quadIndexPattern {
		st.indices = append(st.indices, base+idx)
	}
}

func (st *State) pushMesh(d *drawable) {
	base := uint32(len(st.vertices) / render.VertexStride)

	for i := range d.vertices {
		v := &d.vertices[i]
		if d.kind == lineMesh {
			// line mesh vertices are fully specified, color included
			st.pushVertex(v.Pos.X, v.Pos.Y, v.UV.X, v.UV.Y, d, v)
		} else {
			st.pushVertex(v.Pos.X, v.Pos.Y, v.UV.X, v.UV.Y, d, nil)
		}
	}

	for _, idx := range d.indices {
		st.indices = append(st.indices, base+idx)
	}
}
