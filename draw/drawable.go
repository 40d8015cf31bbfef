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
	"github.com/lanternengine/lantern/geom"
)

// Space selects which projection a drawable is rendered with and which
// framebuffer it lands in.
type Space int

const (
	// SpaceWorld is projected by the world camera and drawn into the canvas
	// (or the screen when no canvas is configured).
	SpaceWorld Space = iota

	// SpaceCanvas is projected by the canvas-pixel matrix and drawn into
	// the canvas.
	SpaceCanvas

	// SpaceScreen is projected by the screen-pixel matrix and drawn
	// directly into the default framebuffer after the canvas blit. Screen
	// drawables are immune to letterboxing.
	SpaceScreen
)

func (s Space) String() string {
	switch s {
	case SpaceWorld:
		return "world"
	case SpaceCanvas:
		return "canvas"
	case SpaceScreen:
		return "screen"
	}
	return "unknown"
}

// depth limits for Params.Depth. 0 is the cleared/farthest value, larger is
// nearer.
const (
	DepthMin float32 = 0
	DepthMax float32 = 100
)

// Params are the drawing parameters shared by every draw operation.
type Params struct {
	// [DepthMin, DepthMax]. paper-stack ordering, higher is nearer
	Depth float32

	// premultiplied color modulate
	Color geom.Color

	// [0, 1]. 0 is normal alpha compositing, 1 is fully additive
	Additivity float32

	Space Space
}

// DefaultParams draws opaque white at depth 0 in world space.
func DefaultParams() Params {
	return Params{Color: geom.ColorWhite}
}

// Vertex is one fully-specified mesh vertex. Position is in drawspace units;
// depth and additivity come from the drawable's Params at transcription
// time.
type Vertex struct {
	Pos   geom.Vec2
	UV    geom.Vec2
	Color geom.Color
}

type meshKind int

const (
	quadMesh meshKind = iota
	polygonMesh
	lineMesh
)

// drawable is the transient per-frame record of one draw call. Drawables are
// owned by the draw State and drained into batches by FinishFrame.
type drawable struct {
	textureIndex      int
	uvHasTranslucency bool
	params            Params

	kind meshKind

	// quadMesh
	quad geom.Quad
	uvs  geom.AAQuad

	// polygonMesh and lineMesh. polygon vertices take their color from
	// params at transcription; line vertices are fully specified
	vertices []Vertex
	indices  []uint32
}

// isTranslucent decides which regime the drawable renders in. A drawable is
// translucent iff its uv region carries translucency, or its modulate alpha
// is less than one, or it has any additivity.
func (d *drawable) isTranslucent() bool {
	return d.uvHasTranslucency || d.params.Color.A < 1 || d.params.Additivity != 0
}
