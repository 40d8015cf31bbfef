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

package atlas

import (
	"github.com/lanternengine/lantern/geom"
)

// MaxAttachmentPoints is the number of attachment points a sprite can carry.
const MaxAttachmentPoints = 4

// Sprite is an immutable descriptor of a region in the atlas. Sprites are
// created once at asset load and are read-only thereafter; a hot-reload swaps
// the whole atlas.
//
// The sprite packer trims transparent borders from the source image. The
// trimmed rect position encodes the offset of the surviving pixels relative
// to the untrimmed top-left, so that trimmed sprites still draw where the
// artist placed them.
type Sprite struct {
	Name string

	// index into the atlas page list
	TextureIndex int

	// whether any pixel in the trimmed region has an alpha value other than
	// 0 or 1
	HasTranslucency bool

	// offset of the logical origin (rotation/scale center) relative to the
	// untrimmed top-left
	PivotOffset geom.Vec2

	// optional attachment points, relative to the untrimmed top-left
	AttachmentPoints [MaxAttachmentPoints]geom.Vec2

	// dimensions of the source image before trimming
	UntrimmedDim geom.Vec2

	// the surviving pixels. Pos is the draw offset (see above)
	TrimmedRect geom.Rect

	// UV coordinates of the trimmed rect. an AAQuad rather than a Rect so
	// that a region can be stored pre-flipped
	TrimmedUVs geom.AAQuad
}

// QuadTransformed places the sprite's trimmed rect according to the
// transform. The pivot is compensated for trimming, the transform position
// is pixel-snapped, then the rect is scaled/rotated around the pivot.
//
// Snapping happens here, at the last possible moment before quad
// construction, so that sub-pixel motion does not leak into the vertex
// positions.
func (spr Sprite) QuadTransformed(t geom.Transform) geom.Quad {
	pivot := spr.PivotOffset.Sub(spr.TrimmedRect.Pos)
	rect := geom.Rect{Dim: spr.TrimmedRect.Dim}
	return geom.QuadFromRectTransformed(rect, pivot, t.PixelSnapped())
}

// AttachmentPointTransformed maps one of the sprite's attachment points
// through the same frame change as QuadTransformed. Keeping the pivot
// arithmetic identical in both functions is what makes attached child
// objects track a rotated parent sprite correctly.
func (spr Sprite) AttachmentPointTransformed(index int, t geom.Transform) geom.Vec2 {
	p := spr.AttachmentPoints[index].Sub(spr.PivotOffset)
	return t.PixelSnapped().Apply(p)
}
