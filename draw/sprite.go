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
	"fmt"

	"github.com/lanternengine/lantern/atlas"
	"github.com/lanternengine/lantern/geom"
)

// DrawSprite draws a sprite under the given transform. Flipping swaps the
// UV edges rather than negating the transform scale, so the sprite stays in
// place when mirrored.
func (st *State) DrawSprite(spr atlas.Sprite, t geom.Transform, flipHorizontal bool, flipVertical bool, p Params) {
	quad := spr.QuadTransformed(t)

	uvs := spr.TrimmedUVs
	if flipHorizontal {
		uvs = uvs.FlippedHorizontal()
	}
	if flipVertical {
		uvs = uvs.FlippedVertical()
	}

	st.DrawQuad(quad, uvs, spr.HasTranslucency, spr.TextureIndex, p)
}

// DrawSpriteByName looks the sprite up in the atlas and draws it. An
// unknown name panics.
func (st *State) DrawSpriteByName(name string, t geom.Transform, flipHorizontal bool, flipVertical bool, p Params) {
	st.DrawSprite(st.atl.SpriteByName(name), t, flipHorizontal, flipVertical, p)
}

// DrawSpriteClipped draws an unrotated sprite at pos (the untrimmed
// top-left), restricted to the clip rect.
//
// A sprite with no overlap is dropped. A sprite entirely inside the clip
// draws in full. A proper intersection draws the clipped quad with UVs
// scaled to the surviving sub-rect. The case where the sprite strictly
// contains the clip rect on every side is unsupported and panics.
func (st *State) DrawSpriteClipped(spr atlas.Sprite, pos geom.Vec2, scale geom.Vec2, clip geom.Rect, p Params) {
	rect := geom.Rect{
		Pos: pos.Floored().Add(spr.TrimmedRect.Pos.Mul(scale)),
		Dim: spr.TrimmedRect.Dim.Mul(scale),
	}

	if !clip.Overlaps(rect) {
		return
	}

	if clip.ContainsRect(rect) {
		st.DrawQuad(geom.QuadFromRect(rect), spr.TrimmedUVs, spr.HasTranslucency, spr.TextureIndex, p)
		return
	}

	if rect.ContainsRect(clip) {
		panic(fmt.Sprintf("draw: sprite %s contains the clip rect; unsupported", spr.Name))
	}

	inter := clip.Intersection(rect)

	// scale UVs proportionally to the intersection's position inside the
	// original sprite rect. lerping between the stored edges keeps flipped
	// UV regions working
	uvs := spr.TrimmedUVs
	tx0 := (inter.Left() - rect.Left()) / rect.Dim.X
	tx1 := (inter.Right() - rect.Left()) / rect.Dim.X
	ty0 := (inter.Top() - rect.Top()) / rect.Dim.Y
	ty1 := (inter.Bottom() - rect.Top()) / rect.Dim.Y

	clipped := geom.AAQuad{
		Left:   geom.Lerp(uvs.Left, uvs.Right, tx0),
		Right:  geom.Lerp(uvs.Left, uvs.Right, tx1),
		Top:    geom.Lerp(uvs.Top, uvs.Bottom, ty0),
		Bottom: geom.Lerp(uvs.Top, uvs.Bottom, ty1),
	}

	st.DrawQuad(geom.QuadFromRect(inter), clipped, spr.HasTranslucency, spr.TextureIndex, p)
}
