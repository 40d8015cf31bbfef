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
	"github.com/lanternengine/lantern/atlas"
	"github.com/lanternengine/lantern/geom"
)

// Alignment positions text relative to its origin.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TextParams bundles the optional arguments of the text operations.
type TextParams struct {
	// treat the origin y as the text baseline rather than the glyph top
	OriginIsBaseline bool

	Alignment Alignment

	// when non-nil, a quad of this color is drawn behind every glyph cell
	Background *geom.Color
}

// DrawText draws a string with the given font and scale. The pen starts at
// origin+offset; the returned offset is the pen position relative to origin
// after the final glyph, so repeated calls continue where the previous one
// stopped.
func (st *State) DrawText(text string, fnt *atlas.Font, scale float32, origin geom.Vec2, offset geom.Vec2, tp TextParams, p Params) geom.Vec2 {
	origin = st.alignTextOrigin(text, fnt, scale, origin, tp.Alignment)

	return fnt.IterateText(text, scale, origin, offset, tp.OriginIsBaseline,
		func(glyph atlas.Sprite, pos geom.Vec2, codepoint rune) {
			st.drawGlyph(glyph, fnt, pos, scale, tp.Background, p)
		})
}

// DrawTextClipped is DrawText restricted to a clip rect. Lines entirely
// outside the clip are skipped wholesale; glyphs on visible lines are
// individually clipped.
func (st *State) DrawTextClipped(text string, fnt *atlas.Font, scale float32, origin geom.Vec2, offset geom.Vec2, clip geom.Rect, tp TextParams, p Params) geom.Vec2 {
	origin = st.alignTextOrigin(text, fnt, scale, origin, tp.Alignment)

	return fnt.IterateTextClipped(text, scale, origin, offset, tp.OriginIsBaseline, clip,
		func(glyph atlas.Sprite, pos geom.Vec2, codepoint rune) {
			if tp.Background != nil {
				cell := geom.Rect{
					Pos: pos.Floored(),
					Dim: geom.Vec2{X: scale * fnt.Glyph(codepoint).Advance, Y: scale * fnt.VerticalAdvance},
				}
				if clip.Overlaps(cell) {
					bg := p
					bg.Color = *tp.Background
					st.drawUntexturedQuad(geom.QuadFromRect(clip.Intersection(cell)), bg)
				}
			}
			st.DrawSpriteClipped(glyph, pos, geom.Vec2{X: scale, Y: scale}, clip, p)
		})
}

func (st *State) alignTextOrigin(text string, fnt *atlas.Font, scale float32, origin geom.Vec2, alignment Alignment) geom.Vec2 {
	switch alignment {
	case AlignCenter:
		origin.X -= fnt.TextDimensions(text, scale).X / 2
	case AlignRight:
		origin.X -= fnt.TextDimensions(text, scale).X
	}
	return origin
}

func (st *State) drawGlyph(glyph atlas.Sprite, fnt *atlas.Font, pos geom.Vec2, scale float32, background *geom.Color, p Params) {
	pos = pos.Floored()

	if background != nil {
		cell := geom.Rect{
			Pos: pos,
			Dim: geom.Vec2{X: scale * glyphAdvance(fnt, glyph), Y: scale * fnt.VerticalAdvance},
		}
		bg := p
		bg.Color = *background
		st.drawUntexturedQuad(geom.QuadFromRect(cell), bg)
	}

	rect := geom.Rect{
		Pos: pos.Add(glyph.TrimmedRect.Pos.Scale(scale)),
		Dim: glyph.TrimmedRect.Dim.Scale(scale),
	}
	st.DrawQuad(geom.QuadFromRect(rect), glyph.TrimmedUVs, glyph.HasTranslucency, glyph.TextureIndex, p)
}

// glyphAdvance recovers the advance for a glyph sprite. The untrimmed width
// is the advance cell for every font this project generates; falling back
// to it avoids a reverse sprite-to-codepoint lookup.
func glyphAdvance(fnt *atlas.Font, glyph atlas.Sprite) float32 {
	if glyph.UntrimmedDim.X > 0 {
		return glyph.UntrimmedDim.X
	}
	return fnt.VerticalAdvance / 2
}
