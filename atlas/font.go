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
	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/geom"
)

// Glyph associates a codepoint with its sprite and horizontal advance.
type Glyph struct {
	Advance     float32
	SpriteIndex int
}

// fallbackCodepoint is substituted for codepoints the font does not cover.
const fallbackCodepoint = '?'

// Font maps codepoints to glyph sprites. Codepoints below 256 go through a
// dense table; everything else through a sparse map. Like sprites, fonts are
// immutable after atlas construction.
type Font struct {
	Name            string
	Baseline        float32
	VerticalAdvance float32

	asciiGlyphs [256]Glyph
	asciiValid  [256]bool
	glyphs      map[rune]Glyph

	fallback Glyph

	// set by Atlas construction. glyph sprites live in the atlas sprite table
	atl *Atlas
}

// NewFont is the preferred method of initialisation for the Font type. The
// glyph table must cover the fallback codepoint '?'; this is checked when
// the font is linked into an atlas.
func NewFont(name string, baseline float32, verticalAdvance float32, glyphs map[rune]Glyph) *Font {
	fnt := &Font{
		Name:            name,
		Baseline:        baseline,
		VerticalAdvance: verticalAdvance,
		glyphs:          make(map[rune]Glyph),
	}

	for cp, g := range glyphs {
		if cp >= 0 && cp < 256 {
			fnt.asciiGlyphs[cp] = g
			fnt.asciiValid[cp] = true
		} else {
			fnt.glyphs[cp] = g
		}
	}

	return fnt
}

func (fnt *Font) link(atl *Atlas) error {
	if !fnt.asciiValid[fallbackCodepoint] {
		return fault.Errorf("font: %s: missing fallback glyph %q", fnt.Name, fallbackCodepoint)
	}

	check := func(g Glyph) error {
		if g.SpriteIndex < 0 || g.SpriteIndex >= len(atl.sprites) {
			return fault.Errorf("font: %s: glyph sprite index out of range: %d", fnt.Name, g.SpriteIndex)
		}
		return nil
	}
	for cp := range fnt.asciiGlyphs {
		if fnt.asciiValid[cp] {
			if err := check(fnt.asciiGlyphs[cp]); err != nil {
				return err
			}
		}
	}
	for _, g := range fnt.glyphs {
		if err := check(g); err != nil {
			return err
		}
	}

	fnt.atl = atl
	fnt.fallback = fnt.asciiGlyphs[fallbackCodepoint]
	return nil
}

// Glyph returns the glyph for the codepoint, falling back to '?' for
// codepoints the font does not cover.
func (fnt *Font) Glyph(cp rune) Glyph {
	if cp >= 0 && cp < 256 {
		if fnt.asciiValid[cp] {
			return fnt.asciiGlyphs[cp]
		}
		return fnt.fallback
	}
	if g, ok := fnt.glyphs[cp]; ok {
		return g
	}
	return fnt.fallback
}

// GlyphSprite returns the sprite for the codepoint's glyph.
func (fnt *Font) GlyphSprite(cp rune) Sprite {
	return fnt.atl.SpriteByIndex(fnt.Glyph(cp).SpriteIndex)
}

// IterateText is the one text traversal algorithm shared by measurement,
// plain drawing and clipped drawing.
//
// Iteration starts at origin+offset. For each codepoint the glyph sprite and
// pen position are passed to emit, then the pen advances by the scaled
// horizontal advance. A newline resets the pen x to the origin and moves
// down by the scaled vertical advance. If originIsBaseline the scaled
// baseline is subtracted from the effective origin before iteration.
//
// Returns the offset of the pen relative to origin after the final glyph,
// suitable for a continuation call.
func (fnt *Font) IterateText(text string, scale float32, origin geom.Vec2, offset geom.Vec2,
	originIsBaseline bool, emit func(glyph Sprite, pos geom.Vec2, codepoint rune)) geom.Vec2 {

	if originIsBaseline {
		origin.Y -= scale * fnt.Baseline
	}

	pos := origin.Add(offset)
	for _, cp := range text {
		if cp == '\n' {
			pos.X = origin.X
			pos.Y += scale * fnt.VerticalAdvance
			continue
		}

		g := fnt.Glyph(cp)
		emit(fnt.atl.SpriteByIndex(g.SpriteIndex), pos, cp)
		pos.X += scale * g.Advance
	}

	return pos.Sub(origin)
}

// IterateTextClipped is IterateText with a clip rect. A line that lies
// entirely above or below the clip rect is skipped without looking at its
// glyphs; glyph-level clipping within visible lines is the caller's problem.
func (fnt *Font) IterateTextClipped(text string, scale float32, origin geom.Vec2, offset geom.Vec2,
	originIsBaseline bool, clip geom.Rect, emit func(glyph Sprite, pos geom.Vec2, codepoint rune)) geom.Vec2 {

	if originIsBaseline {
		origin.Y -= scale * fnt.Baseline
	}

	pos := origin.Add(offset)
	lineVisible := pos.Y+scale*fnt.VerticalAdvance > clip.Top() && pos.Y < clip.Bottom()

	for _, cp := range text {
		if cp == '\n' {
			pos.X = origin.X
			pos.Y += scale * fnt.VerticalAdvance
			lineVisible = pos.Y+scale*fnt.VerticalAdvance > clip.Top() && pos.Y < clip.Bottom()
			continue
		}

		if !lineVisible {
			// the pen still advances on skipped lines so that the returned
			// continuation offset is the same as for the unclipped variant
			pos.X += scale * fnt.Glyph(cp).Advance
			continue
		}

		g := fnt.Glyph(cp)
		emit(fnt.atl.SpriteByIndex(g.SpriteIndex), pos, cp)
		pos.X += scale * g.Advance
	}

	return pos.Sub(origin)
}

// TextDimensions measures the text using the horizontal advance of each
// glyph. Width is the widest row; height is baseline plus one vertical
// advance per additional line.
func (fnt *Font) TextDimensions(text string, scale float32) geom.Vec2 {
	if len(text) == 0 {
		return geom.Vec2Zero()
	}

	var width float32
	var row float32
	lines := 1

	for _, cp := range text {
		if cp == '\n' {
			lines++
			row = 0
			continue
		}
		row += fnt.Glyph(cp).Advance
		if row > width {
			width = row
		}
	}

	return geom.Vec2{
		X: scale * width,
		Y: scale * (fnt.Baseline + float32(lines-1)*fnt.VerticalAdvance),
	}
}

// TextDimensionsExact measures the text using the pixel width of each glyph
// sprite rather than its advance. Use for tight bounding queries; the result
// is never wider than TextDimensions.
func (fnt *Font) TextDimensionsExact(text string, scale float32) geom.Vec2 {
	if len(text) == 0 {
		return geom.Vec2Zero()
	}

	var width float32
	var x float32
	lines := 1

	for _, cp := range text {
		if cp == '\n' {
			lines++
			x = 0
			continue
		}

		g := fnt.Glyph(cp)
		spr := fnt.atl.SpriteByIndex(g.SpriteIndex)
		right := x + spr.TrimmedRect.Pos.X + spr.TrimmedRect.Dim.X
		if right > width {
			width = right
		}
		x += g.Advance
	}

	return geom.Vec2{
		X: scale * width,
		Y: scale * (fnt.Baseline + float32(lines-1)*fnt.VerticalAdvance),
	}
}
