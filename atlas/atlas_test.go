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

package atlas_test

import (
	"image"
	"testing"

	"github.com/lanternengine/lantern/atlas"
	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/test"
)

const epsilon = 1e-4

func testSprites() []atlas.Sprite {
	return []atlas.Sprite{
		{
			Name:         atlas.UntexturedSpriteName,
			TextureIndex: 0,
			UntrimmedDim: geom.Vec2{X: 4, Y: 4},
			TrimmedRect:  geom.RectFromXYWH(0, 0, 4, 4),
			TrimmedUVs:   geom.AAQuad{Left: 0, Top: 0, Right: 4.0 / 64, Bottom: 4.0 / 64},
		},
		{
			Name:         "glyph_a",
			TextureIndex: 0,
			UntrimmedDim: geom.Vec2{X: 8, Y: 12},
			TrimmedRect:  geom.RectFromXYWH(1, 2, 6, 8),
			TrimmedUVs:   geom.AAQuad{Left: 0.1, Top: 0.1, Right: 0.2, Bottom: 0.3},
		},
		{
			Name:         "glyph_q",
			TextureIndex: 0,
			UntrimmedDim: geom.Vec2{X: 6, Y: 12},
			TrimmedRect:  geom.RectFromXYWH(0, 2, 5, 8),
			TrimmedUVs:   geom.AAQuad{Left: 0.3, Top: 0.1, Right: 0.4, Bottom: 0.3},
		},
	}
}

func testFont() *atlas.Font {
	return atlas.NewFont("testfont", 10, 12, map[rune]atlas.Glyph{
		'A': {Advance: 8, SpriteIndex: 1},
		'?': {Advance: 6, SpriteIndex: 2},
	})
}

func testAtlas(t *testing.T) *atlas.Atlas {
	t.Helper()
	atl, err := atlas.NewAtlas(
		[]*image.RGBA{image.NewRGBA(image.Rect(0, 0, 64, 64))},
		testSprites(),
		[]*atlas.Font{testFont()},
	)
	test.ExpectedSuccess(t, err)
	return atl
}

func TestAtlasConstruction(t *testing.T) {
	// a non power-of-two page is a construction error
	_, err := atlas.NewAtlas(
		[]*image.RGBA{image.NewRGBA(image.Rect(0, 0, 60, 60))},
		testSprites(), nil,
	)
	test.ExpectedFailure(t, err)

	// no pages
	_, err = atlas.NewAtlas(nil, testSprites(), nil)
	test.ExpectedFailure(t, err)

	// missing "untextured" region
	_, err = atlas.NewAtlas(
		[]*image.RGBA{image.NewRGBA(image.Rect(0, 0, 64, 64))},
		testSprites()[1:], nil,
	)
	test.ExpectedFailure(t, err)

	atl := testAtlas(t)
	test.Equate(t, atl.NumSprites(), 3)
	test.Equate(t, atl.HasSprite("glyph_a"), true)
	test.Equate(t, atl.HasSprite("missing"), false)
}

func TestUnknownLookupsPanic(t *testing.T) {
	atl := testAtlas(t)
	test.ExpectedPanic(t, func() { atl.SpriteByName("missing") })
	test.ExpectedPanic(t, func() { atl.FontByName("missing") })
}

func TestUntexturedUVCollapsed(t *testing.T) {
	atl := testAtlas(t)
	uv := atl.UntexturedUV()

	// collapsed quad: all edges at the region center
	test.ApproxEquate(t, uv.Left, uv.Right, epsilon)
	test.ApproxEquate(t, uv.Top, uv.Bottom, epsilon)
	test.ApproxEquate(t, uv.Left, 2.0/64, epsilon)
}

func TestAddSpriteForRegion(t *testing.T) {
	atl := testAtlas(t)

	idx, err := atl.AddSpriteForRegion("page0", 0, geom.RectFromXYWH(0, 0, 64, 64))
	test.ExpectedSuccess(t, err)

	spr := atl.SpriteByIndex(idx)
	test.ApproxEquate(t, spr.TrimmedUVs.Right, 1, epsilon)
	test.ApproxEquate(t, spr.TrimmedUVs.Bottom, 1, epsilon)

	// duplicate add fails
	_, err = atl.AddSpriteForRegion("page0", 0, geom.RectFromXYWH(0, 0, 64, 64))
	test.ExpectedFailure(t, err)
}

func TestQuadTransformed(t *testing.T) {
	spr := atlas.Sprite{
		Name:         "pivot",
		UntrimmedDim: geom.Vec2{X: 16, Y: 16},
		TrimmedRect:  geom.RectFromXYWH(2, 3, 12, 10),
		PivotOffset:  geom.Vec2{X: 8, Y: 8},
	}

	// sub-pixel position must snap to the pixel grid before the quad is built
	q := spr.QuadTransformed(geom.TransformAt(geom.Vec2{X: 100.7, Y: 50.2}))

	test.ApproxEquate(t, q.LeftTop.X, 94, epsilon)
	test.ApproxEquate(t, q.LeftTop.Y, 45, epsilon)
	test.ApproxEquate(t, q.RightBottom.X, 106, epsilon)
	test.ApproxEquate(t, q.RightBottom.Y, 55, epsilon)
}

func TestAttachmentPointTransformed(t *testing.T) {
	spr := atlas.Sprite{
		Name:         "pivot",
		UntrimmedDim: geom.Vec2{X: 16, Y: 16},
		TrimmedRect:  geom.RectFromXYWH(2, 3, 12, 10),
		PivotOffset:  geom.Vec2{X: 8, Y: 8},
	}
	spr.AttachmentPoints[0] = geom.Vec2{X: 12, Y: 4}

	p := spr.AttachmentPointTransformed(0, geom.TransformAt(geom.Vec2{X: 100.7, Y: 50.2}))
	test.ApproxEquate(t, p.X, 104, epsilon)
	test.ApproxEquate(t, p.Y, 46, epsilon)

	// a rotated attachment point tracks the same pivot as the quad corners:
	// rotating 180 degrees mirrors the point through the transform position
	p = spr.AttachmentPointTransformed(0, geom.TransformAt(geom.Vec2{X: 100, Y: 50}).WithAngle(180))
	test.ApproxEquate(t, p.X, 96, epsilon)
	test.ApproxEquate(t, p.Y, 54, epsilon)
}

func TestTextIteration(t *testing.T) {
	atl := testAtlas(t)
	fnt := atl.FontByName("testfont")

	type emitted struct {
		pos geom.Vec2
		cp  rune
	}
	var got []emitted

	offset := fnt.IterateText("AA\nA", 1, geom.Vec2Zero(), geom.Vec2Zero(), false,
		func(glyph atlas.Sprite, pos geom.Vec2, cp rune) {
			got = append(got, emitted{pos: pos, cp: cp})
		})

	test.Equate(t, len(got), 3)
	test.ApproxEquate(t, got[0].pos.X, 0, epsilon)
	test.ApproxEquate(t, got[1].pos.X, 8, epsilon)
	test.ApproxEquate(t, got[2].pos.X, 0, epsilon)
	test.ApproxEquate(t, got[2].pos.Y, 12, epsilon)

	// continuation offset points one advance past the last glyph
	test.ApproxEquate(t, offset.X, 8, epsilon)
	test.ApproxEquate(t, offset.Y, 12, epsilon)
}

func TestTextFallbackGlyph(t *testing.T) {
	atl := testAtlas(t)
	fnt := atl.FontByName("testfont")

	// 'z' and a codepoint beyond the dense table both fall back to '?'
	var names []string
	fnt.IterateText("zÿሴ", 1, geom.Vec2Zero(), geom.Vec2Zero(), false,
		func(glyph atlas.Sprite, pos geom.Vec2, cp rune) {
			names = append(names, glyph.Name)
		})

	test.Equate(t, len(names), 3)
	for _, n := range names {
		test.Equate(t, n, "glyph_q")
	}
}

func TestTextDimensions(t *testing.T) {
	atl := testAtlas(t)
	fnt := atl.FontByName("testfont")

	dim := fnt.TextDimensions("AA\nA", 1)
	test.ApproxEquate(t, dim.X, 16, epsilon)
	test.ApproxEquate(t, dim.Y, 22, epsilon)

	// scaling applies to both axes
	dim = fnt.TextDimensions("AA\nA", 2)
	test.ApproxEquate(t, dim.X, 32, epsilon)
	test.ApproxEquate(t, dim.Y, 44, epsilon)

	// zero-length text measures zero
	dim = fnt.TextDimensions("", 1)
	test.Equate(t, dim.X, 0)
	test.Equate(t, dim.Y, 0)

	// exact measurement never exceeds the advance sum
	exact := fnt.TextDimensionsExact("AA\nA", 1)
	test.ExpectedSuccess(t, exact.X <= 16)
}

func TestTextClippedSkipsLines(t *testing.T) {
	atl := testAtlas(t)
	fnt := atl.FontByName("testfont")

	// clip covers only the second line
	clip := geom.RectFromXYWH(0, 12, 100, 12)

	var got []rune
	offset := fnt.IterateTextClipped("AA\nAA\nAA", 1, geom.Vec2Zero(), geom.Vec2Zero(), false, clip,
		func(glyph atlas.Sprite, pos geom.Vec2, cp rune) {
			got = append(got, cp)
			test.ApproxEquate(t, pos.Y, 12, epsilon)
		})

	test.Equate(t, len(got), 2)

	// pen advance matches the unclipped variant
	plain := fnt.IterateText("AA\nAA\nAA", 1, geom.Vec2Zero(), geom.Vec2Zero(), false,
		func(atlas.Sprite, geom.Vec2, rune) {})
	test.ApproxEquate(t, offset.X, plain.X, epsilon)
	test.ApproxEquate(t, offset.Y, plain.Y, epsilon)
}
