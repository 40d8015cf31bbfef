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

// Package atlas holds the immutable sprite, page and font tables produced by
// asset loading. The draw package reads from the atlas every frame; nothing
// in this package mutates after construction apart from AddSpriteForRegion,
// which only ever appends.
package atlas

import (
	"fmt"
	"image"

	"github.com/lanternengine/lantern/fault"
	"github.com/lanternengine/lantern/geom"
)

// UntexturedSpriteName is the name of the mandatory white-pixel region.
// Solid primitives sample this region so that textured and untextured
// geometry go through the same shader.
const UntexturedSpriteName = "untextured"

// Atlas is the ordered list of atlas pages along with the sprite and font
// tables that index into them.
type Atlas struct {
	// all pages share one square power-of-two side length
	Pages    []*image.RGBA
	PageSize int

	sprites     []Sprite
	spriteNames map[string]int
	fonts       map[string]*Font

	// collapsed UV quad guaranteeing a single white texel fetch
	untexturedUV    geom.AAQuad
	untexturedIndex int
}

// NewAtlas is the preferred method of initialisation for the Atlas type.
//
// All pages must be square with the same power-of-two side length and the
// sprite list must contain a region named "untextured". Violations are
// construction errors, not panics, so that a broken asset bundle can be
// reported to the user.
func NewAtlas(pages []*image.RGBA, sprites []Sprite, fonts []*Font) (*Atlas, error) {
	if len(pages) == 0 {
		return nil, fault.Errorf("atlas: no pages")
	}

	size := pages[0].Bounds().Dx()
	if size&(size-1) != 0 || size == 0 {
		return nil, fault.Errorf("atlas: page size is not a power of two: %d", size)
	}
	for i, p := range pages {
		if p.Bounds().Dx() != size || p.Bounds().Dy() != size {
			return nil, fault.Errorf("atlas: page %d is not %dx%d", i, size, size)
		}
	}

	atl := &Atlas{
		Pages:       pages,
		PageSize:    size,
		sprites:     sprites,
		spriteNames: make(map[string]int, len(sprites)),
		fonts:       make(map[string]*Font, len(fonts)),
	}

	for i, spr := range sprites {
		if _, ok := atl.spriteNames[spr.Name]; ok {
			return nil, fault.Errorf("atlas: duplicate sprite: %s", spr.Name)
		}
		if spr.TextureIndex < 0 || spr.TextureIndex >= len(pages) {
			return nil, fault.Errorf("atlas: sprite %s references page %d of %d", spr.Name, spr.TextureIndex, len(pages))
		}
		atl.spriteNames[spr.Name] = i
	}

	idx, ok := atl.spriteNames[UntexturedSpriteName]
	if !ok {
		return nil, fault.Errorf("atlas: missing %q region", UntexturedSpriteName)
	}
	atl.untexturedIndex = idx
	atl.untexturedUV = sprites[idx].TrimmedUVs.Collapsed()

	for _, fnt := range fonts {
		if _, ok := atl.fonts[fnt.Name]; ok {
			return nil, fault.Errorf("atlas: duplicate font: %s", fnt.Name)
		}
		if err := fnt.link(atl); err != nil {
			return nil, fault.Errorf("atlas: %w", err)
		}
		atl.fonts[fnt.Name] = fnt
	}

	return atl, nil
}

// NumSprites returns the number of sprites in the atlas.
func (atl *Atlas) NumSprites() int {
	return len(atl.sprites)
}

// SpriteByName returns the named sprite. An unknown name is a programmer
// error and panics.
func (atl *Atlas) SpriteByName(name string) Sprite {
	idx, ok := atl.spriteNames[name]
	if !ok {
		panic(fmt.Sprintf("atlas: unknown sprite: %s", name))
	}
	return atl.sprites[idx]
}

// SpriteIndexByName returns the index of the named sprite. An unknown name
// is a programmer error and panics.
func (atl *Atlas) SpriteIndexByName(name string) int {
	idx, ok := atl.spriteNames[name]
	if !ok {
		panic(fmt.Sprintf("atlas: unknown sprite: %s", name))
	}
	return idx
}

// SpriteByIndex returns the sprite at the given index.
func (atl *Atlas) SpriteByIndex(index int) Sprite {
	return atl.sprites[index]
}

// FontByName returns the named font. An unknown name is a programmer error
// and panics.
func (atl *Atlas) FontByName(name string) *Font {
	fnt, ok := atl.fonts[name]
	if !ok {
		panic(fmt.Sprintf("atlas: unknown font: %s", name))
	}
	return fnt
}

// HasSprite tests for the presence of a named sprite without panicking.
func (atl *Atlas) HasSprite(name string) bool {
	_, ok := atl.spriteNames[name]
	return ok
}

// UntexturedUV returns the collapsed UV quad of the white-pixel region.
func (atl *Atlas) UntexturedUV() geom.AAQuad {
	return atl.untexturedUV
}

// UntexturedTextureIndex returns the page holding the white-pixel region.
func (atl *Atlas) UntexturedTextureIndex() int {
	return atl.sprites[atl.untexturedIndex].TextureIndex
}

// AddSpriteForRegion registers a named rect inside an existing atlas page as
// a new sprite. Useful for debug whole-page sprites. Returns the index of
// the new sprite.
func (atl *Atlas) AddSpriteForRegion(name string, textureIndex int, region geom.Rect) (int, error) {
	if _, ok := atl.spriteNames[name]; ok {
		return 0, fault.Errorf("atlas: duplicate sprite: %s", name)
	}
	if textureIndex < 0 || textureIndex >= len(atl.Pages) {
		return 0, fault.Errorf("atlas: sprite %s references page %d of %d", name, textureIndex, len(atl.Pages))
	}

	size := float32(atl.PageSize)
	spr := Sprite{
		Name:         name,
		TextureIndex: textureIndex,
		UntrimmedDim: region.Dim,
		TrimmedRect:  geom.Rect{Dim: region.Dim},
		TrimmedUVs: geom.AAQuad{
			Left:   region.Left() / size,
			Top:    region.Top() / size,
			Right:  region.Right() / size,
			Bottom: region.Bottom() / size,
		},
	}

	atl.sprites = append(atl.sprites, spr)
	atl.spriteNames[name] = len(atl.sprites) - 1
	return len(atl.sprites) - 1, nil
}
