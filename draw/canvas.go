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

// BlitRectFor computes the largest rectangle with the canvas aspect ratio
// that fits in the screen, centered and integer rounded. The canvas
// framebuffer is blitted into this rect; the remaining bars are painted with
// the letterbox color.
func BlitRectFor(screenW, screenH, canvasW, canvasH float32) geom.Rect {
	blitW := screenW
	blitH := screenW * canvasH / canvasW
	if blitH > screenH {
		blitH = screenH
		blitW = screenH * canvasW / canvasH
	}

	x := float32(int((screenW - blitW) / 2))
	y := float32(int((screenH - blitH) / 2))
	return geom.RectFromXYWH(x, y, float32(int(blitW)), float32(int(blitH)))
}

// BlitRect returns the blit rect for the current canvas and screen
// dimensions. The screen dimensions are the ones passed to the most recent
// FinishFrame. Without a canvas the blit rect is the whole screen.
func (st *State) BlitRect() geom.Rect {
	if !st.hasCanvas {
		return geom.RectFromXYWH(0, 0, float32(st.screenW), float32(st.screenH))
	}
	return BlitRectFor(float32(st.screenW), float32(st.screenH),
		float32(st.spec.CanvasWidth), float32(st.spec.CanvasHeight))
}

// ScreenPointToCanvasPoint inverts the blit transform for a point on the
// screen, clamping to the canvas bounds. Mouse coordinates go through this
// to find the canvas pixel under the cursor.
func (st *State) ScreenPointToCanvasPoint(p geom.Vec2) geom.Vec2 {
	if !st.hasCanvas {
		return p.Floored()
	}

	br := st.BlitRect()
	cw := float32(st.spec.CanvasWidth)
	ch := float32(st.spec.CanvasHeight)

	c := geom.Vec2{
		X: (p.X - br.Pos.X) * cw / br.Dim.X,
		Y: (p.Y - br.Pos.Y) * ch / br.Dim.Y,
	}.Floored()

	c.X = geom.Clamp(c.X, 0, cw-1)
	c.Y = geom.Clamp(c.Y, 0, ch-1)
	return c
}

// CanvasPointToWorldPoint converts a canvas pixel to the world coordinate
// under the current camera.
func (st *State) CanvasPointToWorldPoint(p geom.Vec2) geom.Vec2 {
	return p.Add(st.CameraPos.Floored())
}

// WorldPointToCanvasPoint converts a world coordinate to canvas pixel
// coordinates under the current camera.
func (st *State) WorldPointToCanvasPoint(p geom.Vec2) geom.Vec2 {
	return p.Sub(st.CameraPos.Floored())
}
