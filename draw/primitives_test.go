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

package draw_test

import (
	"testing"

	"github.com/lanternengine/lantern/draw"
	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/test"
)

// pixelCount finishes the frame and returns the total number of quads
// submitted, on the assumption that every drawable in the frame is made of
// single-pixel quads.
func pixelCount(t *testing.T, st *draw.State) int {
	t.Helper()

	finishFrame(t, st, 640, 480)
	total := 0
	for _, b := range st.Batches() {
		total += b.IndexCount
	}
	if total%6 != 0 {
		t.Fatalf("index count %d is not a whole number of quads", total)
	}
	return total / 6
}

func TestDrawPixel(t *testing.T) {
	st := newTestState(t, draw.Spec{})
	st.DrawPixel(geom.Vec2{X: 10.9, Y: 20.1}, worldParams(0))
	test.Equate(t, pixelCount(t, st), 1)
}

func TestLineBresenhamPixelCounts(t *testing.T) {
	st := newTestState(t, draw.Spec{})

	// with skipLast the plotted count is the chebyshev distance between the
	// endpoints
	st.DrawLineBresenham(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 5, Y: 3}, true, worldParams(0))
	test.Equate(t, pixelCount(t, st), 5)

	st.DrawLineBresenham(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 5, Y: 3}, false, worldParams(0))
	test.Equate(t, pixelCount(t, st), 6)

	// horizontal, right to left
	st.DrawLineBresenham(geom.Vec2{X: 7, Y: 2}, geom.Vec2{X: 0, Y: 2}, true, worldParams(0))
	test.Equate(t, pixelCount(t, st), 7)

	// perfect diagonal
	st.DrawLineBresenham(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 4, Y: 4}, true, worldParams(0))
	test.Equate(t, pixelCount(t, st), 4)

	// degenerate: start == end
	st.DrawLineBresenham(geom.Vec2{X: 3, Y: 3}, geom.Vec2{X: 3, Y: 3}, false, worldParams(0))
	test.Equate(t, pixelCount(t, st), 1)

	st.DrawLineBresenham(geom.Vec2{X: 3, Y: 3}, geom.Vec2{X: 3, Y: 3}, true, worldParams(0))
	test.Equate(t, pixelCount(t, st), 0)
}

func TestRectOutlinePixelCount(t *testing.T) {
	st := newTestState(t, draw.Spec{})

	// the four corner-to-corner segments cover the outline exactly once
	st.DrawRect(geom.RectFromXYWH(0, 0, 10, 5), false, worldParams(0))
	test.Equate(t, pixelCount(t, st), 2*(10-1)+2*(5-1))

	// a filled rect is a single quad
	st.DrawRect(geom.RectFromXYWH(0, 0, 10, 5), true, worldParams(0))
	test.Equate(t, pixelCount(t, st), 1)

	// too small for an outline
	st.DrawRect(geom.RectFromXYWH(0, 0, 0.5, 5), false, worldParams(0))
	test.Equate(t, st.NumPendingDrawables(), 0)
}

func TestCircleFilledTinyRadius(t *testing.T) {
	st := newTestState(t, draw.Spec{})
	st.DrawCircleFilled(geom.Vec2{X: 5, Y: 5}, 0.4, worldParams(0))
	test.Equate(t, pixelCount(t, st), 1)
}

func TestCircleBresenhamPixelCount(t *testing.T) {
	st := newTestState(t, draw.Spec{})

	// a radius 3 midpoint circle has 16 distinct pixels; duplicates on the
	// axes and diagonals must not be plotted twice
	st.DrawCircleBresenham(geom.Vec2{X: 20, Y: 20}, 3, worldParams(0))
	test.Equate(t, pixelCount(t, st), 16)

	// radius below one degenerates to a single pixel
	st.DrawCircleBresenham(geom.Vec2{X: 20, Y: 20}, 0.5, worldParams(0))
	test.Equate(t, pixelCount(t, st), 1)
}

func TestThickLine(t *testing.T) {
	st := newTestState(t, draw.Spec{})

	// two quads either side of the medial line
	st.DrawLineWithThickness(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 30, Y: 10}, 4, false, worldParams(0))
	finishFrame(t, st, 640, 480)
	batches := st.Batches()
	test.Equate(t, len(batches), 1)
	test.Equate(t, batches[0].Translucent, false)
	test.Equate(t, batches[0].IndexCount, 12)

	// feathered edges force the translucent regime even at full alpha
	st.DrawLineWithThickness(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 30, Y: 10}, 4, true, worldParams(0))
	finishFrame(t, st, 640, 480)
	batches = st.Batches()
	test.Equate(t, len(batches), 1)
	test.Equate(t, batches[0].Translucent, true)
	test.Equate(t, batches[0].IndexCount, 12)
}
