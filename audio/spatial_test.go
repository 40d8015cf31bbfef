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

package audio

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/lanternengine/lantern/geom"
	"github.com/lanternengine/lantern/test"
)

func TestFalloffLinear(t *testing.T) {
	f := Falloff{Kind: FalloffLinear, Start: 10, End: 110}

	test.Equate(t, f.Gain(0), 1)
	test.Equate(t, f.Gain(10), 1)
	test.Equate(t, f.Gain(60), float32(0.5))
	test.Equate(t, f.Gain(110), 0)
	test.Equate(t, f.Gain(500), 0)
}

func TestFalloffNatural(t *testing.T) {
	f := Falloff{Kind: FalloffNatural, Start: 10, End: 110}

	test.Equate(t, f.Gain(10), 1)
	test.ApproxEquate(t, f.Gain(60), math32.Exp(-3), 1e-6)
	test.Equate(t, f.Gain(110), 0)
	test.Equate(t, f.Gain(500), 0)
}

func TestFalloffNaturalUnbounded(t *testing.T) {
	f := Falloff{Kind: FalloffNaturalUnbounded, Start: 10, End: 110, Min: 0.1}

	test.Equate(t, f.Gain(10), 1)

	// beyond the end distance the gain floors at Min instead of cutting out
	test.ApproxEquate(t, f.Gain(110), 0.1, 1e-6)
	test.ApproxEquate(t, f.Gain(10000), 0.1, 1e-6)
}

func TestSpatialPanFactor(t *testing.T) {
	sp := Spatial{
		Pos:     geom.Vec2{X: 50, Y: 0},
		Falloff: Falloff{Kind: FalloffLinear, Start: 1000, End: 2000},
	}

	volume, pan, speed := sp.factors(geom.Vec2{}, geom.Vec2{}, 100, 343)
	test.Equate(t, volume, 1)
	test.ApproxEquate(t, pan, 0.5, 1e-6)
	test.Equate(t, speed, 1)

	// beyond the max-pan distance the pan clamps
	sp.Pos = geom.Vec2{X: -200, Y: 0}
	_, pan, _ = sp.factors(geom.Vec2{}, geom.Vec2{}, 100, 343)
	test.Equate(t, pan, -1)
}

func TestSpatialDoppler(t *testing.T) {
	sp := Spatial{
		Pos:             geom.Vec2{X: 100, Y: 0},
		Vel:             geom.Vec2{X: 343, Y: 0},
		Falloff:         Falloff{Kind: FalloffLinear, Start: 1000, End: 2000},
		DopplerStrength: 1,
	}

	// receding at the medium velocity: the ratio clamps at +0.5 and the
	// playback slows to two thirds
	_, _, speed := sp.factors(geom.Vec2{}, geom.Vec2{}, 100, 343)
	test.ApproxEquate(t, speed, 2.0/3.0, 1e-6)

	// approaching clamps at -0.5, doubling the playback speed
	sp.Vel = geom.Vec2{X: -343, Y: 0}
	_, _, speed = sp.factors(geom.Vec2{}, geom.Vec2{}, 100, 343)
	test.ApproxEquate(t, speed, 2, 1e-6)

	// a quarter of the medium velocity is under the clamp
	sp.Vel = geom.Vec2{X: 85.75, Y: 0}
	_, _, speed = sp.factors(geom.Vec2{}, geom.Vec2{}, 100, 343)
	test.ApproxEquate(t, speed, 1/1.25, 1e-6)

	// listener velocity is relative
	sp.Vel = geom.Vec2{X: 343, Y: 0}
	_, _, speed = sp.factors(geom.Vec2{}, geom.Vec2{X: 343, Y: 0}, 100, 343)
	test.Equate(t, speed, 1)
}

func TestSpatialCoincidentListener(t *testing.T) {
	sp := Spatial{
		Pos:             geom.Vec2{X: 5, Y: 5},
		Vel:             geom.Vec2{X: 100, Y: 0},
		Falloff:         Falloff{Kind: FalloffLinear, Start: 10, End: 100},
		DopplerStrength: 1,
	}

	// a source on top of the listener has no defined direction; pan is
	// centred and the doppler projection falls back to the x axis
	volume, pan, speed := sp.factors(geom.Vec2{X: 5, Y: 5}, geom.Vec2{}, 100, 343)
	test.Equate(t, volume, 1)
	test.Equate(t, pan, 0)
	if speed >= 1 {
		t.Errorf("receding fallback direction expected a slowed playback (got %f)", speed)
	}
}
