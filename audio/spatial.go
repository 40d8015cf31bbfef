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
	"github.com/chewxy/math32"
	"github.com/lanternengine/lantern/geom"
)

// FalloffKind selects the distance-to-gain mapping of a spatial stream.
type FalloffKind int

const (
	// FalloffLinear is 1 inside Start, 0 beyond End, linear between.
	FalloffLinear FalloffKind = iota

	// FalloffNatural is an exponential decay between Start and End, 0
	// beyond End.
	FalloffNatural

	// FalloffNaturalUnbounded is FalloffNatural with a Min floor instead of
	// dropping to 0, so distant sources stay faintly audible.
	FalloffNaturalUnbounded
)

// the natural falloff reaches exp(-6), about 0.25%, at the End distance
const naturalFalloffExponent = -6

// Falloff maps distance to a gain in [0, 1].
type Falloff struct {
	Kind  FalloffKind
	Start float32
	End   float32

	// gain floor for FalloffNaturalUnbounded
	Min float32
}

// Gain returns the gain for a source at the given distance.
func (f Falloff) Gain(distance float32) float32 {
	if distance <= f.Start {
		return 1
	}

	switch f.Kind {
	case FalloffLinear:
		if distance >= f.End {
			return 0
		}
		return 1 - (distance-f.Start)/(f.End-f.Start)

	case FalloffNatural:
		if distance >= f.End {
			return 0
		}
		return math32.Exp(naturalFalloffExponent * (distance - f.Start) / (f.End - f.Start))

	case FalloffNaturalUnbounded:
		g := math32.Exp(naturalFalloffExponent * (distance - f.Start) / (f.End - f.Start))
		return math32.Max(g, f.Min)
	}

	return 1
}

// Spatial is the positional state of a spatial stream.
type Spatial struct {
	Pos geom.Vec2
	Vel geom.Vec2

	Falloff Falloff

	// scales the doppler shift. 0 disables it
	DopplerStrength float32
}

// dopplerLimit caps the relative-velocity ratio so that a fast-moving source
// can never stall or invert playback.
const dopplerLimit = 0.5

// factors computes the per-chunk volume gain, pan position and playback
// speed factor for the listener pose.
func (sp *Spatial) factors(listenerPos geom.Vec2, listenerVel geom.Vec2,
	distanceForMaxPan float32, mediumVelocityMax float32) (volume float32, pan float32, speed float32) {

	offset := sp.Pos.Sub(listenerPos)
	distance := offset.Length()

	volume = sp.Falloff.Gain(distance)

	pan = geom.Clamp(offset.X/distanceForMaxPan, -1, 1)

	// stationary-observer doppler. the relative velocity is projected onto
	// the source direction; a receding source gives a positive ratio and a
	// slower playback
	dir := offset.Normalized(geom.Vec2{X: 1, Y: 0})
	vRel := sp.Vel.Sub(listenerVel).Dot(dir)
	r := geom.Clamp(sp.DopplerStrength*vRel/mediumVelocityMax, -dopplerLimit, dopplerLimit)
	speed = 1 / (1 + r)

	return volume, pan, speed
}
