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
)

// volumeAdapter scales a mono chunk by a gain that ramps linearly from
// current to target over one chunk. When current equals target the adapter
// fast-paths to a scalar multiply, or to silence when the gain is zero.
//
// Assigning current = target at chunk end, rather than accumulating the
// per-sample increment, avoids rounding drift and restores the fast path on
// the next chunk.
type volumeAdapter struct {
	current float32
	target  float32
}

func (vol *volumeAdapter) setTarget(v float32) {
	vol.target = v
}

// apply scales the chunk in place. factor is an extra per-chunk gain
// multiplied on top of the ramp; spatial streams feed their falloff gain
// through it.
func (vol *volumeAdapter) apply(chunk *MonoChunk, factor float32) {
	if chunk.Volume == 0 {
		vol.current = vol.target
		return
	}

	if vol.current == vol.target {
		v := vol.current * factor
		if v == 0 {
			chunk.Volume = 0
			return
		}
		if v != 1 {
			for i := range chunk.Samples {
				chunk.Samples[i] *= v
			}
		}
		chunk.Volume = v
		return
	}

	// the header reflects the loudest point of the ramp so that a fade to
	// zero is still mixed
	header := factor * math32.Max(vol.current, vol.target)

	inc := (vol.target - vol.current) / ChunkFrames
	v := vol.current
	for i := range chunk.Samples {
		chunk.Samples[i] *= v * factor
		v += inc
	}
	vol.current = vol.target
	chunk.Volume = header
}

// panGains converts a pan position in [-1, 1] to per-channel gains using
// equal-power square-root panning. Unlike linear panning this keeps the
// perceived loudness constant across the range.
func panGains(pan float32) (left float32, right float32) {
	p := 0.5 * (pan + 1)
	return math32.Sqrt(1 - p), math32.Sqrt(p)
}

// panAdapter places a mono chunk in the stereo field. Like the volume
// adapter it ramps linearly from current to target over one chunk and snaps
// current = target at chunk end.
type panAdapter struct {
	current float32
	target  float32
}

func (pn *panAdapter) setTarget(pan float32) {
	pn.target = pan
}

func (pn *panAdapter) apply(in *MonoChunk, out *Chunk) {
	if in.Volume == 0 {
		pn.current = pn.target
		out.Volume = 0
		return
	}

	if pn.current == pn.target {
		l, r := panGains(pn.current)
		for i := range in.Samples {
			out.Frames[i] = Frame{Left: in.Samples[i] * l, Right: in.Samples[i] * r}
		}
		out.Volume = in.Volume
		return
	}

	inc := (pn.target - pn.current) / ChunkFrames
	p := pn.current
	for i := range in.Samples {
		l, r := panGains(p)
		out.Frames[i] = Frame{Left: in.Samples[i] * l, Right: in.Samples[i] * r}
		p += inc
	}
	pn.current = pn.target
	out.Volume = in.Volume
}
