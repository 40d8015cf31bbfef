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

// resampler converts a source's sample rate to the output rate by linear
// interpolation. It holds two adjacent source samples and a sub-sample
// phase; each output sample is lerp(current, next, phase).
//
// When the source runs out the interpolation slots drain towards zero, so
// playback ends on a short ramp rather than a click. The resampler is
// finished once both slots hold post-source zeros.
type resampler struct {
	src        Source
	outputRate int

	current float32
	next    float32
	phase   float32

	primed  bool
	drained int
}

func newResampler(src Source, outputRate int) resampler {
	return resampler{
		src:        src,
		outputRate: outputRate,
	}
}

func (rs *resampler) finished() bool {
	return rs.drained >= 2
}

func (rs *resampler) pull() float32 {
	s, ok := rs.src.NextSample()
	if !ok {
		if rs.drained < 2 {
			rs.drained++
		}
		return 0
	}
	return s
}

// nextSample produces one output sample. The effective rate conversion is
// speed * (source rate / output rate); a speed of 1 plays at natural pitch.
func (rs *resampler) nextSample(speed float32) float32 {
	if !rs.primed {
		rs.current = rs.pull()
		rs.next = rs.pull()
		rs.primed = true
	}

	out := rs.current + (rs.next-rs.current)*rs.phase

	rs.phase += speed * float32(rs.src.SampleRate()) / float32(rs.outputRate)
	for rs.phase >= 1 {
		rs.phase -= 1
		rs.current = rs.next
		rs.next = rs.pull()
	}

	return out
}
