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

// Source is the sample iterator contract at the bottom of every stream. A
// source yields mono samples at its own rate; the resampler above it converts
// to the output rate.
type Source interface {
	SampleRate() int

	// NextSample returns the next sample, or false when the source is
	// exhausted. A looping source never exhausts.
	NextSample() (float32, bool)

	Looping() bool

	// CompletionRatio returns progress through the underlying recording in
	// [0, 1], or false when the source has no natural length.
	CompletionRatio() (float32, bool)
}

// BufferSource yields the samples of a Buffer in order. When looping, the
// cursor wraps back to the loop start on reaching the end of the loop
// section.
type BufferSource struct {
	buf     *Buffer
	cursor  int
	looping bool
}

// NewBufferSource is the preferred method of initialisation for the
// BufferSource type.
func NewBufferSource(buf *Buffer, looping bool) *BufferSource {
	return &BufferSource{
		buf:     buf,
		looping: looping,
	}
}

// SampleRate implements the Source interface.
func (src *BufferSource) SampleRate() int {
	return src.buf.SampleRate
}

// NextSample implements the Source interface.
func (src *BufferSource) NextSample() (float32, bool) {
	if src.looping && src.cursor >= src.buf.LoopStart+src.buf.LoopLength {
		src.cursor = src.buf.LoopStart
	}
	if src.cursor >= len(src.buf.Samples) {
		return 0, false
	}

	s := src.buf.Samples[src.cursor]
	src.cursor++
	return s, true
}

// Looping implements the Source interface.
func (src *BufferSource) Looping() bool {
	return src.looping
}

// CompletionRatio implements the Source interface.
func (src *BufferSource) CompletionRatio() (float32, bool) {
	return float32(src.cursor) / float32(len(src.buf.Samples)), true
}

// SineSource procedurally generates a sine tone. It never finishes.
type SineSource struct {
	sampleRate int
	frequency  float32
	amplitude  float32
	phase      float32
}

// NewSineSource is the preferred method of initialisation for the SineSource
// type.
func NewSineSource(sampleRate int, frequency float32, amplitude float32) *SineSource {
	return &SineSource{
		sampleRate: sampleRate,
		frequency:  frequency,
		amplitude:  amplitude,
	}
}

// SampleRate implements the Source interface.
func (src *SineSource) SampleRate() int {
	return src.sampleRate
}

// NextSample implements the Source interface.
func (src *SineSource) NextSample() (float32, bool) {
	s := src.amplitude * math32.Sin(2*math32.Pi*src.phase)
	src.phase += src.frequency / float32(src.sampleRate)
	if src.phase >= 1 {
		src.phase -= 1
	}
	return s, true
}

// Looping implements the Source interface.
func (src *SineSource) Looping() bool {
	return true
}

// CompletionRatio implements the Source interface.
func (src *SineSource) CompletionRatio() (float32, bool) {
	return 0, false
}
