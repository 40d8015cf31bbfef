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
	"github.com/lanternengine/lantern/fault"
)

// Buffer is an immutable recording: mono sample data at a fixed sample rate,
// plus the section a looping stream cycles over. The loop section defaults to
// the whole buffer.
type Buffer struct {
	Name       string
	SampleRate int
	Samples    []float32

	LoopStart  int
	LoopLength int
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(name string, sampleRate int, samples []float32) (*Buffer, error) {
	if name == "" {
		return nil, fault.Errorf("audio: buffer with no name")
	}
	if sampleRate <= 0 {
		return nil, fault.Errorf("audio: buffer %s: bad sample rate: %d", name, sampleRate)
	}
	if len(samples) == 0 {
		return nil, fault.Errorf("audio: buffer %s: no samples", name)
	}

	return &Buffer{
		Name:       name,
		SampleRate: sampleRate,
		Samples:    samples,
		LoopStart:  0,
		LoopLength: len(samples),
	}, nil
}

// SetLoopSection replaces the default whole-buffer loop with a sub-section.
func (buf *Buffer) SetLoopSection(start int, length int) error {
	if start < 0 || length <= 0 || start+length > len(buf.Samples) {
		return fault.Errorf("audio: buffer %s: bad loop section: start %d length %d of %d samples",
			buf.Name, start, length, len(buf.Samples))
	}
	buf.LoopStart = start
	buf.LoopLength = length
	return nil
}

// Duration returns the length of the recording in seconds.
func (buf *Buffer) Duration() float64 {
	return float64(len(buf.Samples)) / float64(buf.SampleRate)
}
